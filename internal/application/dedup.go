package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pixeloracle/internal/ports"
	"go.uber.org/zap"
)

// DedupLedger remembers every event key it has accepted. Keys are never evicted.
type DedupLedger struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	journal ports.EventJournal
	logger  *zap.Logger
}

func NewDedupLedger(journal ports.EventJournal, logger *zap.Logger) *DedupLedger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DedupLedger{
		seen:    make(map[string]struct{}),
		journal: journal,
		logger:  logger,
	}
}

// Restore seeds the ledger from the journal. Without a journal it is a no-op.
func (l *DedupLedger) Restore(ctx context.Context) error {
	if l.journal == nil {
		return nil
	}

	keys, err := l.journal.Load(ctx)
	if err != nil {
		return fmt.Errorf("load event journal: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, key := range keys {
		l.seen[key] = struct{}{}
	}
	l.logger.Info("event journal restored", zap.Int("keys", len(keys)))

	return nil
}

// ShouldProcess reports true exactly once per key.
func (l *DedupLedger) ShouldProcess(key string) bool {
	l.mu.Lock()
	if _, ok := l.seen[key]; ok {
		l.mu.Unlock()
		return false
	}
	l.seen[key] = struct{}{}
	l.mu.Unlock()

	if l.journal != nil {
		if err := l.journal.Append(context.Background(), key); err != nil {
			l.logger.Warn("append event journal", zap.String("key", key), zap.Error(err))
		}
	}

	return true
}

func (l *DedupLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.seen)
}
