package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pixeloracle/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	journalFileMode = 0o600
	journalDirMode  = 0o700
	tempFilePattern = ".events-*.toml.tmp"

	// DefaultMaxEvents bounds the journal file; the oldest keys are dropped first.
	DefaultMaxEvents = 5000
)

// Journal persists processed event keys so mentions and transfers are not answered twice
// across restarts.
type Journal struct {
	path      string
	maxEvents int
	now       func() time.Time
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.EventJournal = (*Journal)(nil)

type Option func(*Journal)

func WithMaxEvents(n int) Option {
	return func(j *Journal) {
		if n > 0 {
			j.maxEvents = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

func NewJournal(path string, opts ...Option) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal path is empty")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	j := &Journal{
		path:      normalized,
		maxEvents: DefaultMaxEvents,
		now:       time.Now,
		mu:        lockForPath(normalized),
	}
	for _, opt := range opts {
		opt(j)
	}

	return j, nil
}

func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	file, err := j.readSchema()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(file.Events))
	for _, event := range file.Events {
		keys = append(keys, event.Key)
	}

	return keys, nil
}

func (j *Journal) Append(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("event key is empty")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := j.readSchema()
	if err != nil {
		return err
	}

	for _, event := range file.Events {
		if event.Key == key {
			return nil
		}
	}

	file.Events = append(file.Events, eventSchema{
		Key:         key,
		ProcessedAt: j.now().UTC().Format(time.RFC3339),
	})
	if overflow := len(file.Events) - j.maxEvents; overflow > 0 {
		file.Events = append([]eventSchema(nil), file.Events[overflow:]...)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return j.writeSchema(file)
}

func (j *Journal) readSchema() (journalSchema, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return journalSchema{Version: currentSchemaVersion}, nil
		}
		return journalSchema{}, fmt.Errorf("read event journal: %w", err)
	}

	var file journalSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return journalSchema{}, fmt.Errorf("decode event journal: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return journalSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (j *Journal) writeSchema(file journalSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(j.path), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode event journal: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(j.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}
	if err := tempFile.Chmod(journalFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}
	if err := os.Rename(tempName, j.path); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve journal path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// lockForPath shares one lock between journals opened on the same file in this process.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
