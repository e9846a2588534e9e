package application

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"go.uber.org/zap"
)

const (
	defaultMaxRepliesPerCheck = 3
	defaultMaxBlockSpan       = 2000
	zeroAddress               = "0x0000000000000000000000000000000000000000"
)

// MentionResponder reads a mention feed, answers new mentions and records theme votes.
// Failures are logged and swallowed; mentions are a best-effort side feature.
type MentionResponder struct {
	source     ports.MentionSource
	replier    ports.BroadcastChannel
	dedup      *DedupLedger
	votes      *ThemeVoteTally
	themes     map[string]struct{}
	random     Random
	metrics    ports.Metrics
	logger     *zap.Logger
	maxReplies int

	checkMu sync.Mutex
}

func NewMentionResponder(source ports.MentionSource, replier ports.BroadcastChannel, dedup *DedupLedger, votes *ThemeVoteTally, themes []string, random Random, metrics ports.Metrics, logger *zap.Logger) *MentionResponder {
	if random == nil {
		random = globalRandom{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	themeSet := make(map[string]struct{}, len(themes))
	for _, theme := range themes {
		themeSet[domain.NormalizeTheme(theme)] = struct{}{}
	}

	return &MentionResponder{
		source:     source,
		replier:    replier,
		dedup:      dedup,
		votes:      votes,
		themes:     themeSet,
		random:     random,
		metrics:    metrics,
		logger:     logger.With(zap.String("channel", string(source.Channel()))),
		maxReplies: defaultMaxRepliesPerCheck,
	}
}

// Check handles one poll of the mention feed and returns how many replies were sent.
func (r *MentionResponder) Check(ctx context.Context) int {
	if !r.checkMu.TryLock() {
		r.logger.Debug("previous mention check still running")
		return 0
	}
	defer r.checkMu.Unlock()

	mentions, err := r.source.Mentions(ctx)
	if err != nil {
		r.logger.Warn("mention check failed", zap.Error(err))
		return 0
	}

	replied := 0
	for _, mention := range mentions {
		if replied >= r.maxReplies {
			break
		}
		if !r.dedup.ShouldProcess(mention.EventKey()) {
			continue
		}
		r.metrics.EventProcessed("mention_" + string(mention.Channel))

		reply, ok := r.replyFor(mention)
		if !ok {
			continue
		}

		_, err := r.replier.Post(ctx, domain.Post{Text: reply, ReplyTo: mention.ID})
		if err != nil {
			r.logger.Warn("reply failed", zap.String("mention_id", mention.ID), zap.Error(err))
			continue
		}
		replied++
		r.logger.Info("replied to mention", zap.String("mention_id", mention.ID), zap.String("author", mention.Author))
	}

	if replied == 0 {
		r.logger.Debug("no mentions needed replies")
	}
	return replied
}

// Poll is the poller unit of work.
func (r *MentionResponder) Poll(ctx context.Context) {
	r.Check(ctx)
}

func (r *MentionResponder) replyFor(mention domain.Mention) (string, bool) {
	if theme, ok := ParseVote(mention.Text, r.themes); ok {
		r.votes.Cast(theme, 1)
		r.logger.Info("theme vote", zap.String("theme", theme), zap.String("author", mention.Author))
		return VoteReply(theme, mention.Author), true
	}

	return ReplyFor(r.random, mention.Text, mention.Author)
}

// TransferWatcher polls the contract for Transfer events and thanks each new holder once.
// The first check only records the chain head; history before startup is not replayed.
type TransferWatcher struct {
	ledger    ports.LedgerService
	announcer *Announcer
	dedup     *DedupLedger
	random    Random
	metrics   ports.Metrics
	logger    *zap.Logger
	maxSpan   uint64

	checkMu   sync.Mutex
	lastBlock uint64
	primed    bool
}

func NewTransferWatcher(ledger ports.LedgerService, announcer *Announcer, dedup *DedupLedger, random Random, metrics ports.Metrics, logger *zap.Logger) *TransferWatcher {
	if random == nil {
		random = globalRandom{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TransferWatcher{
		ledger:    ledger,
		announcer: announcer,
		dedup:     dedup,
		random:    random,
		metrics:   metrics,
		logger:    logger,
		maxSpan:   defaultMaxBlockSpan,
	}
}

// Check scans new blocks and returns the number of holders thanked.
func (w *TransferWatcher) Check(ctx context.Context) int {
	if !w.checkMu.TryLock() {
		w.logger.Debug("previous transfer check still running")
		return 0
	}
	defer w.checkMu.Unlock()

	head, err := w.ledger.LatestBlock(ctx)
	if err != nil {
		w.logger.Warn("read latest block", zap.Error(err))
		return 0
	}
	if !w.primed {
		w.lastBlock = head
		w.primed = true
		w.logger.Info("transfer watcher primed", zap.Uint64("block", head))
		return 0
	}
	if head <= w.lastBlock {
		return 0
	}

	from := w.lastBlock + 1
	to := head
	if to-from+1 > w.maxSpan {
		to = from + w.maxSpan - 1
	}

	transfers, err := w.ledger.Transfers(ctx, from, to)
	if err != nil {
		w.logger.Warn("read transfers", zap.Uint64("from", from), zap.Uint64("to", to), zap.Error(err))
		return 0
	}
	w.lastBlock = to

	wallet := strings.ToLower(w.ledger.WalletAddress())
	thanked := 0
	for _, transfer := range transfers {
		holder := strings.ToLower(transfer.To)
		if holder == wallet || holder == zeroAddress {
			continue
		}
		if !w.dedup.ShouldProcess(transfer.EventKey()) {
			continue
		}
		w.metrics.EventProcessed("transfer")

		w.logger.Info("new holder", zap.String("holder", transfer.To), zap.Stringer("token_id", transfer.TokenID))
		marketplace := w.ledger.Network().MarketplaceURL(w.ledger.ContractAddress(), transfer.TokenID)
		announcement := w.announcer.Broadcast(ctx, domain.Post{
			Text: FormatThankYou(w.random, transfer.To, transfer.TokenID, marketplace),
		})
		if announcement.Succeeded() > 0 {
			thanked++
		}
	}

	return thanked
}

func (w *TransferWatcher) Poll(ctx context.Context) {
	w.Check(ctx)
}
