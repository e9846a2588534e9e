package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"go.uber.org/zap"
)

var ErrNoThemes = errors.New("no art themes configured")

type RetryPolicies struct {
	Concept     RetryPolicy
	Render      RetryPolicy
	Ledger      RetryPolicy
	PinImage    RetryPolicy
	PinMetadata RetryPolicy
	Proclaim    RetryPolicy
}

func DefaultRetryPolicies() RetryPolicies {
	return RetryPolicies{
		Concept:     RetryPolicy{Label: "concept generation", MaxAttempts: 2, Delay: 5 * time.Second},
		Render:      RetryPolicy{Label: "image generation", MaxAttempts: 3, Delay: 5 * time.Second},
		Ledger:      RetryPolicy{Label: "ledger read", MaxAttempts: 3, Delay: 2 * time.Second},
		PinImage:    RetryPolicy{Label: "pinata image upload", MaxAttempts: 3, Delay: 10 * time.Second},
		PinMetadata: RetryPolicy{Label: "pinata metadata upload", MaxAttempts: 3, Delay: 5 * time.Second},
		Proclaim:    RetryPolicy{Label: "oracle message", MaxAttempts: 1},
	}
}

type OrchestratorConfig struct {
	Themes         []string
	MinBalance     *big.Int
	HeartbeatEvery uint64
	ExternalURL    string
	Retries        RetryPolicies
}

type OrchestratorDeps struct {
	Art       ports.ArtService
	Pinning   ports.PinningService
	Ledger    ports.LedgerService
	Announcer *Announcer
	Snapshot  *Snapshot
	Votes     *ThemeVoteTally
	Retrier   *Retrier
	Clock     ports.Clock
	Random    Random
	Metrics   ports.Metrics
	Logger    *zap.Logger
}

// Orchestrator runs the creation cycle: generate, persist, record ownership, announce.
// Cycles are serialized. A scheduled trigger that arrives mid-cycle waits for the running one,
// but at most one trigger waits; further triggers are dropped until it starts.
type Orchestrator struct {
	cfg       OrchestratorConfig
	art       ports.ArtService
	pinning   ports.PinningService
	ledger    ports.LedgerService
	announcer *Announcer
	snapshot  *Snapshot
	votes     *ThemeVoteTally
	retrier   *Retrier
	clock     ports.Clock
	random    Random
	metrics   ports.Metrics
	logger    *zap.Logger

	cycleMu     sync.Mutex
	tickWaiting atomic.Bool
}

func NewOrchestrator(cfg OrchestratorConfig, deps OrchestratorDeps) (*Orchestrator, error) {
	if len(cfg.Themes) == 0 {
		return nil, ErrNoThemes
	}
	if cfg.MinBalance == nil {
		cfg.MinBalance = new(big.Int)
	}
	if cfg.HeartbeatEvery == 0 {
		cfg.HeartbeatEvery = 5
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Random == nil {
		deps.Random = globalRandom{}
	}
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Retrier == nil {
		deps.Retrier = NewRetrier(deps.Logger, nil)
	}
	if deps.Votes == nil {
		deps.Votes = NewThemeVoteTally()
	}
	if deps.Snapshot == nil {
		deps.Snapshot = NewSnapshot(deps.Clock.Now())
	}
	if deps.Announcer == nil {
		deps.Announcer = NewAnnouncer(nil, nil, deps.Metrics, deps.Logger)
	}

	return &Orchestrator{
		cfg:       cfg,
		art:       deps.Art,
		pinning:   deps.Pinning,
		ledger:    deps.Ledger,
		announcer: deps.Announcer,
		snapshot:  deps.Snapshot,
		votes:     deps.Votes,
		retrier:   deps.Retrier,
		clock:     deps.Clock,
		random:    deps.Random,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
	}, nil
}

func (o *Orchestrator) Snapshot() *Snapshot {
	return o.snapshot
}

// Tick adapts RunCycle to a poller unit of work. Errors are already recorded in the snapshot.
func (o *Orchestrator) Tick(ctx context.Context) {
	o.snapshot.MarkTriggered(o.clock.Now())

	if !o.cycleMu.TryLock() {
		if !o.tickWaiting.CompareAndSwap(false, true) {
			o.logger.Warn("cycle trigger dropped: a cycle is running and another is already queued")
			return
		}
		o.cycleMu.Lock()
		o.tickWaiting.Store(false)
	}
	defer o.cycleMu.Unlock()

	_, _ = o.runCycle(ctx)
}

// RunCycle executes one cycle. A low wallet balance pauses the cycle without recording an error.
func (o *Orchestrator) RunCycle(ctx context.Context) (domain.CycleRecord, error) {
	o.cycleMu.Lock()
	defer o.cycleMu.Unlock()

	return o.runCycle(ctx)
}

func (o *Orchestrator) runCycle(ctx context.Context) (domain.CycleRecord, error) {
	start := o.clock.Now()
	record := o.snapshot.BeginCycle(start)
	logger := o.logger.With(zap.Uint64("cycle", uint64(record.ID)))
	logger.Info("cycle started")

	funded, err := o.checkFunding(ctx, logger)
	if err != nil {
		return o.fail(logger, record.ID, start, fmt.Errorf("check balance: %w", err))
	}
	if !funded {
		o.snapshot.Pause(record.ID, o.clock.Now())
		o.metrics.CycleFinished(domain.OutcomePaused, o.clock.Now().Sub(start))
		return o.snapshot.View().Current, nil
	}

	o.snapshot.Advance(record.ID, domain.StageCreating)
	artwork, pinned, err := o.create(ctx, logger, record.ID)
	if err != nil {
		return o.fail(logger, record.ID, start, err)
	}

	o.snapshot.Advance(record.ID, domain.StageRecordingOwnership)
	receipt, err := o.ledger.Mint(ctx, domain.MintRequest{
		MetadataURI: pinned.MetadataURI,
		Prompt:      artwork.Concept.ImagePrompt,
		Theme:       artwork.Concept.Theme,
	})
	if err != nil {
		return o.fail(logger, record.ID, start, fmt.Errorf("mint artwork: %w", err))
	}
	o.snapshot.RecordMint(record.ID, receipt)
	logger.Info("ownership recorded", zap.Stringer("token_id", receipt.TokenID), zap.String("tx_hash", receipt.TxHash))

	o.snapshot.Advance(record.ID, domain.StageAnnouncing)
	announcement := o.announce(ctx, logger, artwork, pinned, receipt)
	o.snapshot.RecordAnnouncement(record.ID, announcement)

	completed := o.snapshot.Complete(record.ID, o.clock.Now())
	o.metrics.CycleFinished(domain.OutcomeCompleted, o.clock.Now().Sub(start))
	logger.Info("cycle completed",
		zap.String("title", artwork.Concept.Title),
		zap.Int("channels_ok", announcement.Succeeded()),
		zap.Uint64("total_completed", completed))

	if completed%o.cfg.HeartbeatEvery == 0 {
		o.heartbeat(ctx, logger, record.ID, completed)
	}

	return o.snapshot.View().Current, nil
}

func (o *Orchestrator) checkFunding(ctx context.Context, logger *zap.Logger) (bool, error) {
	balance, err := Retry(ctx, o.retrier, o.cfg.Retries.Ledger, o.ledger.Balance)
	if err != nil {
		return false, err
	}

	observation := domain.WalletObservation{
		Address:   o.ledger.WalletAddress(),
		Balance:   balance,
		CheckedAt: o.clock.Now(),
	}
	o.snapshot.ObserveWallet(observation)

	if balance.Cmp(o.cfg.MinBalance) < 0 {
		logger.Warn("low balance, pausing",
			zap.String("balance_eth", observation.BalanceETH()),
			zap.String("min_eth", domain.FormatEther(o.cfg.MinBalance)))
		return false, nil
	}

	logger.Info("wallet balance", zap.String("balance_eth", observation.BalanceETH()))
	return true, nil
}

func (o *Orchestrator) create(ctx context.Context, logger *zap.Logger, id domain.CycleID) (domain.Artwork, domain.PinnedArtwork, error) {
	theme := o.pickTheme(logger)

	concept, err := Retry(ctx, o.retrier, o.cfg.Retries.Concept, func(ctx context.Context) (domain.Concept, error) {
		return o.art.Imagine(ctx, theme, domain.StyleModifier(theme))
	})
	if err != nil {
		return domain.Artwork{}, domain.PinnedArtwork{}, fmt.Errorf("generate concept: %w", err)
	}
	if concept.Theme == "" {
		concept.Theme = theme
	}
	o.snapshot.RecordConcept(id, concept)
	logger.Info("concept generated", zap.String("title", concept.Title), zap.String("theme", concept.Theme))

	image, err := Retry(ctx, o.retrier, o.cfg.Retries.Render, func(ctx context.Context) ([]byte, error) {
		return o.art.Render(ctx, concept)
	})
	if err != nil {
		return domain.Artwork{}, domain.PinnedArtwork{}, fmt.Errorf("render image: %w", err)
	}
	if len(image) == 0 {
		return domain.Artwork{}, domain.PinnedArtwork{}, fmt.Errorf("render image: %w", domain.ErrNoImage)
	}
	artwork := domain.Artwork{Concept: concept, Image: image}

	// Read after rendering: other writers may have minted while the image was generated.
	total, err := Retry(ctx, o.retrier, o.cfg.Retries.Ledger, o.ledger.TotalMinted)
	if err != nil {
		return domain.Artwork{}, domain.PinnedArtwork{}, fmt.Errorf("read total minted: %w", err)
	}
	generation := total.Uint64()

	imageCID, err := Retry(ctx, o.retrier, o.cfg.Retries.PinImage, func(ctx context.Context) (string, error) {
		return o.pinning.PinFile(ctx, domain.ImageFileName(generation), image)
	})
	if err != nil {
		return domain.Artwork{}, domain.PinnedArtwork{}, fmt.Errorf("pin image: %w", err)
	}
	pinned := domain.PinnedArtwork{ImageURI: domain.IPFSURI(imageCID)}
	o.snapshot.RecordPinned(id, pinned)

	metadata := domain.NewTokenMetadata(concept, pinned.ImageURI, o.cfg.ExternalURL, signatureLine, generation, o.clock.Now())
	metadataCID, err := Retry(ctx, o.retrier, o.cfg.Retries.PinMetadata, func(ctx context.Context) (string, error) {
		return o.pinning.PinJSON(ctx, domain.MetadataFileName(generation), metadata)
	})
	if err != nil {
		return domain.Artwork{}, domain.PinnedArtwork{}, fmt.Errorf("pin metadata: %w", err)
	}
	pinned.MetadataURI = domain.IPFSURI(metadataCID)
	logger.Info("artwork pinned", zap.String("image_uri", pinned.ImageURI), zap.String("metadata_uri", pinned.MetadataURI))

	return artwork, pinned, nil
}

func (o *Orchestrator) pickTheme(logger *zap.Logger) string {
	if winner, ok := o.votes.TakeWinner(); ok {
		logger.Info("theme chosen by votes", zap.String("theme", winner))
		return winner
	}
	return pick(o.random, o.cfg.Themes)
}

func (o *Orchestrator) announce(ctx context.Context, logger *zap.Logger, artwork domain.Artwork, pinned domain.PinnedArtwork, receipt domain.MintReceipt) domain.Announcement {
	quote, err := Retry(ctx, o.retrier, o.cfg.Retries.Proclaim, func(ctx context.Context) (string, error) {
		return o.art.Proclaim(ctx, artwork.Concept)
	})
	if err != nil || quote == "" {
		logger.Warn("oracle message unavailable, using fallback", zap.Error(err))
		quote = fallbackProclamation
	}

	network := o.ledger.Network()
	text := FormatAnnouncement(o.random, quote,
		network.ExplorerTxURL(receipt.TxHash),
		network.MarketplaceURL(o.ledger.ContractAddress(), receipt.TokenID))

	return o.announcer.Announce(ctx, domain.Post{
		Text:     text,
		ImageURI: pinned.ImageURI,
		Image:    artwork.Image,
	})
}

func (o *Orchestrator) heartbeat(ctx context.Context, logger *zap.Logger, id domain.CycleID, completed uint64) {
	txHash, err := o.ledger.RecordHeartbeat(ctx, domain.Heartbeat{
		Cycle:     id,
		Completed: completed,
		At:        o.clock.Now(),
	})
	if err != nil {
		logger.Warn("heartbeat failed", zap.Uint64("completed", completed), zap.Error(err))
		return
	}
	logger.Info("heartbeat recorded", zap.Uint64("completed", completed), zap.String("tx_hash", txHash))
}

func (o *Orchestrator) fail(logger *zap.Logger, id domain.CycleID, start time.Time, err error) (domain.CycleRecord, error) {
	now := o.clock.Now()
	o.snapshot.Fail(id, now, err)
	o.metrics.CycleFinished(domain.OutcomeFailed, now.Sub(start))
	logger.Error("cycle failed", zap.Error(err))

	return o.snapshot.View().Current, err
}
