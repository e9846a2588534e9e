package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	geminiart "github.com/bnema/pixeloracle/internal/adapters/art/gemini"
	openaiart "github.com/bnema/pixeloracle/internal/adapters/art/openai"
	"github.com/bnema/pixeloracle/internal/adapters/broadcast/farcaster"
	"github.com/bnema/pixeloracle/internal/adapters/broadcast/twitter"
	"github.com/bnema/pixeloracle/internal/adapters/ledger/evm"
	prommetrics "github.com/bnema/pixeloracle/internal/adapters/metrics/prometheus"
	"github.com/bnema/pixeloracle/internal/adapters/pinning/pinata"
	statusadapter "github.com/bnema/pixeloracle/internal/adapters/render/status"
	tomlrepo "github.com/bnema/pixeloracle/internal/adapters/repo/toml"
	chainstore "github.com/bnema/pixeloracle/internal/adapters/secrets/chain"
	filestore "github.com/bnema/pixeloracle/internal/adapters/secrets/file"
	"github.com/bnema/pixeloracle/internal/application"
	"github.com/bnema/pixeloracle/internal/config"
	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/logging"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type app struct {
	secretStore    ports.SecretStore
	configFile     string
	statusRenderer func(application.LedgerStatus, statusadapter.RenderOptions) (string, error)
	httpClient     *http.Client
	now            func() time.Time
	agentID        string
}

func wireApp() (*app, error) {
	root, err := filestore.DefaultRoot()
	if err != nil {
		return nil, fmt.Errorf("resolve secret directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(root)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		secretStore:    secretStore,
		statusRenderer: statusadapter.Render,
		httpClient:     http.DefaultClient,
		now:            time.Now,
		agentID:        uuid.NewString(),
	}, nil
}

func (a *app) loadConfig(ctx context.Context) (config.Config, error) {
	cfg, err := config.Load(ctx, config.Options{ConfigFile: a.configFile, Secrets: a.secretStore})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (a *app) newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("agent_id", a.agentID)), nil
}

func (a *app) dialLedger(ctx context.Context, cfg config.Config) (*evm.Ledger, func(), error) {
	ledger, client, err := evm.Dial(ctx, evm.Config{
		PrivateKey:      cfg.PrivateKey,
		ContractAddress: cfg.ContractAddress,
		Network:         cfg.Network,
		RPCURL:          cfg.RPCURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wire ledger: %w", err)
	}
	return ledger, client.Close, nil
}

func (a *app) newArtService(ctx context.Context, cfg config.Config) (ports.ArtService, error) {
	switch cfg.ArtProvider {
	case config.ProviderGemini:
		return geminiart.NewArtist(ctx, geminiart.Config{APIKey: cfg.GeminiAPIKey, HTTPClient: a.httpClient})
	default:
		return openaiart.NewArtist(openaiart.Config{
			APIKey:     cfg.OpenAIAPIKey,
			TextModel:  cfg.OpenAIModel,
			HTTPClient: a.httpClient,
		})
	}
}

type mentionFeed struct {
	source   ports.MentionSource
	replier  ports.BroadcastChannel
	interval time.Duration
}

// buildChannels returns the configured channels, Farcaster first, and the ones lacking credentials.
func (a *app) buildChannels(cfg config.Config) ([]ports.BroadcastChannel, []domain.Channel, []mentionFeed) {
	var (
		channels []ports.BroadcastChannel
		missing  []domain.Channel
		feeds    []mentionFeed
	)

	if cfg.Farcaster.Configured() {
		client := farcaster.NewClient(cfg.Farcaster.APIKey, cfg.Farcaster.SignerUUID, cfg.Farcaster.Username)
		client.HTTPClient = a.httpClient
		channels = append(channels, client)
		feeds = append(feeds, mentionFeed{source: client, replier: client, interval: cfg.FarcasterPollInterval})
	} else {
		missing = append(missing, domain.ChannelFarcaster)
	}

	if cfg.Twitter.Configured() {
		client := twitter.NewClient(twitter.Credentials(cfg.Twitter), a.httpClient)
		channels = append(channels, client)
		feeds = append(feeds, mentionFeed{source: client, replier: client, interval: cfg.TwitterPollInterval})
	} else {
		missing = append(missing, domain.ChannelTwitter)
	}

	return channels, missing, feeds
}

// agent is the fully wired autonomous loop used by run and create.
type agent struct {
	cfg          config.Config
	logger       *zap.Logger
	ledger       *evm.Ledger
	orchestrator *application.Orchestrator
	reporter     *application.Reporter
	metrics      *prommetrics.Metrics
	pollers      []*application.Poller
	close        func()
}

func (a *app) wireAgent(ctx context.Context, cfg config.Config, logger *zap.Logger) (*agent, error) {
	if err := cfg.RequireCycle(); err != nil {
		return nil, err
	}

	ledger, closeLedger, err := a.dialLedger(ctx, cfg)
	if err != nil {
		return nil, err
	}

	art, err := a.newArtService(ctx, cfg)
	if err != nil {
		closeLedger()
		return nil, fmt.Errorf("wire art service: %w", err)
	}

	pinning := pinata.NewClient(pinata.Credentials{APIKey: cfg.PinataAPIKey, SecretKey: cfg.PinataSecretKey})
	pinning.HTTPClient = a.httpClient

	metrics := prommetrics.New()
	clock := ports.SystemClock{}

	channels, missing, feeds := a.buildChannels(cfg)
	announcer := application.NewAnnouncer(channels, missing, metrics, logger.Named("announcer"))

	var journal ports.EventJournal
	if cfg.StateFile != "" {
		j, err := tomlrepo.NewJournal(cfg.StateFile)
		if err != nil {
			closeLedger()
			return nil, fmt.Errorf("wire event journal: %w", err)
		}
		journal = j
	}
	dedup := application.NewDedupLedger(journal, logger.Named("dedup"))
	if err := dedup.Restore(ctx); err != nil {
		closeLedger()
		return nil, err
	}

	votes := application.NewThemeVoteTally()
	snapshot := application.NewSnapshot(clock.Now())

	orchestrator, err := application.NewOrchestrator(application.OrchestratorConfig{
		Themes:      cfg.Themes,
		MinBalance:  cfg.MinBalance,
		ExternalURL: cfg.ExternalURL,
		Retries:     application.DefaultRetryPolicies(),
	}, application.OrchestratorDeps{
		Art:       art,
		Pinning:   pinning,
		Ledger:    ledger,
		Announcer: announcer,
		Snapshot:  snapshot,
		Votes:     votes,
		Retrier:   application.NewRetrier(logger.Named("retry"), nil),
		Clock:     clock,
		Metrics:   metrics,
		Logger:    logger.Named("orchestrator"),
	})
	if err != nil {
		closeLedger()
		return nil, fmt.Errorf("wire orchestrator: %w", err)
	}

	reporter := application.NewReporter(application.ReporterConfig{
		AgentID:         a.agentID,
		Network:         cfg.Network,
		ContractAddress: ledger.ContractAddress(),
		WalletAddress:   ledger.WalletAddress(),
		Interval:        cfg.Interval,
	}, snapshot, clock)

	pollerLogger := logger.Named("poller")
	watcher := application.NewTransferWatcher(ledger, announcer, dedup, nil, metrics, logger.Named("transfers"))
	pollers := []*application.Poller{
		application.NewPoller("cycle", cfg.Interval, orchestrator.Tick, pollerLogger),
		application.NewPoller("transfers", cfg.MintPollInterval, watcher.Poll, pollerLogger),
	}
	for _, feed := range feeds {
		responder := application.NewMentionResponder(feed.source, feed.replier, dedup, votes, cfg.Themes, nil, metrics, logger.Named("mentions"))
		pollers = append(pollers, application.NewPoller("mentions_"+string(feed.source.Channel()), feed.interval, responder.Poll, pollerLogger))
	}

	return &agent{
		cfg:          cfg,
		logger:       logger,
		ledger:       ledger,
		orchestrator: orchestrator,
		reporter:     reporter,
		metrics:      metrics,
		pollers:      pollers,
		close:        closeLedger,
	}, nil
}
