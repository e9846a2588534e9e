package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/pixeloracle/internal/adapters/httpapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the agent: creation cycles, mention replies, transfer thanks and the status server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := app.loadConfig(ctx)
			if err != nil {
				return err
			}
			logger, err := app.newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			agent, err := app.wireAgent(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer agent.close()

			logger.Info("agent starting",
				zap.String("network", string(cfg.Network)),
				zap.String("wallet", agent.ledger.WalletAddress()),
				zap.String("contract", agent.ledger.ContractAddress()),
				zap.String("art_provider", cfg.ArtProvider),
				zap.Duration("interval", cfg.Interval),
				zap.Strings("themes", cfg.Themes),
				zap.String("status_addr", cfg.StatusAddr),
			)

			return agent.run(ctx)
		},
	}
}

func (a *agent) run(ctx context.Context) error {
	server := httpapi.NewServer(a.reporter, a.metrics.Handler(), a.logger.Named("http"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Run(gctx, a.cfg.StatusAddr); err != nil {
			return fmt.Errorf("status server: %w", err)
		}
		return nil
	})
	for _, p := range a.pollers {
		g.Go(func() error {
			return p.Run(gctx)
		})
	}

	err := g.Wait()
	for _, p := range a.pollers {
		p.Wait()
	}
	a.logger.Info("agent stopped")
	return err
}
