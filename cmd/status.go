package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	statusadapter "github.com/bnema/pixeloracle/internal/adapters/render/status"
	"github.com/bnema/pixeloracle/internal/application"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show wallet balance, funding and minted total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := app.loadConfig(ctx)
			if err != nil {
				return err
			}
			if err := cfg.RequireLedger(); err != nil {
				return err
			}

			ledger, closeLedger, err := app.dialLedger(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeLedger()

			status, err := application.QueryLedgerStatus(ctx, ledger, cfg.MinBalance, clockFunc(app.now))
			if err != nil {
				return err
			}

			return writeStatusOutput(cmd, app, status, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeStatusOutput(cmd *cobra.Command, app *app, status application.LedgerStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time {
	return f()
}

var _ ports.Clock = clockFunc(nil)
