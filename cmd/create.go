package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Run a single creation cycle and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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

			record, err := agent.orchestrator.RunCycle(ctx)
			if err != nil {
				return fmt.Errorf("creation cycle %d: %w", record.ID, err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "cycle\t%d\n", record.ID)
			_, _ = fmt.Fprintf(out, "outcome\t%s\n", record.Outcome)
			if record.Title != "" {
				_, _ = fmt.Fprintf(out, "title\t%s (%s)\n", record.Title, record.Theme)
			}
			if record.TokenID != nil {
				_, _ = fmt.Fprintf(out, "token\t%s\n", record.TokenID)
				_, _ = fmt.Fprintf(out, "tx\t%s\n", record.TxHash)
				_, _ = fmt.Fprintf(out, "image\t%s\n", record.ImageURI)
			}
			for _, result := range record.Channels {
				if result.Success {
					_, _ = fmt.Fprintf(out, "%s\t%s\n", result.Channel, result.URL)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\tfailed: %s\n", result.Channel, result.Error)
			}
			return nil
		},
	}
}
