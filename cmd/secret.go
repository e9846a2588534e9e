package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/pixeloracle/internal/config"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage credentials kept in the secret store",
		Long:  "Credentials missing from the environment and config file are read from pass, or from ~/.pixeloracle/secrets when pass is unavailable.",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <ENV_NAME>",
		Short: "Store a credential, e.g. PRIVATE_KEY or OPENAI_API_KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.SecretKey(args[0])
			if err := app.secretStore.Put(cmd.Context(), key, strings.TrimSpace(value)); err != nil {
				return fmt.Errorf("store %s: %w", args[0], err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <ENV_NAME>",
		Short: "Remove a stored credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.SecretKey(args[0])
			if err := app.secretStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("remove %s: %w", args[0], err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key)
			return err
		},
	}
}
