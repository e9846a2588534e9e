package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "oracle",
		Short:         "PixelOracle: an autonomous generative-art agent",
		Long:          "oracle imagines an artwork on a schedule, pins it to IPFS, mints it on Base, announces it on Farcaster and X, and answers the people who reply.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "Config file (default ~/.pixeloracle/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newCreateCmd(app),
		newStatusCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
