package cmd

import (
	"context"

	"github.com/bnema/partners-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const skipWireAnnotation = "partners/skip-wire"

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// cli carries the lazily wired application shared by every subcommand.
// Wiring waits for flag parsing so --config and --api-url take effect.
type cli struct {
	viper      *viper.Viper
	configPath string
	app        *app
}

func newRootCmd() *cobra.Command {
	c := &cli{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "partners",
		Short:         "Partners CLI: find builders to ship with",
		Long:          "partners signs you in to the Partners service, walks you through onboarding, lists builders and scores your chemistry with them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] != "" {
				return nil
			}
			a, err := wireApp(cmd.Context(), c.viper, c.configPath)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "Config file (default ~/.partners/config.toml)")
	flags.String("api-url", "", "Partners service base URL (default "+config.DefaultAPIBaseURL+")")
	_ = c.viper.BindPFlag(config.KeyAPIBaseURL, flags.Lookup("api-url"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newProfileCmd(c),
		newBioCmd(c),
		newOnboardCmd(c),
		newDiscoverCmd(c),
		newMatchCmd(c),
		newHealthCmd(c),
	)

	return rootCmd
}
