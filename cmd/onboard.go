package cmd

import (
	"fmt"

	"github.com/bnema/partners-cli/internal/adapters/tui/onboarding"
	"github.com/bnema/partners-cli/internal/application"
	"github.com/spf13/cobra"
)

func newOnboardCmd(c *cli) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Walk through the onboarding wizard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.app.sessions.Require("onboard")
			if err != nil {
				return err
			}

			flow := application.NewOnboardingFlow(session.Profile, c.app.profiles)
			wizard := onboarding.NewWizard(flow, onboarding.Options{
				Input:      cmd.InOrStdin(),
				Output:     cmd.OutOrStdout(),
				Accessible: accessible,
			})

			updated, err := wizard.Run(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile saved. Welcome aboard, %s!\n", updated.Profile.Username)
			return err
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "Use plain line-based prompts")

	return cmd
}
