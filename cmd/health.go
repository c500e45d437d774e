package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the Partners service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.api.Health(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, toHealthJSON(status))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s, %d builders, %d active sessions\n",
				c.app.cfg.API.BaseURL, status.Version, status.Status, status.TotalBuilders, status.ActiveSessions)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
