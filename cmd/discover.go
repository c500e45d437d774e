package cmd

import (
	"strings"

	"github.com/bnema/partners-cli/internal/adapters/render/card"
	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDiscoverCmd(c *cli) *cobra.Command {
	var (
		query        application.DiscoverQuery
		availability string
		search       string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List builders, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("availability") {
				parsed, err := domain.ParseAvailability(availability)
				if err != nil {
					return domain.ValidationFailed("discover", "availability", err.Error())
				}
				query.Availability = parsed
			}

			search = strings.TrimSpace(search)
			builders, err := c.app.directory.Browse(cmd.Context(), query, search)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toProfilesJSON(builders))
			}
			return writeRendered(cmd, func() (string, error) {
				return card.RenderDirectory(builders, card.DirectoryOptions{Search: search})
			})
		},
	}

	cmd.Flags().StringVar(&query.Interest, "interest", "", "Only builders with this interest")
	cmd.Flags().StringVar(&availability, "availability", "", "Only builders with this availability")
	cmd.Flags().IntVar(&query.Limit, "limit", 0, "Maximum number of builders (server default when 0)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by username, bio or language")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
