package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/partners-cli/internal/adapters/render/card"
	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errSomeMatchesFailed = errors.New("some matches failed")

func newMatchCmd(c *cli) *cobra.Command {
	var (
		localOnly   bool
		concurrency int
		noSpinner   bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "match <username>...",
		Short: "Score your chemistry with one or more builders",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app.sessions.Require("match"); err != nil {
				return err
			}

			targets := make([]domain.Username, 0, len(args))
			for _, arg := range args {
				targets = append(targets, domain.Username(arg))
			}

			matchmaker := c.app.matchmaker(localOnly)
			var outcomes []application.MatchOutcome
			work := func(ctx context.Context) {
				outcomes = matchmaker.MatchMany(ctx, targets, concurrency)
			}

			if noSpinner || asJSON {
				work(cmd.Context())
			} else {
				label := fmt.Sprintf("Matching with %d builder(s)...", len(targets))
				if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, work); err != nil {
					matchmaker.CancelAll()
					return err
				}
			}

			if asJSON {
				if err := writeJSON(cmd, matchOutcomesJSON(outcomes)); err != nil {
					return err
				}
			} else if err := writeRendered(cmd, func() (string, error) {
				return card.RenderMatches(outcomes)
			}); err != nil {
				return err
			}

			return firstMatchError(outcomes)
		},
	}

	cmd.Flags().BoolVar(&localOnly, "local-only", false, "Score without calling the AI matcher")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum concurrent match requests (default 4)")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Do not show a progress spinner")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

type matchOutcomeJSON struct {
	Target domain.Username  `json:"target"`
	Result *matchResultJSON `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func matchOutcomesJSON(outcomes []application.MatchOutcome) []matchOutcomeJSON {
	out := make([]matchOutcomeJSON, 0, len(outcomes))
	for _, outcome := range outcomes {
		entry := matchOutcomeJSON{Target: outcome.Target}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		} else {
			entry.Result = toMatchResultJSON(outcome.Result)
		}
		out = append(out, entry)
	}
	return out
}

// firstMatchError returns the only failure as is, or a summary when several targets failed.
func firstMatchError(outcomes []application.MatchOutcome) error {
	var failed []error
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome.Err)
		}
	}

	switch len(failed) {
	case 0:
		return nil
	case 1:
		return failed[0]
	default:
		return fmt.Errorf("%w: %d of %d", errSomeMatchesFailed, len(failed), len(outcomes))
	}
}
