package cmd

import (
	"fmt"

	"github.com/bnema/partners-cli/internal/adapters/render/card"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit builder profiles",
	}

	cmd.AddCommand(newProfileShowCmd(c), newProfileUpdateCmd(c))

	return cmd
}

func newProfileShowCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [username]",
		Short: "Show your profile, or another builder's",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				builder domain.Builder
				err     error
			)
			if len(args) == 1 {
				builder, err = c.app.directory.Profile(cmd.Context(), domain.Username(args[0]))
			} else {
				var session domain.Session
				session, err = c.app.sessions.Require("show profile")
				builder = session.Profile
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toProfileJSON(builder))
			}
			return writeRendered(cmd, func() (string, error) {
				return card.RenderProfile(builder)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

type profileFlags struct {
	bio          string
	city         string
	email        string
	idea         string
	style        string
	availability string
	experience   string
	lookingFor   string
	interests    []string
	openTo       []string
	learning     []string
}

func newProfileUpdateCmd(c *cli) *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; only the flags you pass are sent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			patch, err := f.patch(cmd.Flags())
			if err != nil {
				return err
			}

			session, err := c.app.profiles.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return err
			}

			return writeRendered(cmd, func() (string, error) {
				return card.RenderProfile(session.Profile)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.bio, "bio", "", "Short bio")
	flags.StringVar(&f.city, "city", "", "City")
	flags.StringVar(&f.email, "email", "", "Email")
	flags.StringVar(&f.idea, "idea", "", "What you are building right now")
	flags.StringVar(&f.style, "style", "", "Building style: ships_fast, plans_first, designs_first, figures_it_out")
	flags.StringVar(&f.availability, "availability", "", "Availability: this_weekend, this_month, open, busy")
	flags.StringVar(&f.experience, "experience", "", "Experience level: beginner, intermediate, advanced")
	flags.StringVar(&f.lookingFor, "looking-for", "", "Looking for: mentor, build_partner, learning_buddy")
	flags.StringSliceVar(&f.interests, "interests", nil, "Interests, comma separated (empty clears)")
	flags.StringSliceVar(&f.openTo, "open-to", nil, "Open to, comma separated (empty clears)")
	flags.StringSliceVar(&f.learning, "learning", nil, "Currently learning, comma separated (empty clears)")

	return cmd
}

// patch builds a ProfilePatch from the flags that were set on the command line.
func (f profileFlags) patch(flags *pflag.FlagSet) (domain.ProfilePatch, error) {
	const op = "update profile"
	var patch domain.ProfilePatch

	setString := func(name string, value string, target **string) {
		if flags.Changed(name) {
			v := value
			*target = &v
		}
	}
	setTags := func(name string, values []string, target **[]string) {
		if flags.Changed(name) {
			v := domain.NormalizeTags(values)
			*target = &v
		}
	}

	setString("bio", f.bio, &patch.Bio)
	setString("city", f.city, &patch.City)
	setString("email", f.email, &patch.Email)
	setString("idea", f.idea, &patch.CurrentIdea)
	setTags("interests", f.interests, &patch.Interests)
	setTags("open-to", f.openTo, &patch.OpenTo)
	setTags("learning", f.learning, &patch.Learning)

	if flags.Changed("style") {
		style, err := domain.ParseBuildingStyle(f.style)
		if err != nil {
			return domain.ProfilePatch{}, domain.ValidationFailed(op, "building_style", err.Error())
		}
		patch.BuildingStyle = &style
	}
	if flags.Changed("availability") {
		availability, err := domain.ParseAvailability(f.availability)
		if err != nil {
			return domain.ProfilePatch{}, domain.ValidationFailed(op, "availability", err.Error())
		}
		patch.Availability = &availability
	}
	if flags.Changed("experience") {
		level, err := domain.ParseExperienceLevel(f.experience)
		if err != nil {
			return domain.ProfilePatch{}, domain.ValidationFailed(op, "experience_level", err.Error())
		}
		patch.ExperienceLevel = &level
	}
	if flags.Changed("looking-for") {
		lookingFor, err := domain.ParseLookingFor(f.lookingFor)
		if err != nil {
			return domain.ProfilePatch{}, domain.ValidationFailed(op, "looking_for", err.Error())
		}
		patch.LookingFor = &lookingFor
	}

	return patch, nil
}

func newBioCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bio",
		Short: "Draft or replace your bio",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate <github-url>",
			Short: "Draft a bio from a GitHub profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				bio, err := c.app.profiles.GenerateBio(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), bio)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <bio>",
			Short: "Replace your bio",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := c.app.profiles.UpdateBio(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Bio updated.")
				return err
			},
		},
	)

	return cmd
}
