package cmd

import (
	"fmt"

	"github.com/bnema/partners-cli/internal/adapters/render/card"
	"github.com/bnema/partners-cli/internal/application"
	"github.com/spf13/cobra"
)

func newRegisterCmd(c *cli) *cobra.Command {
	var (
		command       application.RegisterCommand
		email         string
		city          string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readSecret(cmd.InOrStdin(), command.Password, passwordStdin)
			if err != nil {
				return err
			}
			command.Password = password
			if cmd.Flags().Changed("email") {
				command.Email = &email
			}
			if cmd.Flags().Changed("city") {
				command.City = &city
			}

			session, err := c.app.auth.Register(cmd.Context(), command)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered as %s. Run `partners onboard` to complete your profile.\n", session.Profile.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&command.Username, "username", "", "Username")
	cmd.Flags().StringVar(&command.Password, "password", "", "Password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().StringVar(&command.GitHubUsername, "github", "", "GitHub username")
	cmd.Flags().StringVar(&email, "email", "", "Email (optional)")
	cmd.Flags().StringVar(&city, "city", "", "City (optional)")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func newLoginCmd(c *cli) *cobra.Command {
	var (
		command       application.LoginCommand
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readSecret(cmd.InOrStdin(), command.Password, passwordStdin)
			if err != nil {
				return err
			}
			command.Password = password

			session, err := c.app.auth.Login(cmd.Context(), command)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", session.Profile.Username); err != nil {
				return err
			}
			if session.NeedsOnboarding {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Your profile is incomplete. Run `partners onboard` to finish it.")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&command.Username, "username", "", "Username")
	cmd.Flags().StringVar(&command.Password, "password", "", "Password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in builder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, ok := c.app.sessions.Current()
			if asJSON {
				if !ok {
					return writeJSON(cmd, nil)
				}
				return writeJSON(cmd, toSessionJSON(session))
			}

			return writeRendered(cmd, func() (string, error) {
				return card.RenderSession(session, ok)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
