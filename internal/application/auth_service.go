package application

import (
	"context"
	"strings"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"pkt.systems/pslog"
)

type AuthService struct {
	api     ports.PartnersAPI
	session *SessionContext
}

func NewAuthService(api ports.PartnersAPI, session *SessionContext) *AuthService {
	return &AuthService{api: api, session: session}
}

// Register creates the account and persists a session that always starts onboarding.
func (s *AuthService) Register(ctx context.Context, cmd RegisterCommand) (domain.Session, error) {
	const op = "register"

	if err := requireFields(op,
		field{"username", cmd.Username},
		field{"password", cmd.Password},
		field{"github_username", cmd.GitHubUsername},
	); err != nil {
		return domain.Session{}, err
	}

	session, err := s.api.Register(ctx, ports.RegisterRequest{
		Username:       strings.TrimSpace(cmd.Username),
		Password:       cmd.Password,
		GitHubUsername: strings.TrimSpace(cmd.GitHubUsername),
		Email:          trimmedOrNil(cmd.Email),
		City:           trimmedOrNil(cmd.City),
	})
	if err != nil {
		return domain.Session{}, err
	}
	session.NeedsOnboarding = true

	if err := s.session.Replace(ctx, session); err != nil {
		return domain.Session{}, err
	}

	pslog.Ctx(ctx).Info("registered", "username", session.Profile.Username)
	return session, nil
}

// Login restores the profile exactly as the server returns it.
func (s *AuthService) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	const op = "login"

	if err := requireFields(op,
		field{"username", cmd.Username},
		field{"password", cmd.Password},
	); err != nil {
		return domain.Session{}, err
	}

	session, err := s.api.Login(ctx, ports.LoginRequest{
		Username: strings.TrimSpace(cmd.Username),
		Password: cmd.Password,
	})
	if err != nil {
		return domain.Session{}, err
	}

	if err := s.session.Replace(ctx, session); err != nil {
		return domain.Session{}, err
	}

	pslog.Ctx(ctx).Info("logged in", "username", session.Profile.Username)
	return session, nil
}

// Logout forgets the local session. The server is not contacted.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Teardown(ctx)
}

type field struct {
	name  string
	value string
}

func requireFields(op string, fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.ValidationFailed(op, f.name, f.name+" is required")
		}
	}
	return nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
