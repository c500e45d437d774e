package ports

import (
	"context"

	"github.com/bnema/partners-cli/internal/domain"
)

type RegisterRequest struct {
	Username       string
	Password       string
	GitHubUsername string
	Email          *string
	City           *string
}

type LoginRequest struct {
	Username string
	Password string
}

// DiscoverQuery narrows the candidate list server-side. Zero values mean no filter.
type DiscoverQuery struct {
	SessionID    domain.SessionID
	Interest     string
	Availability domain.Availability
	Limit        int
}

type MatchOptions struct {
	LocalOnly bool
}

type HealthStatus struct {
	Status         string
	Version        string
	TotalBuilders  int
	ActiveSessions int
}

// PartnersAPI is the remote partners service. Every error returned wraps one
// of the domain error kinds.
type PartnersAPI interface {
	Register(ctx context.Context, req RegisterRequest) (domain.Session, error)
	Login(ctx context.Context, req LoginRequest) (domain.Session, error)
	UpdateProfile(ctx context.Context, sessionID domain.SessionID, patch domain.ProfilePatch) (domain.Builder, error)
	GetProfile(ctx context.Context, username domain.Username) (domain.Builder, error)
	Discover(ctx context.Context, query DiscoverQuery) ([]domain.Builder, error)
	Match(ctx context.Context, sessionID domain.SessionID, target domain.Username, opts MatchOptions) (domain.MatchResult, error)
	GenerateBio(ctx context.Context, githubURL string) (string, error)
	UpdateBio(ctx context.Context, sessionID domain.SessionID, bio string) error
	Health(ctx context.Context) (HealthStatus, error)
}
