package application

import "github.com/bnema/partners-cli/internal/domain"

type RegisterCommand struct {
	Username       string
	Password       string
	GitHubUsername string
	Email          *string
	City           *string
}

type LoginCommand struct {
	Username string
	Password string
}

// DiscoverQuery narrows the directory listing. Zero values disable a filter.
type DiscoverQuery struct {
	Interest     string
	Availability domain.Availability
	Limit        int
}

// MatchOutcome is the per-target result of a batch match.
type MatchOutcome struct {
	Target domain.Username
	Result domain.MatchResult
	Err    error
}
