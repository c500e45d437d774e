package cmd

import (
	"time"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
)

// JSON views use the service's snake_case names. The session token is never printed.

type sessionJSON struct {
	Username        domain.Username `json:"username"`
	NeedsOnboarding bool            `json:"needs_onboarding"`
	Profile         profileJSON     `json:"profile"`
}

type profileJSON struct {
	Username        domain.Username `json:"username"`
	GitHubUsername  string          `json:"github_username,omitempty"`
	Avatar          string          `json:"avatar"`
	Bio             string          `json:"bio"`
	City            string          `json:"city,omitempty"`
	CurrentIdea     *string         `json:"current_idea"`
	BuildingStyle   string          `json:"building_style,omitempty"`
	Availability    string          `json:"availability,omitempty"`
	ExperienceLevel string          `json:"experience_level,omitempty"`
	LookingFor      string          `json:"looking_for,omitempty"`
	Interests       []string        `json:"interests"`
	OpenTo          []string        `json:"open_to"`
	Learning        []string        `json:"learning"`
	GitHubLanguages []string        `json:"github_languages"`
	GitHubRepos     []repoJSON      `json:"github_repos"`
	TotalStars      int             `json:"total_stars"`
	PublicRepos     int             `json:"public_repos"`
	CreatedAt       string          `json:"created_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}

type repoJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Language    string `json:"language,omitempty"`
}

type matchResultJSON struct {
	Builder        profileJSON `json:"matched_builder"`
	ChemistryScore int         `json:"chemistry_score"`
	ScoreBand      string      `json:"score_band"`
	Vibe           string      `json:"vibe"`
	Why            string      `json:"why"`
	BuildIdea      string      `json:"build_idea"`
}

type healthJSON struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	TotalBuilders  int    `json:"total_builders"`
	ActiveSessions int    `json:"active_sessions"`
}

func toSessionJSON(session domain.Session) sessionJSON {
	return sessionJSON{
		Username:        session.Profile.Username,
		NeedsOnboarding: session.NeedsOnboarding,
		Profile:         toProfileJSON(session.Profile),
	}
}

func toProfileJSON(b domain.Builder) profileJSON {
	repos := make([]repoJSON, 0, len(b.GitHubRepos))
	for _, repo := range b.GitHubRepos {
		repos = append(repos, repoJSON{
			Name:        repo.Name,
			Description: repo.Description,
			Stars:       repo.Stars,
			Language:    repo.Language,
		})
	}

	return profileJSON{
		Username:        b.Username,
		GitHubUsername:  b.GitHubUsername,
		Avatar:          b.AvatarURL(),
		Bio:             b.Bio,
		City:            b.City,
		CurrentIdea:     b.CurrentIdea,
		BuildingStyle:   string(b.BuildingStyle),
		Availability:    string(b.Availability),
		ExperienceLevel: string(b.ExperienceLevel),
		LookingFor:      string(b.LookingFor),
		Interests:       listJSON(b.Interests),
		OpenTo:          listJSON(b.OpenTo),
		Learning:        listJSON(b.Learning),
		GitHubLanguages: listJSON(b.GitHubLanguages),
		GitHubRepos:     repos,
		TotalStars:      b.TotalStars,
		PublicRepos:     b.PublicRepos,
		CreatedAt:       timeJSON(b.CreatedAt),
		UpdatedAt:       timeJSON(b.UpdatedAt),
	}
}

func toProfilesJSON(builders []domain.Builder) []profileJSON {
	out := make([]profileJSON, 0, len(builders))
	for _, b := range builders {
		out = append(out, toProfileJSON(b))
	}
	return out
}

func toMatchResultJSON(result domain.MatchResult) *matchResultJSON {
	return &matchResultJSON{
		Builder:        toProfileJSON(result.Builder),
		ChemistryScore: result.ChemistryScore,
		ScoreBand:      result.ScoreBand(),
		Vibe:           result.Vibe,
		Why:            result.Why,
		BuildIdea:      result.BuildIdea,
	}
}

func toHealthJSON(status ports.HealthStatus) healthJSON {
	return healthJSON(status)
}

// listJSON prints empty collections as [] rather than null.
func listJSON(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func timeJSON(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
