package toml

import "fmt"

const currentSchemaVersion = 1

type recordSchema struct {
	Version         int           `toml:"version"`
	SessionID       string        `toml:"session_id"`
	NeedsOnboarding bool          `toml:"needs_onboarding"`
	Profile         profileSchema `toml:"profile"`
}

func (s *recordSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s recordSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Username        string       `toml:"username"`
	GitHubUsername  string       `toml:"github_username,omitempty"`
	Avatar          string       `toml:"avatar,omitempty"`
	Bio             string       `toml:"bio,omitempty"`
	City            string       `toml:"city,omitempty"`
	CurrentIdea     *string      `toml:"current_idea,omitempty"`
	BuildingStyle   string       `toml:"building_style,omitempty"`
	Availability    string       `toml:"availability,omitempty"`
	ExperienceLevel string       `toml:"experience_level,omitempty"`
	LookingFor      string       `toml:"looking_for,omitempty"`
	Interests       []string     `toml:"interests,omitempty"`
	OpenTo          []string     `toml:"open_to,omitempty"`
	Learning        []string     `toml:"learning,omitempty"`
	GitHubLanguages []string     `toml:"github_languages,omitempty"`
	GitHubRepos     []repoSchema `toml:"github_repos,omitempty"`
	TotalStars      int          `toml:"total_stars,omitempty"`
	PublicRepos     int          `toml:"public_repos,omitempty"`
	CreatedAt       string       `toml:"created_at,omitempty"`
	UpdatedAt       string       `toml:"updated_at,omitempty"`
}

type repoSchema struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Stars       int    `toml:"stars,omitempty"`
	Language    string `toml:"language,omitempty"`
}
