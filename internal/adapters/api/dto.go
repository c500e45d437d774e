package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/partners-cli/internal/domain"
)

type builderDTO struct {
	Username        string    `json:"username"`
	GitHubUsername  string    `json:"github_username"`
	Avatar          string    `json:"avatar"`
	Bio             string    `json:"bio"`
	City            *string   `json:"city"`
	CurrentIdea     *string   `json:"current_idea"`
	BuildingStyle   string    `json:"building_style"`
	Availability    string    `json:"availability"`
	ExperienceLevel string    `json:"experience_level"`
	LookingFor      string    `json:"looking_for"`
	Interests       []string  `json:"interests"`
	OpenTo          []string  `json:"open_to"`
	Learning        []string  `json:"learning"`
	GitHubLanguages []string  `json:"github_languages"`
	GitHubRepos     []repoDTO `json:"github_repos"`
	TotalStars      int       `json:"total_stars"`
	PublicRepos     int       `json:"public_repos"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

type repoDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
}

type authResponse struct {
	SessionID       string      `json:"session_id"`
	Profile         *builderDTO `json:"profile"`
	NeedsOnboarding bool        `json:"needs_onboarding"`
}

type registerRequest struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	GitHubUsername string  `json:"github_username"`
	Email          *string `json:"email,omitempty"`
	City           *string `json:"city,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	SessionID       string    `json:"session_id"`
	Bio             *string   `json:"bio,omitempty"`
	City            *string   `json:"city,omitempty"`
	Email           *string   `json:"email,omitempty"`
	CurrentIdea     *string   `json:"current_idea,omitempty"`
	BuildingStyle   *string   `json:"building_style,omitempty"`
	Availability    *string   `json:"availability,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	LookingFor      *string   `json:"looking_for,omitempty"`
	Interests       *[]string `json:"interests,omitempty"`
	OpenTo          *[]string `json:"open_to,omitempty"`
	Learning        *[]string `json:"learning,omitempty"`
}

type updateProfileResponse struct {
	Success bool        `json:"success"`
	Profile *builderDTO `json:"profile"`
}

type matchResponse struct {
	MatchedBuilder *builderDTO `json:"matched_builder"`
	ChemistryScore *int        `json:"chemistry_score"`
	Vibe           string      `json:"vibe"`
	Why            string      `json:"why"`
	BuildIdea      string      `json:"build_idea"`
}

type generateBioRequest struct {
	GitHubURL string `json:"github_url"`
}

type generateBioResponse struct {
	Bio *string `json:"bio"`
}

type updateBioRequest struct {
	SessionID string `json:"session_id"`
	Bio       string `json:"bio"`
}

type updateBioResponse struct {
	Success bool `json:"success"`
}

type healthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	TotalBuilders  int    `json:"total_builders"`
	ActiveSessions int    `json:"active_sessions"`
}

func toUpdateProfileRequest(sessionID domain.SessionID, patch domain.ProfilePatch) updateProfileRequest {
	return updateProfileRequest{
		SessionID:       string(sessionID),
		Bio:             patch.Bio,
		City:            patch.City,
		Email:           patch.Email,
		CurrentIdea:     patch.CurrentIdea,
		BuildingStyle:   enumPointer(patch.BuildingStyle),
		Availability:    enumPointer(patch.Availability),
		ExperienceLevel: enumPointer(patch.ExperienceLevel),
		LookingFor:      enumPointer(patch.LookingFor),
		Interests:       patch.Interests,
		OpenTo:          patch.OpenTo,
		Learning:        patch.Learning,
	}
}

func enumPointer[T ~string](value *T) *string {
	if value == nil {
		return nil
	}
	raw := string(*value)
	return &raw
}

// toDomain rejects values outside the closed enumerations so they never enter a Builder.
func (b builderDTO) toDomain() (domain.Builder, error) {
	if strings.TrimSpace(b.Username) == "" {
		return domain.Builder{}, fmt.Errorf("profile is missing username")
	}

	createdAt, err := parseTimestamp(b.CreatedAt)
	if err != nil {
		return domain.Builder{}, fmt.Errorf("profile created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(b.UpdatedAt)
	if err != nil {
		return domain.Builder{}, fmt.Errorf("profile updated_at: %w", err)
	}

	var repos []domain.Repo
	for _, repo := range b.GitHubRepos {
		repos = append(repos, domain.Repo{
			Name:        repo.Name,
			Description: repo.Description,
			Stars:       repo.Stars,
			Language:    repo.Language,
		})
	}

	builder := domain.Builder{
		Username:        domain.Username(b.Username),
		GitHubUsername:  b.GitHubUsername,
		Avatar:          b.Avatar,
		Bio:             b.Bio,
		BuildingStyle:   domain.BuildingStyle(b.BuildingStyle),
		Availability:    domain.Availability(b.Availability),
		ExperienceLevel: domain.ExperienceLevel(b.ExperienceLevel),
		LookingFor:      domain.LookingFor(b.LookingFor),
		Interests:       nonEmpty(b.Interests),
		OpenTo:          nonEmpty(b.OpenTo),
		Learning:        nonEmpty(b.Learning),
		GitHubLanguages: nonEmpty(b.GitHubLanguages),
		GitHubRepos:     repos,
		TotalStars:      b.TotalStars,
		PublicRepos:     b.PublicRepos,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if b.City != nil {
		builder.City = *b.City
	}
	if b.CurrentIdea != nil && strings.TrimSpace(*b.CurrentIdea) != "" {
		idea := *b.CurrentIdea
		builder.CurrentIdea = &idea
	}
	if err := builder.Validate(); err != nil {
		return domain.Builder{}, err
	}

	return builder, nil
}

// nonEmpty maps an empty wire list to nil so decoded profiles compare equal
// to stored ones.
func nonEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// parseTimestamp accepts RFC 3339 and zone-less ISO 8601 timestamps, the
// latter interpreted as UTC.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
