package domain

import (
	"fmt"
	"strings"
	"time"
)

const avatarURLPrefix = "https://api.dicebear.com/7.x/avataaars/svg?seed="

type Username string

type Builder struct {
	Username       Username
	GitHubUsername string
	Avatar         string

	Bio         string
	City        string
	CurrentIdea *string

	BuildingStyle   BuildingStyle
	Availability    Availability
	ExperienceLevel ExperienceLevel
	LookingFor      LookingFor

	Interests       []string
	OpenTo          []string
	Learning        []string
	GitHubLanguages []string
	GitHubRepos     []Repo

	// TotalStars and PublicRepos are computed server-side from GitHub data.
	TotalStars  int
	PublicRepos int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repo struct {
	Name        string
	Description string
	Stars       int
	Language    string
}

// AvatarURL returns the supplied avatar or one derived from the username.
func (b Builder) AvatarURL() string {
	if strings.TrimSpace(b.Avatar) != "" {
		return b.Avatar
	}
	if b.Username == "" {
		return ""
	}

	return avatarURLPrefix + string(b.Username)
}

// TopLanguages returns at most n languages in their stored order.
func (b Builder) TopLanguages(n int) []string {
	if n <= 0 {
		return nil
	}
	if len(b.GitHubLanguages) <= n {
		return b.GitHubLanguages
	}

	return b.GitHubLanguages[:n]
}

func (b Builder) Validate() error {
	if strings.TrimSpace(string(b.Username)) == "" {
		return fmt.Errorf("username is required")
	}
	if b.BuildingStyle != "" && !b.BuildingStyle.Valid() {
		return fmt.Errorf("unsupported building style %q", b.BuildingStyle)
	}
	if b.Availability != "" && !b.Availability.Valid() {
		return fmt.Errorf("unsupported availability %q", b.Availability)
	}
	if b.ExperienceLevel != "" && !b.ExperienceLevel.Valid() {
		return fmt.Errorf("unsupported experience level %q", b.ExperienceLevel)
	}
	if b.LookingFor != "" && !b.LookingFor.Valid() {
		return fmt.Errorf("unsupported looking for %q", b.LookingFor)
	}

	return nil
}

// Clone returns a deep copy so drafts never alias the session profile.
func (b Builder) Clone() Builder {
	out := b
	if b.CurrentIdea != nil {
		idea := *b.CurrentIdea
		out.CurrentIdea = &idea
	}
	out.Interests = cloneStrings(b.Interests)
	out.OpenTo = cloneStrings(b.OpenTo)
	out.Learning = cloneStrings(b.Learning)
	out.GitHubLanguages = cloneStrings(b.GitHubLanguages)
	if b.GitHubRepos != nil {
		out.GitHubRepos = append([]Repo(nil), b.GitHubRepos...)
	}

	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}

	return append([]string(nil), values...)
}
