package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuilder() domain.Builder {
	idea := "voice-first AI assistant"
	return domain.Builder{
		Username:        "alice",
		GitHubUsername:  "alice-dev",
		Bio:             "Ships fast frontends",
		City:            "Paris",
		CurrentIdea:     &idea,
		BuildingStyle:   domain.BuildingStyleShipsFast,
		Availability:    domain.AvailabilityThisWeekend,
		ExperienceLevel: domain.ExperienceIntermediate,
		LookingFor:      domain.LookingForBuildPartner,
		Interests:       []string{"Web apps", "AI tools"},
		OpenTo:          []string{"weekend projects"},
		GitHubLanguages: []string{"TypeScript", "Go", "Rust", "Python"},
		GitHubRepos:     []domain.Repo{{Name: "kit", Description: "UI kit", Stars: 30, Language: "TypeScript"}},
		TotalStars:      45,
		PublicRepos:     12,
	}
}

func TestRenderProfile(t *testing.T) {
	output, err := RenderProfile(sampleBuilder())
	require.NoError(t, err)
	output = plain(output)

	assert.Contains(t, output, "alice (Paris)")
	assert.Contains(t, output, "https://api.dicebear.com/7.x/avataaars/svg?seed=alice")
	assert.Contains(t, output, "Ships fast frontends")
	assert.Contains(t, output, "style: Ships Fast")
	assert.Contains(t, output, "availability: This weekend")
	assert.Contains(t, output, "looking for: Build partner")
	assert.Contains(t, output, "interests: Web apps, AI tools")
	assert.Contains(t, output, "building: voice-first AI assistant")
	assert.Contains(t, output, "alice-dev (12 repos, 45 stars)")
	assert.Contains(t, output, "kit ★30 [TypeScript] UI kit")
	assert.NotContains(t, output, "learning:")
}

func TestRenderProfileSparse(t *testing.T) {
	output, err := RenderProfile(domain.Builder{Username: "bob"})
	require.NoError(t, err)
	output = plain(output)

	assert.Contains(t, output, "bob")
	assert.Contains(t, output, "city: n/a")
	assert.Contains(t, output, "style: n/a")
	assert.Contains(t, output, "interests: n/a")
	assert.NotContains(t, output, "github:")
}

func TestRenderSession(t *testing.T) {
	output, err := RenderSession(domain.Session{}, false)
	require.NoError(t, err)
	output = plain(output)
	assert.Contains(t, output, "Not signed in")

	output, err = RenderSession(domain.Session{ID: "s-1", Profile: sampleBuilder(), NeedsOnboarding: true}, true)
	require.NoError(t, err)
	output = plain(output)
	assert.Contains(t, output, "Signed in as alice")
	assert.Contains(t, output, "session: s-1")
	assert.Contains(t, output, "Onboarding pending")
}

func TestRenderDirectory(t *testing.T) {
	busy := domain.Builder{Username: "bob", Availability: domain.AvailabilityBusy}

	output, err := RenderDirectory([]domain.Builder{sampleBuilder(), busy}, DirectoryOptions{})
	require.NoError(t, err)
	output = plain(output)

	assert.Contains(t, output, "builders: 2")
	assert.Contains(t, output, "This weekend · actively building · TypeScript, Go, Rust")
	assert.NotContains(t, output, "Python")
	assert.Contains(t, output, "Busy")
	assert.Less(t, strings.Index(output, "alice"), strings.Index(output, "bob"))
}

func TestRenderDirectoryEmptySearch(t *testing.T) {
	output, err := RenderDirectory(nil, DirectoryOptions{Search: "cobol"})
	require.NoError(t, err)
	output = plain(output)

	assert.Contains(t, output, `builders matching "cobol": 0`)
	assert.Contains(t, output, "No builders found.")
}

func TestRenderMatches(t *testing.T) {
	output, err := RenderMatches([]application.MatchOutcome{
		{
			Target: "bob",
			Result: domain.MatchResult{
				Builder:        domain.Builder{Username: "bob"},
				ChemistryScore: 85,
				Vibe:           "Complementary builders",
				Why:            "You ship, bob plans",
				BuildIdea:      "A hackathon planner",
			},
		},
		{Target: "ghost", Err: errors.New("match: Target not found")},
	})
	require.NoError(t, err)
	output = plain(output)

	assert.Contains(t, output, "You × bob")
	assert.Contains(t, output, "85/100 (strong)")
	assert.Contains(t, output, "[=================---]")
	assert.Contains(t, output, "vibe: Complementary builders")
	assert.Contains(t, output, "build idea: A hackathon planner")
	assert.Contains(t, output, "You × ghost")
	assert.Contains(t, output, "match failed: match: Target not found")
}

func TestRenderScoreBarClamps(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[----]", plain(renderScoreBar(-10, 4, s)))
	assert.Equal(t, "[====]", plain(renderScoreBar(140, 4, s)))
	assert.Equal(t, "", renderScoreBar(50, 0, s))
}

func plain(output string) string {
	return ansi.Strip(output)
}
