package application

import (
	"context"
	"testing"
	"time"

	filekv "github.com/bnema/partners-cli/internal/adapters/kv/file"
	sessiontoml "github.com/bnema/partners-cli/internal/adapters/session/toml"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func mockAnySession() any {
	return mock.AnythingOfType("domain.Session")
}

func mockAnyRegisterRequest() any {
	return mock.AnythingOfType("ports.RegisterRequest")
}

func fixtureProfile() domain.Builder {
	idea := "voice-first AI assistant"
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

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
		Interests:       []string{"web apps", "AI tools"},
		OpenTo:          []string{"weekend projects"},
		GitHubLanguages: []string{"TypeScript", "React"},
		TotalStars:      45,
		PublicRepos:     12,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func fixtureSession() domain.Session {
	return domain.Session{ID: "s-1", Profile: fixtureProfile()}
}

// newFileSessionStore returns a session store over a real file backend rooted in dir.
func newFileSessionStore(dir string) *sessiontoml.Store {
	return sessiontoml.NewStore(filekv.NewStore(dir))
}

// signedInContext returns a SessionContext backed by a file store that already holds session.
func signedInContext(t *testing.T, session domain.Session) (*SessionContext, *sessiontoml.Store) {
	t.Helper()

	store := newFileSessionStore(t.TempDir())
	require.NoError(t, store.Save(context.Background(), session))

	sessions := NewSessionContext(store)
	_, ok := sessions.Init(context.Background())
	require.True(t, ok)

	return sessions, store
}
