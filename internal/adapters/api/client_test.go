package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceJSON = `{
	"username": "alice",
	"github_username": "alice-dev",
	"avatar": "https://api.dicebear.com/7.x/avataaars/svg?seed=alice",
	"bio": "Ships fast frontends",
	"building_style": "ships_fast",
	"interests": ["web apps", "AI tools"],
	"open_to": ["weekend projects", "hackathons"],
	"availability": "this_weekend",
	"current_idea": "Building a voice-first AI assistant",
	"city": "Paris",
	"github_languages": ["TypeScript", "React", "Python"],
	"github_repos": [{"name": "voice-bot", "description": null, "stars": 3, "language": "TypeScript"}],
	"total_stars": 45,
	"public_repos": 12,
	"learning": [],
	"experience_level": "intermediate",
	"looking_for": "build_partner",
	"created_at": "2026-03-01T09:30:00.123456",
	"updated_at": "2026-03-01T11:00:00Z"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestRegisterSendsSnakeCasePayloadAndParsesSession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := decodeBody(t, r)
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "demo123", body["password"])
		assert.Equal(t, "alice-dev", body["github_username"])
		assert.Equal(t, "Paris", body["city"])
		assert.NotContains(t, body, "email")

		writeJSON(w, http.StatusOK, `{"session_id":"s-1","needs_onboarding":false,"profile":`+aliceJSON+`}`)
	})

	city := "Paris"
	session, err := client.Register(context.Background(), ports.RegisterRequest{
		Username:       "alice",
		Password:       "demo123",
		GitHubUsername: "alice-dev",
		City:           &city,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SessionID("s-1"), session.ID)
	assert.False(t, session.NeedsOnboarding)
	profile := session.Profile
	assert.Equal(t, domain.Username("alice"), profile.Username)
	assert.Equal(t, domain.BuildingStyleShipsFast, profile.BuildingStyle)
	assert.Equal(t, domain.AvailabilityThisWeekend, profile.Availability)
	assert.Equal(t, "Paris", profile.City)
	require.NotNil(t, profile.CurrentIdea)
	assert.Equal(t, "Building a voice-first AI assistant", *profile.CurrentIdea)
	assert.Nil(t, profile.Learning)
	assert.Equal(t, []domain.Repo{{Name: "voice-bot", Stars: 3, Language: "TypeScript"}}, profile.GitHubRepos)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 123456000, time.UTC), profile.CreatedAt)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), profile.UpdatedAt)
}

func TestRegisterDuplicateUsernameIsValidationError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail":"Username already taken"}`)
	})

	_, err := client.Register(context.Background(), ports.RegisterRequest{Username: "alice", Password: "x", GitHubUsername: "alice-dev"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "register: Username already taken", err.Error())
}

func TestRequestValidationListDetailReportsField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","github_username"],"msg":"field required","type":"value_error.missing"}]}`)
	})

	_, err := client.Register(context.Background(), ports.RegisterRequest{Username: "alice", Password: "x"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "github_username", domain.FieldOf(err))
	assert.ErrorContains(t, err, "field required")
}

func TestLoginInvalidCredentialsIsValidationError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Invalid username or password"}`)
	})

	_, err := client.Login(context.Background(), ports.LoginRequest{Username: "alice", Password: "nope"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.ErrorContains(t, err, "Invalid username or password")
}

func TestLoginRejectsUnknownEnumerationValue(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"session_id":"s-1","profile":{"username":"alice","building_style":"vibes"}}`)
	})

	_, err := client.Login(context.Background(), ports.LoginRequest{Username: "alice", Password: "demo123"})
	require.ErrorIs(t, err, domain.ErrProtocol)
}

func TestLoginMissingSessionIDIsProtocolError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"profile":`+aliceJSON+`}`)
	})

	_, err := client.Login(context.Background(), ports.LoginRequest{Username: "alice", Password: "demo123"})
	require.ErrorIs(t, err, domain.ErrProtocol)
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/update", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, map[string]any{
			"session_id":     "s-1",
			"bio":            "new text",
			"building_style": "plans_first",
			"interests":      []any{},
		}, body)

		writeJSON(w, http.StatusOK, `{"success":true,"profile":`+aliceJSON+`}`)
	})

	bio := "new text"
	style := domain.BuildingStylePlansFirst
	interests := []string{}
	builder, err := client.UpdateProfile(context.Background(), "s-1", domain.ProfilePatch{
		Bio:           &bio,
		BuildingStyle: &style,
		Interests:     &interests,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Username("alice"), builder.Username)
}

func TestUpdateProfileSendsClearedIdea(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, map[string]any{
			"session_id":   "s-1",
			"current_idea": "",
		}, body)

		cleared := strings.Replace(aliceJSON,
			`"current_idea": "Building a voice-first AI assistant"`, `"current_idea": ""`, 1)
		writeJSON(w, http.StatusOK, `{"success":true,"profile":`+cleared+`}`)
	})

	idea := ""
	builder, err := client.UpdateProfile(context.Background(), "s-1", domain.ProfilePatch{CurrentIdea: &idea})
	require.NoError(t, err)
	assert.Nil(t, builder.CurrentIdea)
}

func TestUpdateProfileInvalidSessionIsNotAuthenticated(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Invalid session"}`)
	})

	bio := "x"
	_, err := client.UpdateProfile(context.Background(), "stale", domain.ProfilePatch{Bio: &bio})
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestDiscoverEncodesFiltersAsQueryParameters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/discover", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "s-1", query.Get("session_id"))
		assert.Equal(t, "AI tools", query.Get("filter_interest"))
		assert.Equal(t, "this_month", query.Get("filter_availability"))
		assert.Equal(t, "5", query.Get("limit"))

		writeJSON(w, http.StatusOK, `[`+aliceJSON+`,{"username":"bob","bio":"ML","availability":"this_month"}]`)
	})

	builders, err := client.Discover(context.Background(), ports.DiscoverQuery{
		SessionID:    "s-1",
		Interest:     "AI tools",
		Availability: domain.AvailabilityThisMonth,
		Limit:        5,
	})
	require.NoError(t, err)
	require.Len(t, builders, 2)
	assert.Equal(t, domain.Username("bob"), builders[1].Username)
}

func TestDiscoverOmitsEmptyFilters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `[]`)
	})

	builders, err := client.Discover(context.Background(), ports.DiscoverQuery{})
	require.NoError(t, err)
	assert.Empty(t, builders)
}

func TestDiscoverHTMLNotFoundIsProtocolError(t *testing.T) {
	t.Parallel()

	const page = "<html><body><h1>404 Not Found</h1><p>nginx internal details</p></body></html>"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, page)
	})

	_, err := client.Discover(context.Background(), ports.DiscoverQuery{})
	require.ErrorIs(t, err, domain.ErrProtocol)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.NotContains(t, err.Error(), "nginx")
	assert.NotContains(t, err.Error(), "<html>")
}

func TestSuccessWithUnparseableBodyIsProtocolError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "<html>maintenance</html>")
	})

	_, err := client.Discover(context.Background(), ports.DiscoverQuery{})
	require.ErrorIs(t, err, domain.ErrProtocol)
	assert.NotContains(t, err.Error(), "maintenance")
}

func TestServerErrorWithDetailIsNetworkError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"detail":"Failed to generate match"}`)
	})

	_, err := client.Match(context.Background(), "s-1", "bob", ports.MatchOptions{})
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestMatchEscapesTargetAndParsesResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/match/sarah_ux", r.URL.Path)
		assert.Equal(t, "s-1", r.URL.Query().Get("session_id"))
		assert.Equal(t, "true", r.URL.Query().Get("local_only"))
		_, err := uuid.Parse(r.Header.Get(requestIDHeader))
		assert.NoError(t, err)

		writeJSON(w, http.StatusOK, `{"matched_builder":{"username":"sarah_ux","building_style":"designs_first"},"chemistry_score":87,"vibe":"Design meets speed","why":"Complementary","build_idea":"A prototyping tool"}`)
	})

	result, err := client.Match(context.Background(), "s-1", "sarah_ux", ports.MatchOptions{LocalOnly: true})
	require.NoError(t, err)
	assert.Equal(t, domain.Username("sarah_ux"), result.Builder.Username)
	assert.Equal(t, 87, result.ChemistryScore)
	assert.Equal(t, "Design meets speed", result.Vibe)
	assert.Equal(t, "Complementary", result.Why)
	assert.Equal(t, "A prototyping tool", result.BuildIdea)
}

func TestMatchMissingScoreIsProtocolError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"matched_builder":{"username":"bob"},"vibe":"?"}`)
	})

	_, err := client.Match(context.Background(), "s-1", "bob", ports.MatchOptions{})
	require.ErrorIs(t, err, domain.ErrProtocol)
}

func TestMatchUnknownTargetIsValidationError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"detail":"Builder not found"}`)
	})

	_, err := client.Match(context.Background(), "s-1", "ghost", ports.MatchOptions{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := Client{BaseURL: baseURL}
	_, err := client.Health(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestRequestTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 20 * time.Millisecond}
	_, err := client.Health(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestGenerateAndUpdateBio(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		switch r.URL.Path {
		case "/generate-bio":
			assert.Equal(t, "https://github.com/alice-dev", body["github_url"])
			writeJSON(w, http.StatusOK, `{"bio":"Builds voice tools"}`)
		case "/update-bio":
			assert.Equal(t, "s-1", body["session_id"])
			assert.Equal(t, "Builds voice tools", body["bio"])
			writeJSON(w, http.StatusOK, `{"success":true}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	bio, err := client.GenerateBio(context.Background(), "https://github.com/alice-dev")
	require.NoError(t, err)
	assert.Equal(t, "Builds voice tools", bio)

	require.NoError(t, client.UpdateBio(context.Background(), "s-1", bio))
}

func TestUpdateBioRejectedIsValidationError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false}`)
	})

	err := client.UpdateBio(context.Background(), "s-1", "x")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "bio", domain.FieldOf(err))
}

func TestGetProfileAndHealth(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/profile/alice":
			writeJSON(w, http.StatusOK, aliceJSON)
		case "/health":
			writeJSON(w, http.StatusOK, `{"status":"ok","version":"1.0.0","total_builders":2,"active_sessions":1}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	builder, err := client.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice-dev", builder.GitHubUsername)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.HealthStatus{Status: "ok", Version: "1.0.0", TotalBuilders: 2, ActiveSessions: 1}, health)
}

func TestBuildAPIURLKeepsBasePathPrefix(t *testing.T) {
	t.Parallel()

	got, err := buildAPIURL("https://example.com/partners", "/match/bob")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/partners/match/bob", got)

	_, err = buildAPIURL("ftp://example.com", "/health")
	assert.ErrorContains(t, err, "http or https")
}
