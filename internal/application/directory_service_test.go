package application

import (
	"context"
	"testing"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"github.com/bnema/partners-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directoryFixture() []domain.Builder {
	return []domain.Builder{
		{Username: "bob", Bio: "Backend engineer", GitHubLanguages: []string{"Go", "Rust"}},
		{Username: "carol", Bio: "Design systems", GitHubLanguages: []string{"TypeScript"}},
		{Username: "dave", Bio: "Game jams", GitHubLanguages: []string{"C#"}},
	}
}

func TestListCandidatesForwardsSession(t *testing.T) {
	api := mocks.NewMockPartnersAPI(t)
	sessions, _ := signedInContext(t, fixtureSession())
	service := NewDirectoryService(api, sessions)

	api.EXPECT().Discover(mockAnyContext(), ports.DiscoverQuery{
		SessionID:    "s-1",
		Interest:     "AI tools",
		Availability: domain.AvailabilityThisWeekend,
		Limit:        10,
	}).Return(directoryFixture(), nil).Once()

	builders, err := service.ListCandidates(context.Background(), DiscoverQuery{
		Interest:     " AI tools ",
		Availability: domain.AvailabilityThisWeekend,
		Limit:        10,
	})
	require.NoError(t, err)
	assert.Len(t, builders, 3)
}

func TestListCandidatesSignedOut(t *testing.T) {
	api := mocks.NewMockPartnersAPI(t)
	service := NewDirectoryService(api, NewSessionContext(newFileSessionStore(t.TempDir())))

	api.EXPECT().Discover(mockAnyContext(), ports.DiscoverQuery{}).Return(nil, nil).Once()

	builders, err := service.ListCandidates(context.Background(), DiscoverQuery{})
	require.NoError(t, err)
	assert.Empty(t, builders)
}

func TestListCandidatesRejectsInvalidQuery(t *testing.T) {
	testCases := []struct {
		name  string
		query DiscoverQuery
		field string
	}{
		{name: "availability", query: DiscoverQuery{Availability: "someday"}, field: "availability"},
		{name: "limit", query: DiscoverQuery{Limit: -1}, field: "limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockPartnersAPI(t)
			service := NewDirectoryService(api, NewSessionContext(newFileSessionStore(t.TempDir())))

			_, err := service.ListCandidates(context.Background(), tc.query)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.field, domain.FieldOf(err))
		})
	}
}

func TestBrowseFiltersLocally(t *testing.T) {
	testCases := []struct {
		name   string
		search string
		want   []domain.Username
	}{
		{name: "empty", search: "", want: []domain.Username{"bob", "carol", "dave"}},
		{name: "language", search: "rust", want: []domain.Username{"bob"}},
		{name: "bio", search: "DESIGN", want: []domain.Username{"carol"}},
		{name: "username", search: "av", want: []domain.Username{"dave"}},
		{name: "nothing", search: "cobol", want: []domain.Username{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockPartnersAPI(t)
			service := NewDirectoryService(api, NewSessionContext(newFileSessionStore(t.TempDir())))

			api.EXPECT().Discover(mockAnyContext(), ports.DiscoverQuery{}).Return(directoryFixture(), nil).Once()

			builders, err := service.Browse(context.Background(), DiscoverQuery{}, tc.search)
			require.NoError(t, err)

			got := make([]domain.Username, 0, len(builders))
			for _, builder := range builders {
				got = append(got, builder.Username)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBrowsePropagatesProtocolError(t *testing.T) {
	api := mocks.NewMockPartnersAPI(t)
	service := NewDirectoryService(api, NewSessionContext(newFileSessionStore(t.TempDir())))

	api.EXPECT().Discover(mockAnyContext(), ports.DiscoverQuery{}).
		Return(nil, domain.ProtocolFailure("discover", "status %d", 404)).Once()

	builders, err := service.Browse(context.Background(), DiscoverQuery{}, "go")
	require.ErrorIs(t, err, domain.ErrProtocol)
	assert.Nil(t, builders)
}

func TestProfileLookup(t *testing.T) {
	api := mocks.NewMockPartnersAPI(t)
	service := NewDirectoryService(api, NewSessionContext(newFileSessionStore(t.TempDir())))

	api.EXPECT().GetProfile(mockAnyContext(), domain.Username("bob")).Return(directoryFixture()[0], nil).Once()

	builder, err := service.Profile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", builder.Bio)
}
