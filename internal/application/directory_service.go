package application

import (
	"context"
	"strings"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
)

type DirectoryService struct {
	api     ports.PartnersAPI
	session *SessionContext
}

func NewDirectoryService(api ports.PartnersAPI, session *SessionContext) *DirectoryService {
	return &DirectoryService{api: api, session: session}
}

// ListCandidates fetches builders from the service. Signing in is optional;
// when a session exists the server leaves the caller out of the list.
func (s *DirectoryService) ListCandidates(ctx context.Context, query DiscoverQuery) ([]domain.Builder, error) {
	const op = "discover"

	if query.Availability != "" && !query.Availability.Valid() {
		return nil, domain.ValidationFailed(op, "availability", "unsupported availability "+string(query.Availability))
	}
	if query.Limit < 0 {
		return nil, domain.ValidationFailed(op, "limit", "limit must not be negative")
	}

	request := ports.DiscoverQuery{
		Interest:     strings.TrimSpace(query.Interest),
		Availability: query.Availability,
		Limit:        query.Limit,
	}
	if session, ok := s.session.Current(); ok {
		request.SessionID = session.ID
	}

	return s.api.Discover(ctx, request)
}

// Browse lists candidates then narrows them locally with search.
func (s *DirectoryService) Browse(ctx context.Context, query DiscoverQuery, search string) ([]domain.Builder, error) {
	candidates, err := s.ListCandidates(ctx, query)
	if err != nil {
		return nil, err
	}

	return domain.Search(candidates, search), nil
}

func (s *DirectoryService) Profile(ctx context.Context, username domain.Username) (domain.Builder, error) {
	return s.api.GetProfile(ctx, username)
}
