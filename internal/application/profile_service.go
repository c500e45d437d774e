package application

import (
	"context"
	"strings"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"pkt.systems/pslog"
)

type ProfileService struct {
	api     ports.PartnersAPI
	session *SessionContext
}

func NewProfileService(api ports.PartnersAPI, session *SessionContext) *ProfileService {
	return &ProfileService{api: api, session: session}
}

// UpdateProfile sends only the fields set on patch and replaces the session
// profile with the one the server returns.
func (s *ProfileService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.Session, error) {
	const op = "update profile"

	if patch.IsEmpty() {
		return domain.Session{}, domain.ValidationFailed(op, "", "no profile fields to update")
	}
	if field, err := patch.Validate(); err != nil {
		return domain.Session{}, domain.ValidationFailed(op, field, err.Error())
	}

	updated, err := s.session.Update(ctx, op, func(current domain.Session) (domain.Session, error) {
		profile, err := s.api.UpdateProfile(ctx, current.ID, patch)
		if err != nil {
			return domain.Session{}, err
		}
		if profile.Username != current.Profile.Username {
			return domain.Session{}, domain.ProtocolFailure(op, "server returned profile %q for session of %q", profile.Username, current.Profile.Username)
		}

		current.Profile = profile
		current.NeedsOnboarding = false
		return current, nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	pslog.Ctx(ctx).Info("profile updated", "username", updated.Profile.Username, "fields", patch.ChangedFields())
	return updated, nil
}

// GenerateBio asks the service to draft a bio from a GitHub profile URL.
func (s *ProfileService) GenerateBio(ctx context.Context, githubURL string) (string, error) {
	const op = "generate bio"

	githubURL = strings.TrimSpace(githubURL)
	if githubURL == "" {
		return "", domain.ValidationFailed(op, "github_url", "github url is required")
	}

	return s.api.GenerateBio(ctx, githubURL)
}

// UpdateBio uses the single-field endpoint. It returns no profile, so the
// stored bio is patched locally once the server accepts it.
func (s *ProfileService) UpdateBio(ctx context.Context, bio string) (domain.Session, error) {
	const op = "update bio"

	return s.session.Update(ctx, op, func(current domain.Session) (domain.Session, error) {
		if err := s.api.UpdateBio(ctx, current.ID, bio); err != nil {
			return domain.Session{}, err
		}

		current.Profile.Bio = bio
		return current, nil
	})
}
