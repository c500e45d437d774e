package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
)

func (c Client) Register(ctx context.Context, req ports.RegisterRequest) (domain.Session, error) {
	const op = "register"

	var resp authResponse
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/register",
		body: registerRequest{
			Username:       req.Username,
			Password:       req.Password,
			GitHubUsername: req.GitHubUsername,
			Email:          req.Email,
			City:           req.City,
		},
	}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	return resp.toSession(op)
}

func (c Client) Login(ctx context.Context, req ports.LoginRequest) (domain.Session, error) {
	const op = "login"

	var resp authResponse
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/login",
		body:   loginRequest{Username: req.Username, Password: req.Password},
	}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	return resp.toSession(op)
}

func (c Client) UpdateProfile(ctx context.Context, sessionID domain.SessionID, patch domain.ProfilePatch) (domain.Builder, error) {
	const op = "update profile"

	var resp updateProfileResponse
	err := c.do(ctx, call{
		op:            op,
		method:        http.MethodPost,
		path:          "/profile/update",
		body:          toUpdateProfileRequest(sessionID, patch),
		sessionScoped: true,
	}, &resp)
	if err != nil {
		return domain.Builder{}, err
	}
	if resp.Profile == nil {
		return domain.Builder{}, domain.ProtocolFailure(op, "response is missing profile")
	}

	builder, err := resp.Profile.toDomain()
	if err != nil {
		return domain.Builder{}, domain.ProtocolFailure(op, "decode profile: %w", err)
	}

	return builder, nil
}

func (c Client) GetProfile(ctx context.Context, username domain.Username) (domain.Builder, error) {
	const op = "get profile"

	if strings.TrimSpace(string(username)) == "" {
		return domain.Builder{}, domain.ValidationFailed(op, "username", "username is required")
	}

	var resp builderDTO
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/profile/" + url.PathEscape(string(username)),
	}, &resp)
	if err != nil {
		return domain.Builder{}, err
	}

	builder, err := resp.toDomain()
	if err != nil {
		return domain.Builder{}, domain.ProtocolFailure(op, "decode profile: %w", err)
	}

	return builder, nil
}

func (c Client) Discover(ctx context.Context, query ports.DiscoverQuery) ([]domain.Builder, error) {
	const op = "discover"

	values := url.Values{}
	if query.SessionID != "" {
		values.Set("session_id", string(query.SessionID))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if interest := strings.TrimSpace(query.Interest); interest != "" {
		values.Set("filter_interest", interest)
	}
	if query.Availability != "" {
		values.Set("filter_availability", string(query.Availability))
	}

	var resp []builderDTO
	err := c.do(ctx, call{
		op:            op,
		method:        http.MethodGet,
		path:          "/discover",
		query:         values,
		sessionScoped: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	builders := make([]domain.Builder, 0, len(resp))
	for i, entry := range resp {
		builder, err := entry.toDomain()
		if err != nil {
			return nil, domain.ProtocolFailure(op, "decode candidate %d: %w", i, err)
		}
		builders = append(builders, builder)
	}

	return builders, nil
}

func (c Client) Match(ctx context.Context, sessionID domain.SessionID, target domain.Username, opts ports.MatchOptions) (domain.MatchResult, error) {
	const op = "match"

	values := url.Values{}
	values.Set("session_id", string(sessionID))
	if opts.LocalOnly {
		values.Set("local_only", "true")
	}

	var resp matchResponse
	err := c.do(ctx, call{
		op:            op,
		method:        http.MethodPost,
		path:          "/match/" + url.PathEscape(string(target)),
		query:         values,
		sessionScoped: true,
	}, &resp)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if resp.MatchedBuilder == nil || resp.ChemistryScore == nil {
		return domain.MatchResult{}, domain.ProtocolFailure(op, "response is missing matched_builder or chemistry_score")
	}

	builder, err := resp.MatchedBuilder.toDomain()
	if err != nil {
		return domain.MatchResult{}, domain.ProtocolFailure(op, "decode matched builder: %w", err)
	}

	return domain.MatchResult{
		Builder:        builder,
		ChemistryScore: *resp.ChemistryScore,
		Vibe:           resp.Vibe,
		Why:            resp.Why,
		BuildIdea:      resp.BuildIdea,
	}, nil
}

func (c Client) GenerateBio(ctx context.Context, githubURL string) (string, error) {
	const op = "generate bio"

	var resp generateBioResponse
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/generate-bio",
		body:   generateBioRequest{GitHubURL: githubURL},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Bio == nil {
		return "", domain.ProtocolFailure(op, "response is missing bio")
	}

	return *resp.Bio, nil
}

func (c Client) UpdateBio(ctx context.Context, sessionID domain.SessionID, bio string) error {
	const op = "update bio"

	var resp updateBioResponse
	err := c.do(ctx, call{
		op:            op,
		method:        http.MethodPost,
		path:          "/update-bio",
		body:          updateBioRequest{SessionID: string(sessionID), Bio: bio},
		sessionScoped: true,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return domain.ValidationFailed(op, "bio", "bio was not accepted")
	}

	return nil
}

func (c Client) Health(ctx context.Context) (ports.HealthStatus, error) {
	var resp healthResponse
	err := c.do(ctx, call{
		op:     "health",
		method: http.MethodGet,
		path:   "/health",
	}, &resp)
	if err != nil {
		return ports.HealthStatus{}, err
	}

	return ports.HealthStatus{
		Status:         resp.Status,
		Version:        resp.Version,
		TotalBuilders:  resp.TotalBuilders,
		ActiveSessions: resp.ActiveSessions,
	}, nil
}

func (r authResponse) toSession(op string) (domain.Session, error) {
	if strings.TrimSpace(r.SessionID) == "" {
		return domain.Session{}, domain.ProtocolFailure(op, "response is missing session_id")
	}
	if r.Profile == nil {
		return domain.Session{}, domain.ProtocolFailure(op, "response is missing profile")
	}

	builder, err := r.Profile.toDomain()
	if err != nil {
		return domain.Session{}, domain.ProtocolFailure(op, "decode profile: %w", err)
	}

	return domain.Session{
		ID:              domain.SessionID(r.SessionID),
		Profile:         builder,
		NeedsOnboarding: r.NeedsOnboarding,
	}, nil
}
