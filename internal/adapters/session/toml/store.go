package toml

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"pkt.systems/pslog"
)

// SessionKey is the single well-known key holding the session record.
const SessionKey = "partners/session"

// Store encodes the session as one TOML document inside a KV backend.
type Store struct {
	kv ports.KVStore
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(kv ports.KVStore) *Store {
	return &Store{kv: kv}
}

func (s *Store) Load(ctx context.Context) (domain.Session, bool) {
	log := pslog.Ctx(ctx).With("key", SessionKey)

	raw, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Warn("session record unreadable", "err", err)
		}
		return domain.Session{}, false
	}

	session, err := decodeSession(raw)
	if err != nil {
		log.Warn("session record malformed", "err", err)
		return domain.Session{}, false
	}

	return session, true
}

// Save replaces the whole record. Empty collections and a blank idea are
// stored as absent and load back as nil.
func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if !session.Valid() {
		return errors.New("session id and username are required")
	}

	data, err := encodeSession(session)
	if err != nil {
		return err
	}

	if err := s.kv.Put(ctx, SessionKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	pslog.Ctx(ctx).Debug("session saved", "username", session.Profile.Username)
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func encodeSession(session domain.Session) (string, error) {
	record := toSchema(session)
	record.applyDefaults()

	data, err := toml.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}

	return string(data), nil
}

func decodeSession(raw string) (domain.Session, error) {
	var record recordSchema
	if err := toml.Unmarshal([]byte(raw), &record); err != nil {
		return domain.Session{}, fmt.Errorf("decode session record: %w", err)
	}
	if err := record.validateVersion(); err != nil {
		return domain.Session{}, err
	}

	session, err := fromSchema(record)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.Valid() {
		return domain.Session{}, errors.New("session record is missing session id or username")
	}
	if err := session.Profile.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("session profile: %w", err)
	}

	return session, nil
}

func toSchema(session domain.Session) recordSchema {
	p := session.Profile
	var repos []repoSchema
	for _, repo := range p.GitHubRepos {
		repos = append(repos, repoSchema{
			Name:        repo.Name,
			Description: repo.Description,
			Stars:       repo.Stars,
			Language:    repo.Language,
		})
	}

	return recordSchema{
		Version:         currentSchemaVersion,
		SessionID:       string(session.ID),
		NeedsOnboarding: session.NeedsOnboarding,
		Profile: profileSchema{
			Username:        string(p.Username),
			GitHubUsername:  p.GitHubUsername,
			Avatar:          p.Avatar,
			Bio:             p.Bio,
			City:            p.City,
			CurrentIdea:     blankToNil(p.CurrentIdea),
			BuildingStyle:   string(p.BuildingStyle),
			Availability:    string(p.Availability),
			ExperienceLevel: string(p.ExperienceLevel),
			LookingFor:      string(p.LookingFor),
			Interests:       emptyToNil(p.Interests),
			OpenTo:          emptyToNil(p.OpenTo),
			Learning:        emptyToNil(p.Learning),
			GitHubLanguages: emptyToNil(p.GitHubLanguages),
			GitHubRepos:     repos,
			TotalStars:      p.TotalStars,
			PublicRepos:     p.PublicRepos,
			CreatedAt:       formatTime(p.CreatedAt),
			UpdatedAt:       formatTime(p.UpdatedAt),
		},
	}
}

func fromSchema(record recordSchema) (domain.Session, error) {
	p := record.Profile

	createdAt, err := parseTime(p.CreatedAt)
	if err != nil {
		return domain.Session{}, fmt.Errorf("profile created_at: %w", err)
	}
	updatedAt, err := parseTime(p.UpdatedAt)
	if err != nil {
		return domain.Session{}, fmt.Errorf("profile updated_at: %w", err)
	}

	var repos []domain.Repo
	for _, repo := range p.GitHubRepos {
		repos = append(repos, domain.Repo{
			Name:        repo.Name,
			Description: repo.Description,
			Stars:       repo.Stars,
			Language:    repo.Language,
		})
	}

	return domain.Session{
		ID:              domain.SessionID(record.SessionID),
		NeedsOnboarding: record.NeedsOnboarding,
		Profile: domain.Builder{
			Username:        domain.Username(p.Username),
			GitHubUsername:  p.GitHubUsername,
			Avatar:          p.Avatar,
			Bio:             p.Bio,
			City:            p.City,
			CurrentIdea:     blankToNil(p.CurrentIdea),
			BuildingStyle:   domain.BuildingStyle(p.BuildingStyle),
			Availability:    domain.Availability(p.Availability),
			ExperienceLevel: domain.ExperienceLevel(p.ExperienceLevel),
			LookingFor:      domain.LookingFor(p.LookingFor),
			Interests:       emptyToNil(p.Interests),
			OpenTo:          emptyToNil(p.OpenTo),
			Learning:        emptyToNil(p.Learning),
			GitHubLanguages: emptyToNil(p.GitHubLanguages),
			GitHubRepos:     repos,
			TotalStars:      p.TotalStars,
			PublicRepos:     p.PublicRepos,
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
		},
	}, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}

func emptyToNil(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	return values
}

func blankToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}
