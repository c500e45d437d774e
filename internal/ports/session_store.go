package ports

import (
	"context"

	"github.com/bnema/partners-cli/internal/domain"
)

// SessionStore is the only boundary to persisted client state.
// Load reports false for a missing or unreadable record.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, bool)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
