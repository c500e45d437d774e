package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"pkt.systems/pslog"
)

// SessionContext owns the single live session of the process. Workflows
// receive it explicitly; nothing reads the session store behind its back.
type SessionContext struct {
	store ports.SessionStore

	// writeMu serializes whole read-modify-write sequences, including the
	// remote call in between. stateMu only guards the in-memory copy.
	writeMu sync.Mutex
	stateMu sync.RWMutex
	session domain.Session
	present bool
}

func NewSessionContext(store ports.SessionStore) *SessionContext {
	return &SessionContext{store: store}
}

// Init loads the persisted session, if any. A missing or unreadable record
// leaves the context signed out.
func (c *SessionContext) Init(ctx context.Context) (domain.Session, bool) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	session, ok := c.store.Load(ctx)
	c.set(session, ok)
	if ok {
		pslog.Ctx(ctx).Debug("session restored", "username", session.Profile.Username, "needs_onboarding", session.NeedsOnboarding)
	}

	return c.Current()
}

func (c *SessionContext) Current() (domain.Session, bool) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	if !c.present {
		return domain.Session{}, false
	}
	session := c.session
	session.Profile = c.session.Profile.Clone()
	return session, true
}

// Require returns the live session or a NotAuthenticated error for op.
func (c *SessionContext) Require(op string) (domain.Session, error) {
	session, ok := c.Current()
	if !ok {
		return domain.Session{}, domain.NotAuthenticated(op, domain.ErrNoSession)
	}
	return session, nil
}

// Replace persists session as the new live session, overwriting any previous one.
func (c *SessionContext) Replace(ctx context.Context, session domain.Session) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.persist(ctx, session)
}

// Update runs fn against a copy of the live session and persists its result.
// When fn or the save fails the live session is left untouched.
func (c *SessionContext) Update(ctx context.Context, op string, fn func(domain.Session) (domain.Session, error)) (domain.Session, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	current, err := c.Require(op)
	if err != nil {
		return domain.Session{}, err
	}

	next, err := fn(current)
	if err != nil {
		return domain.Session{}, err
	}
	if err := c.persist(ctx, next); err != nil {
		return domain.Session{}, err
	}

	return next, nil
}

// Teardown deletes the persisted record and signs the context out.
func (c *SessionContext) Teardown(ctx context.Context) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	c.set(domain.Session{}, false)

	return nil
}

func (c *SessionContext) persist(ctx context.Context, session domain.Session) error {
	if err := c.store.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	c.set(session, true)
	return nil
}

func (c *SessionContext) set(session domain.Session, present bool) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	session.Profile = session.Profile.Clone()
	c.session = session
	c.present = present
}
