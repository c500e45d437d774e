package application

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"pkt.systems/pslog"
)

const defaultMatchConcurrency = 4

// Matchmaker coordinates match requests for one UI surface. Requests are
// tracked per target; duplicates for the same target are independent calls.
type Matchmaker struct {
	api     ports.PartnersAPI
	session *SessionContext
	opts    ports.MatchOptions

	mu      sync.Mutex
	pending map[domain.Username]map[uuid.UUID]*inflightMatch
	current *domain.MatchResult
}

type inflightMatch struct {
	cancel    context.CancelFunc
	cancelled bool
}

func NewMatchmaker(api ports.PartnersAPI, session *SessionContext, opts ports.MatchOptions) *Matchmaker {
	return &Matchmaker{
		api:     api,
		session: session,
		opts:    opts,
		pending: map[domain.Username]map[uuid.UUID]*inflightMatch{},
	}
}

// RequestMatch scores the session profile against target. The last request
// to resolve successfully becomes Current, unless it was cancelled.
func (m *Matchmaker) RequestMatch(ctx context.Context, target domain.Username) (domain.MatchResult, error) {
	const op = "match"

	target = domain.Username(strings.TrimSpace(string(target)))
	if target == "" {
		return domain.MatchResult{}, domain.ValidationFailed(op, "target", "target username is required")
	}
	session, err := m.session.Require(op)
	if err != nil {
		return domain.MatchResult{}, err
	}

	requestCtx, token, entry := m.register(ctx, target)
	defer m.release(target, token)

	log := pslog.Ctx(ctx).With("target", target, "token", token.String())
	log.Debug("match requested")

	result, err := m.api.Match(requestCtx, session.ID, target, m.opts)
	if err != nil {
		log.Debug("match failed", "err", err)
		return domain.MatchResult{}, err
	}

	m.mu.Lock()
	if !entry.cancelled {
		current := result
		m.current = &current
	}
	m.mu.Unlock()

	log.Debug("match resolved", "score", result.ChemistryScore)
	return result, nil
}

// IsPending reports whether any request for target is in flight.
func (m *Matchmaker) IsPending(target domain.Username) bool {
	return m.PendingCount(target) > 0
}

func (m *Matchmaker) PendingCount(target domain.Username) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.pending[target])
}

// Cancel aborts every in-flight request for target and returns how many were cancelled.
func (m *Matchmaker) Cancel(target domain.Username) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cancelLocked(target)
}

func (m *Matchmaker) CancelAll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for target := range m.pending {
		total += m.cancelLocked(target)
	}
	return total
}

// Current returns the result on display for this surface.
func (m *Matchmaker) Current() (domain.MatchResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.MatchResult{}, false
	}
	return *m.current, true
}

// MatchMany requests every target concurrently, at most limit at a time, and
// reports one outcome per target in input order.
func (m *Matchmaker) MatchMany(ctx context.Context, targets []domain.Username, limit int) []MatchOutcome {
	if limit <= 0 {
		limit = defaultMatchConcurrency
	}

	outcomes := make([]MatchOutcome, len(targets))
	var group errgroup.Group
	group.SetLimit(limit)

	for i, target := range targets {
		group.Go(func() error {
			result, err := m.RequestMatch(ctx, target)
			outcomes[i] = MatchOutcome{Target: target, Result: result, Err: err}
			return nil
		})
	}
	_ = group.Wait()

	return outcomes
}

func (m *Matchmaker) register(ctx context.Context, target domain.Username) (context.Context, uuid.UUID, *inflightMatch) {
	requestCtx, cancel := context.WithCancel(ctx)
	token, err := uuid.NewV7()
	if err != nil {
		token = uuid.New()
	}
	entry := &inflightMatch{cancel: cancel}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending[target] == nil {
		m.pending[target] = map[uuid.UUID]*inflightMatch{}
	}
	m.pending[target][token] = entry

	return requestCtx, token, entry
}

func (m *Matchmaker) release(target domain.Username, token uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.pending[target]
	if entry, ok := entries[token]; ok {
		entry.cancel()
		delete(entries, token)
	}
	if len(entries) == 0 {
		delete(m.pending, target)
	}
}

func (m *Matchmaker) cancelLocked(target domain.Username) int {
	entries := m.pending[target]
	for _, entry := range entries {
		entry.cancelled = true
		entry.cancel()
	}
	return len(entries)
}
