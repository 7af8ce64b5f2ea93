package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/catalog"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/farm-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/state"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// SessionService keeps visitor sessions in memory and applies actions to
// them one at a time.
type SessionService interface {
	Start(ctx context.Context) (*models.SessionView, error)
	View(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
	Dispatch(ctx context.Context, id uuid.UUID, action state.Action) (*models.SessionView, error)
	Cart(ctx context.Context, id uuid.UUID) (*models.CartSummary, error)
	Saved(ctx context.Context, id uuid.UUID) ([]models.Product, error)
	Listings(ctx context.Context, id uuid.UUID) ([]models.Product, error)
	ListingAggregates(ctx context.Context, id uuid.UUID) (*models.CatalogAggregates, error)
}

type SessionOptions struct {
	Validate    *validator.Validate
	DemoProfile models.User
	// SeedListings is handed to every farmer who signs in.
	SeedListings []models.Product
	// Limiter bounds login and signup attempts per session; nil disables it.
	Limiter repository.RateLimitRepository
	// IdleTTL evicts sessions untouched for this long.
	IdleTTL time.Duration
	// MaxSessions caps the store; Start is refused while it is full.
	MaxSessions int
	Now         func() time.Time
	NewID       func() string
}

const (
	DefaultSessionIdleTTL = 30 * time.Minute
	DefaultMaxSessions    = 10000
)

type sessionEntry struct {
	state    state.State
	lastSeen time.Time
}

type sessionService struct {
	marketplace MarketplaceService
	opts        SessionOptions

	mu        sync.Mutex
	sessions  map[uuid.UUID]*sessionEntry
	lastSweep time.Time
}

func NewSessionService(marketplace MarketplaceService, opts SessionOptions) SessionService {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultSessionIdleTTL
	}

	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}

	return &sessionService{
		marketplace: marketplace,
		opts:        opts,
		sessions:    make(map[uuid.UUID]*sessionEntry),
		lastSweep:   opts.Now(),
	}
}

func (s *sessionService) Start(ctx context.Context) (*models.SessionView, error) {
	logger := middleware.LoggerFromContext(ctx)

	id := uuid.New()
	st := state.New()
	now := s.opts.Now()

	s.mu.Lock()

	evicted := 0
	if len(s.sessions) >= s.opts.MaxSessions || now.Sub(s.lastSweep) >= s.opts.IdleTTL {
		evicted = s.sweepLocked(now)
	}

	if len(s.sessions) >= s.opts.MaxSessions {
		count := len(s.sessions)
		s.mu.Unlock()

		metrics.SetActiveSessions(count)
		logger.Warn("Session store is full", slog.Int("sessions", count))

		return nil, errors.TooManyRequestsError("Too many active sessions. Please try again later.", int(s.opts.IdleTTL.Seconds()))
	}

	s.sessions[id] = &sessionEntry{state: st, lastSeen: now}
	count := len(s.sessions)
	s.mu.Unlock()

	metrics.SetActiveSessions(count)

	if evicted > 0 {
		logger.Info("Idle sessions evicted", slog.Int("evicted", evicted))
	}

	logger.Info("Session started", slog.String("sessionId", id.String()))

	return viewOf(id, st), nil
}

// sweepLocked drops every idle session and returns how many went.
func (s *sessionService) sweepLocked(now time.Time) int {
	evicted := 0

	for id, entry := range s.sessions {
		if s.expired(entry, now) {
			delete(s.sessions, id)
			evicted++
		}
	}

	s.lastSweep = now

	return evicted
}

func (s *sessionService) expired(entry *sessionEntry, now time.Time) bool {
	return now.Sub(entry.lastSeen) >= s.opts.IdleTTL
}

// load returns the session state and marks it as used. An idle session is
// evicted and reported as missing.
func (s *sessionService) load(id uuid.UUID) (state.State, error) {
	now := s.opts.Now()

	s.mu.Lock()

	entry, ok := s.sessions[id]
	if ok && s.expired(entry, now) {
		delete(s.sessions, id)
		count := len(s.sessions)
		s.mu.Unlock()

		metrics.SetActiveSessions(count)

		return state.State{}, errors.NotFoundError("Session not found")
	}

	defer s.mu.Unlock()

	if !ok {
		return state.State{}, errors.NotFoundError("Session not found")
	}

	entry.lastSeen = now

	return entry.state, nil
}

func (s *sessionService) View(_ context.Context, id uuid.UUID) (*models.SessionView, error) {
	st, err := s.load(id)
	if err != nil {
		return nil, err
	}

	return viewOf(id, st), nil
}

func (s *sessionService) Dispatch(ctx context.Context, id uuid.UUID, action state.Action) (*models.SessionView, error) {
	ctx, span := tracer.Start(ctx, "SessionService.Dispatch")
	defer span.End()

	span.SetAttributes(attribute.String("session.action", action.Name()))

	logger := middleware.LoggerFromContext(ctx).With(
		slog.String("sessionId", id.String()),
		slog.String("action", action.Name()),
	)

	if _, err := s.load(id); err != nil {
		return nil, err
	}

	if err := s.checkRateLimit(ctx, id, action); err != nil {
		metrics.RecordSessionAction(action.Name(), err)
		recordSpanError(span, err)
		logger.Warn("Session action refused", slog.Any("error", err))

		return nil, err
	}

	snapshot, err := s.marketplace.Snapshot(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	env := s.env(snapshot)

	s.mu.Lock()

	entry, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, errors.NotFoundError("Session not found")
	}

	next, err := state.Reduce(entry.state, action, env)
	if err == nil {
		entry.state = next
	}

	s.mu.Unlock()

	metrics.RecordSessionAction(action.Name(), err)

	if err != nil {
		recordSpanError(span, err)
		logger.Warn("Session action rejected", slog.Any("error", err))

		return nil, err
	}

	span.SetAttributes(attribute.String("session.status", string(next.Status)))
	logger.Info("Session action applied", slog.String("status", string(next.Status)))

	return viewOf(id, next), nil
}

// checkRateLimit only counts credential submissions.
func (s *sessionService) checkRateLimit(ctx context.Context, id uuid.UUID, action state.Action) error {
	if s.opts.Limiter == nil {
		return nil
	}

	switch action.(type) {
	case state.Login, state.Signup:
	default:
		return nil
	}

	allowed, _, retryAfter, err := s.opts.Limiter.CheckRateLimit(ctx, id.String())
	if err != nil {
		return errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return errors.TooManyRequestsError("Too many sign-in attempts. Please try again later.", retryAfter)
	}

	return nil
}

func (s *sessionService) env(snapshot catalog.Snapshot) state.Env {
	return state.Env{
		Catalog:      snapshot,
		Validate:     s.opts.Validate,
		DemoProfile:  s.opts.DemoProfile,
		SeedListings: slices.Clone(s.opts.SeedListings),
		Now:          s.opts.Now,
		NewID:        s.opts.NewID,
	}
}

func (s *sessionService) Cart(ctx context.Context, id uuid.UUID) (*models.CartSummary, error) {
	st, err := s.requireRole(id, models.RoleBuyer)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.marketplace.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := snapshot.Summarize(st.Cart)

	return &summary, nil
}

func (s *sessionService) Saved(ctx context.Context, id uuid.UUID) ([]models.Product, error) {
	st, err := s.requireRole(id, models.RoleBuyer)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.marketplace.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return snapshot.Saved(st.Saved), nil
}

func (s *sessionService) Listings(_ context.Context, id uuid.UUID) ([]models.Product, error) {
	st, err := s.requireRole(id, models.RoleFarmer)
	if err != nil {
		return nil, err
	}

	return slices.Clone(st.Listings), nil
}

func (s *sessionService) ListingAggregates(_ context.Context, id uuid.UUID) (*models.CatalogAggregates, error) {
	st, err := s.requireRole(id, models.RoleFarmer)
	if err != nil {
		return nil, err
	}

	aggregates := catalog.ComputeAggregates(st.Listings)

	return &aggregates, nil
}

func (s *sessionService) requireRole(id uuid.UUID, role models.Role) (state.State, error) {
	st, err := s.load(id)
	if err != nil {
		return state.State{}, err
	}

	if err := st.Require(role); err != nil {
		return state.State{}, err
	}

	return st, nil
}

func viewOf(id uuid.UUID, st state.State) *models.SessionView {
	view := st.View()
	view.ID = id

	return &view
}
