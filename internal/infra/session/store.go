// Package session provides the in-memory order session store. Sessions are
// ephemeral by design: they hold an unsubmitted cart, they expire after a
// period of inactivity, and nothing survives a restart.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"bakehouse/config"
	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
)

type entry struct {
	state    entity.OrderState
	deadline time.Time
}

// Store is a TTL-bounded in-memory session map. Every read or write of a
// session slides its expiration forward, so only abandoned sessions expire.
type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry

	ttl   time.Duration
	sweep time.Duration
	now   func() time.Time

	logger *slog.Logger
	done   chan struct{}
	once   sync.Once
}

// StoreParams holds dependencies for the session store, injected by Fx.
type StoreParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// New creates the session store and registers its sweeper with the
// application lifecycle.
func New(params StoreParams) repository.SessionRepository {
	store := NewStore(params.Config.Order.SessionTTL, params.Config.Order.SessionSweepInterval, params.Logger)

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go store.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			store.Close()

			return nil
		},
	})

	return store
}

// NewStore creates a store without starting the sweeper. Callers that want
// expired sessions reclaimed run the sweeper via the lifecycle wiring in New.
func NewStore(ttl, sweep time.Duration, logger *slog.Logger) *Store {
	return &Store{
		entries: make(map[uuid.UUID]entry),
		ttl:     ttl,
		sweep:   sweep,
		now:     time.Now,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Close stops the sweeper. The store itself remains usable.
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *Store) run() {
	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if removed := s.evictExpired(); removed > 0 {
				s.logger.Debug("expired order sessions evicted", "count", removed)
			}
		}
	}
}

func (s *Store) evictExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if now.After(e.deadline) {
			delete(s.entries, id)
			removed++
		}
	}

	return removed
}

func (s *Store) Create(ctx context.Context, state entity.OrderState) (uuid.UUID, error) {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry{state: state, deadline: s.now().Add(s.ttl)}

	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (entity.OrderState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return entity.OrderState{}, repository.ErrSessionNotFound
	}

	e.deadline = s.now().Add(s.ttl)
	s.entries[id] = e

	return e.state, nil
}

func (s *Store) Update(ctx context.Context, id uuid.UUID, apply func(entity.OrderState) (entity.OrderState, error)) (entity.OrderState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return entity.OrderState{}, repository.ErrSessionNotFound
	}

	next, err := apply(e.state)
	if err != nil {
		return entity.OrderState{}, err
	}

	s.entries[id] = entry{state: next, deadline: s.now().Add(s.ttl)}

	return next, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(id); !ok {
		return repository.ErrSessionNotFound
	}

	delete(s.entries, id)

	return nil
}

// live looks up an entry and treats an expired one as absent, so a session
// the sweeper has not reached yet still reads as gone. Callers hold mu.
func (s *Store) live(id uuid.UUID) (entry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return entry{}, false
	}
	if s.now().After(e.deadline) {
		delete(s.entries, id)

		return entry{}, false
	}

	return e, true
}
