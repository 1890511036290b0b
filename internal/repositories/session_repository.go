package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripforge/internal/models/domain_models"
	"tripforge/pkg/utils"
)

// TripSessionRepository holds the per-session TripCreationState aggregates.
// Sessions are ephemeral: the backing store is in-memory only and entries
// expire after an idle TTL, mirroring the lifetime of the planning UI.
type TripSessionRepository interface {
	Create(ctx context.Context) (*domain_models.TripCreationState, error)
	// Get returns a deep-copied snapshot, or nil if the session is missing
	// or expired.
	Get(ctx context.Context, sessionID string) (*domain_models.TripCreationState, error)
	// Update runs mutate on the live state under the store lock. Each call is
	// processed to completion before the next, so mutations behave like
	// serially dispatched reducer actions. A successful mutate slides the
	// session's expiry forward.
	Update(ctx context.Context, sessionID string, mutate func(*domain_models.TripCreationState) error) error
	Delete(ctx context.Context, sessionID string) error
	// Sweep drops expired sessions and reports how many were removed.
	Sweep() int
}

type sessionEntry struct {
	state     *domain_models.TripCreationState
	expiresAt time.Time
}

type inMemorySessionRepository struct {
	mu   sync.RWMutex
	data map[string]*sessionEntry
	ttl  time.Duration
}

func NewTripSessionRepository(ttl time.Duration) TripSessionRepository {
	return &inMemorySessionRepository{
		data: make(map[string]*sessionEntry),
		ttl:  ttl,
	}
}

func (r *inMemorySessionRepository) Create(ctx context.Context) (*domain_models.TripCreationState, error) {
	state := domain_models.NewTripCreationState(uuid.New().String())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[state.SessionID] = &sessionEntry{
		state:     state,
		expiresAt: time.Now().Add(r.ttl),
	}

	return state.Clone(), nil
}

func (r *inMemorySessionRepository) Get(ctx context.Context, sessionID string) (*domain_models.TripCreationState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.data[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.state.Clone(), nil
}

func (r *inMemorySessionRepository) Update(ctx context.Context, sessionID string, mutate func(*domain_models.TripCreationState) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.data[sessionID]
	if !ok {
		return utils.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(r.data, sessionID)
		return utils.ErrSessionNotFound
	}

	if err := mutate(entry.state); err != nil {
		return err
	}

	entry.state.Touch()
	entry.expiresAt = time.Now().Add(r.ttl)
	return nil
}

func (r *inMemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[sessionID]; !ok {
		return utils.ErrSessionNotFound
	}

	delete(r.data, sessionID)
	return nil
}

func (r *inMemorySessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, entry := range r.data {
		if now.After(entry.expiresAt) {
			delete(r.data, id)
			removed++
		}
	}
	return removed
}
