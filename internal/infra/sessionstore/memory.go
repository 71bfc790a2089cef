package sessionstore

import (
	"context"
	"sync"

	"facility-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// MemoryStore is a process-local booking store for tests and single-node
// runs. Access is serialized per store, which also keeps the non-overlap
// invariant intact under concurrent requests to one session.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID][]*booking.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID][]*booking.Booking),
	}
}

func (s *MemoryStore) Read(_ context.Context, sessionID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.sessions[sessionID]
	out := make([]*booking.Booking, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *MemoryStore) Write(_ context.Context, sessionID uuid.UUID, bookings []*booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]*booking.Booking, len(bookings))
	copy(stored, bookings)
	s.sessions[sessionID] = stored
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
