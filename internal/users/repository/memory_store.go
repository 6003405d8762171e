package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
)

// MemoryStore keeps profiles in process memory. This matches the service's
// final stripped-down deployment: no database, profiles live for the
// lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

// NewMemoryStore creates an empty in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]domain.Profile)}
}

func (s *MemoryStore) Upsert(_ context.Context, p *domain.Profile) error {
	if p.StudentID == "" {
		return domain.ErrStudentIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.profiles[p.StudentID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.profiles[p.StudentID] = *p
	return nil
}

func (s *MemoryStore) Get(_ context.Context, studentID string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[studentID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	// Stable order for listing endpoints
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[studentID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(s.profiles, studentID)
	return nil
}
