package repository

import (
	"context"

	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
)

// ProfileStore abstracts profile storage. The default implementation is
// in-memory; a Redis-backed store can be configured for deployments that
// share profiles across replicas.
type ProfileStore interface {
	// Upsert creates or replaces a profile. CreatedAt is preserved for
	// existing profiles and set for new ones; UpdatedAt is always stamped.
	Upsert(ctx context.Context, p *domain.Profile) error
	// Get returns the profile or domain.ErrProfileNotFound.
	Get(ctx context.Context, studentID string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	// Delete removes the profile or returns domain.ErrProfileNotFound.
	Delete(ctx context.Context, studentID string) error
}
