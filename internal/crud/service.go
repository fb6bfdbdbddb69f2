package crud

import (
	"context"

	"github.com/finbase/cardbase/internal/domain"
	"github.com/finbase/cardbase/internal/pkg"
)

// Service composes the repository into the five standard resource operations.
// For owner-scoped resources, the owner id always comes from the URL path and
// overrides any value carried in the request body.
type Service[T any, PT interface {
	*T
	domain.Entity
}] struct {
	repo *Repository[T, PT]
}

// NewService creates a Service over the given repository.
func NewService[T any, PT interface {
	*T
	domain.Entity
}](repo *Repository[T, PT]) *Service[T, PT] {
	return &Service[T, PT]{repo: repo}
}

// Create persists a new record, injecting the owner id for scoped resources.
func (s *Service[T, PT]) Create(ctx context.Context, e PT, ownerID uint) (PT, error) {
	var zero PT
	if owned, ok := any(e).(domain.Owned); ok {
		owned.SetOwnerID(ownerID)
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return zero, err
	}
	return e, nil
}

// Get retrieves a record by id within the owner scope.
func (s *Service[T, PT]) Get(ctx context.Context, id, ownerID uint) (PT, error) {
	return s.repo.Get(ctx, id, ownerID)
}

// List returns a page of records within the owner scope.
func (s *Service[T, PT]) List(ctx context.Context, ownerID uint, req domain.PageRequest) (*domain.PageResult[T], error) {
	return s.repo.List(ctx, ownerID, req)
}

// Filter is the strict variant of List used by the structured filter
// endpoint: page size, sort field, and filter keys are validated against the
// resource's allow-lists and rejected with a validation error instead of
// being clamped or ignored.
func (s *Service[T, PT]) Filter(ctx context.Context, ownerID uint, req domain.PageRequest) (*domain.PageResult[T], error) {
	if err := pkg.NormalizePageRequest(&req); err != nil {
		return nil, err
	}
	if err := pkg.ValidateSort(req.Sort, s.repo.opts.SortFields); err != nil {
		return nil, err
	}
	if err := pkg.ValidateFilter(req.Filter, s.repo.opts.FilterFields); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ownerID, req)
}

// Update replaces the record's mutable attribute set with the values in e.
// The id and owner id come from the URL path; on success the stored record is
// re-read and returned so the caller sees exactly what was persisted.
func (s *Service[T, PT]) Update(ctx context.Context, id, ownerID uint, e PT) (PT, error) {
	var zero PT
	e.SetPrimaryID(id)
	if owned, ok := any(e).(domain.Owned); ok {
		owned.SetOwnerID(ownerID)
	}
	if err := s.repo.Update(ctx, e, ownerID); err != nil {
		return zero, err
	}
	return s.repo.Get(ctx, id, ownerID)
}

// Delete removes a record by id within the owner scope.
func (s *Service[T, PT]) Delete(ctx context.Context, id, ownerID uint) error {
	return s.repo.Delete(ctx, id, ownerID)
}
