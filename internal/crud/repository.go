// Package crud implements the one generic resource facade shared by every
// REST resource in the service: a GORM-backed repository with
// ownership-scoped access, a service layer handling parent-id injection and
// full-record replacement, and the gin handler glue for the five standard
// operations plus the structured filter endpoint.
package crud

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/finbase/cardbase/internal/domain"
	"github.com/finbase/cardbase/internal/pkg"
)

// Options configures a Repository for one resource type.
type Options struct {
	// OwnerColumn is the foreign-key column of the owning resource
	// (e.g. "card_id"). Empty for top-level resources.
	OwnerColumn string

	// SortFields and FilterFields are the allow-lists applied to list queries.
	SortFields   []string
	FilterFields []string

	// UpdateFields is the explicit allow-list of mutable columns written by
	// Update. Identifier columns (id, created_at, the owner column) must not
	// appear here; every other persisted column should, so that a column
	// missing from the list fails a test instead of silently keeping stale
	// data.
	UpdateFields []string
}

// Repository is a generic GORM repository for one resource type T.
// PT is *T with the domain.Entity method set.
type Repository[T any, PT interface {
	*T
	domain.Entity
}] struct {
	db   *gorm.DB
	opts Options
}

// NewRepository creates a Repository for T backed by the given database.
func NewRepository[T any, PT interface {
	*T
	domain.Entity
}](db *gorm.DB, opts Options) *Repository[T, PT] {
	return &Repository[T, PT]{db: db, opts: opts}
}

// Create inserts a new record.
func (r *Repository[T, PT]) Create(ctx context.Context, e PT) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Get retrieves a record by its primary key. For owner-scoped resources the
// record is looked up by its own id first and the owner foreign key compared
// afterwards; a mismatch surfaces as ErrNotFound exactly like a missing
// record, so callers cannot probe which parent a record belongs to.
func (r *Repository[T, PT]) Get(ctx context.Context, id, ownerID uint) (PT, error) {
	var zero PT
	e := PT(new(T))
	if err := r.db.WithContext(ctx).First(e, id).Error; err != nil {
		return zero, mapError(err)
	}
	if r.scoped() {
		owned, ok := any(e).(domain.Owned)
		if !ok || owned.OwnerID() != ownerID {
			return zero, domain.ErrNotFound
		}
	}
	return e, nil
}

// List returns a paginated, sorted, and filtered page of records, optionally
// restricted to one owner. The count and the page fetch are two round trips
// over the same session and are best-effort consistent with each other.
func (r *Repository[T, PT]) List(ctx context.Context, ownerID uint, req domain.PageRequest) (*domain.PageResult[T], error) {
	base := r.db.WithContext(ctx).Model(new(T)).
		Scopes(pkg.Filter(req, r.opts.FilterFields))
	if r.scoped() {
		base = base.Where(r.opts.OwnerColumn+" = ?", ownerID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var items []T
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, r.opts.SortFields),
	).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(items, total, req), nil
}

// Update replaces every column in the UpdateFields allow-list with the values
// carried by e, in a single conditional statement guarded by the primary key
// and, for scoped resources, the owner foreign key. Zero rows affected means
// the record does not exist or belongs to a different owner; both report
// ErrNotFound.
func (r *Repository[T, PT]) Update(ctx context.Context, e PT, ownerID uint) error {
	tx := r.db.WithContext(ctx).Model(e).Select(r.opts.UpdateFields)
	if r.scoped() {
		tx = tx.Where(r.opts.OwnerColumn+" = ?", ownerID)
	}

	result := tx.Updates(e)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a record by primary key in a single conditional statement,
// guarded by the owner foreign key for scoped resources. A repeated delete
// reports ErrNotFound, not a server error.
func (r *Repository[T, PT]) Delete(ctx context.Context, id, ownerID uint) error {
	var result *gorm.DB
	if r.scoped() {
		result = r.db.WithContext(ctx).
			Where("id = ? AND "+r.opts.OwnerColumn+" = ?", id, ownerID).
			Delete(new(T))
	} else {
		result = r.db.WithContext(ctx).Delete(new(T), id)
	}
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository[T, PT]) scoped() bool {
	return r.opts.OwnerColumn != ""
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
