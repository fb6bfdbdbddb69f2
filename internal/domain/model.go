package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of
// DeletedAt: deletes in this service are hard deletes.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrimaryID returns the surrogate identifier assigned by the store.
func (m *BaseModel) PrimaryID() uint { return m.ID }

// SetPrimaryID sets the surrogate identifier. Used when a full-record update
// must target the id supplied in the URL path rather than the body.
func (m *BaseModel) SetPrimaryID(id uint) { m.ID = id }

// Entity is implemented by every persisted resource.
type Entity interface {
	PrimaryID() uint
	SetPrimaryID(id uint)
}

// Owned is implemented by parent-scoped resources: records whose valid
// access always requires confirming a foreign-key match to an owning
// resource (e.g. a card limit belongs to a card).
type Owned interface {
	Entity
	OwnerID() uint
	SetOwnerID(id uint)
}

// PageRequest holds pagination, sorting, and filtering parameters.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Filter   map[string]string
}

// PageResult is a bounded, offset-addressed slice of a resource collection
// returned with total-count metadata.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
