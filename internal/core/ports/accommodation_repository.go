package ports

import (
	"context"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// ListAccommodationsFilter carries the optional listing query predicates.
// All present predicates are ANDed together; a zero filter is a pass-through.
type ListAccommodationsFilter struct {
	ReligiousPreference string // empty or "Any" = no filter; otherwise match value or "Any" listings
	Type                string // optional: exact match on accommodation type
	Location            string // optional: case-insensitive substring match on location
}

// AccommodationUpdate holds a partial update. Nil fields are left untouched;
// only provided fields are merged over the stored record.
type AccommodationUpdate struct {
	Title               *string
	Description         *string
	Type                *string
	Location            *string
	Address             *string
	Price               *float64
	ReligiousPreference *string
	Status              *string
	Bedrooms            *int
	Bathrooms           *float64
	Amenities           *[]string
	Images              *[]string
	ContactEmail        *string
	ContactPhone        *string
}

// AccommodationRepository defines persistence operations for listings.
// Records are returned in insertion order: ordering is not a semantic
// guarantee, but the store preserves it for determinism.
type AccommodationRepository interface {
	Create(ctx context.Context, a *domain.Accommodation) error
	FindByID(ctx context.Context, id string) (*domain.Accommodation, error)
	List(ctx context.Context, filter ListAccommodationsFilter) ([]*domain.Accommodation, error)
	// Update applies the non-nil fields of upd plus the new updatedAt stamp,
	// returning the merged record. Returns domain.ErrAccommodationNotFound
	// when id is absent.
	Update(ctx context.Context, id string, upd AccommodationUpdate) (*domain.Accommodation, error)
	// Delete removes the record if present. Absence is not an error.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
