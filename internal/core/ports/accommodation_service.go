package ports

import (
	"context"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// CreateAccommodationInput carries all caller-supplied fields for a new
// listing. ID and timestamps are always assigned by the service.
type CreateAccommodationInput struct {
	Title               string
	Description         string
	Type                string
	Location            string
	Address             string
	Price               float64
	ReligiousPreference string
	Status              string
	Bedrooms            int
	Bathrooms           float64
	Amenities           []string
	Images              []string
	ContactEmail        string
	ContactPhone        string
}

// ListAccommodationsInput carries the optional filter predicates from the
// transport layer.
type ListAccommodationsInput struct {
	ReligiousPreference string
	Type                string
	Location            string
}

// AccommodationService defines use-case operations for listings.
type AccommodationService interface {
	List(ctx context.Context, input ListAccommodationsInput) ([]*domain.Accommodation, error)
	Get(ctx context.Context, id string) (*domain.Accommodation, error)
	Create(ctx context.Context, input CreateAccommodationInput) (*domain.Accommodation, error)
	Update(ctx context.Context, id string, upd AccommodationUpdate) (*domain.Accommodation, error)
	Delete(ctx context.Context, id string) error
}
