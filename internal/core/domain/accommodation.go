package domain

import (
	"errors"
	"time"
)

// AccommodationType classifies a rentable unit.
type AccommodationType string

const (
	TypeApartment AccommodationType = "Apartment"
	TypeHouse     AccommodationType = "House"
	TypeRoom      AccommodationType = "Room"
	TypeStudio    AccommodationType = "Studio"
	TypeShared    AccommodationType = "Shared"
)

// ReligiousPreference narrows who a listing is intended for. "Any" is a
// wildcard on both sides: an "Any" listing matches every preference filter,
// and an "Any" filter matches every listing.
type ReligiousPreference string

const (
	PreferenceMuslim    ReligiousPreference = "Muslim"
	PreferenceNonMuslim ReligiousPreference = "Non-Muslim"
	PreferenceAny       ReligiousPreference = "Any"
)

// AccommodationStatus is the availability state of a listing.
type AccommodationStatus string

const (
	AccommodationAvailable AccommodationStatus = "Available"
	AccommodationOccupied  AccommodationStatus = "Occupied"
	AccommodationPending   AccommodationStatus = "Pending"
)

var ErrAccommodationNotFound = errors.New("accommodation not found")
var ErrForbidden = errors.New("access forbidden")

// Accommodation is a rentable unit listing.
type Accommodation struct {
	ID                  string              `json:"id" bson:"_id"`
	Title               string              `json:"title" bson:"title"`
	Description         string              `json:"description" bson:"description"`
	Type                AccommodationType   `json:"type" bson:"type"`
	Location            string              `json:"location" bson:"location"`
	Address             string              `json:"address" bson:"address"`
	Price               float64             `json:"price" bson:"price"`
	ReligiousPreference ReligiousPreference `json:"religious_preference" bson:"religious_preference"`
	Status              AccommodationStatus `json:"status" bson:"status"`
	Bedrooms            int                 `json:"bedrooms" bson:"bedrooms"`
	Bathrooms           float64             `json:"bathrooms" bson:"bathrooms"`
	Amenities           []string            `json:"amenities" bson:"amenities"`
	Images              []string            `json:"images" bson:"images"`
	ContactEmail        string              `json:"contact_email" bson:"contact_email"`
	ContactPhone        string              `json:"contact_phone" bson:"contact_phone"`
	CreatedAt           time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" bson:"updated_at"`
}

// MatchesPreference reports whether the listing passes a religious-preference
// filter. An empty or "Any" filter passes everything; an "Any" listing passes
// every filter.
func (a Accommodation) MatchesPreference(filter ReligiousPreference) bool {
	if filter == "" || filter == PreferenceAny {
		return true
	}
	return a.ReligiousPreference == filter || a.ReligiousPreference == PreferenceAny
}
