package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createAccommodationRequest struct {
	Title               string   `json:"title"                validate:"required"`
	Description         string   `json:"description"          validate:"required"`
	Type                string   `json:"type"                 validate:"required,oneof=Apartment House Room Studio Shared"`
	Location            string   `json:"location"             validate:"required"`
	Address             string   `json:"address"              validate:"required"`
	Price               float64  `json:"price"                validate:"required,gt=0"`
	ReligiousPreference string   `json:"religious_preference" validate:"required,oneof=Muslim Non-Muslim Any"`
	Status              string   `json:"status"               validate:"omitempty,oneof=Available Occupied Pending"`
	Bedrooms            int      `json:"bedrooms"             validate:"gte=0"`
	Bathrooms           float64  `json:"bathrooms"            validate:"gte=0"`
	Amenities           []string `json:"amenities"`
	Images              []string `json:"images"`
	ContactEmail        string   `json:"contact_email"        validate:"required,email"`
	ContactPhone        string   `json:"contact_phone"        validate:"required"`
}

// updateAccommodationRequest is a partial update: only provided fields change.
type updateAccommodationRequest struct {
	Title               *string   `json:"title"`
	Description         *string   `json:"description"`
	Type                *string   `json:"type"                 validate:"omitempty,oneof=Apartment House Room Studio Shared"`
	Location            *string   `json:"location"`
	Address             *string   `json:"address"`
	Price               *float64  `json:"price"                validate:"omitempty,gt=0"`
	ReligiousPreference *string   `json:"religious_preference" validate:"omitempty,oneof=Muslim Non-Muslim Any"`
	Status              *string   `json:"status"               validate:"omitempty,oneof=Available Occupied Pending"`
	Bedrooms            *int      `json:"bedrooms"             validate:"omitempty,gte=0"`
	Bathrooms           *float64  `json:"bathrooms"            validate:"omitempty,gte=0"`
	Amenities           *[]string `json:"amenities"`
	Images              *[]string `json:"images"`
	ContactEmail        *string   `json:"contact_email"        validate:"omitempty,email"`
	ContactPhone        *string   `json:"contact_phone"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type accommodationResponse struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Type                string    `json:"type"`
	Location            string    `json:"location"`
	Address             string    `json:"address"`
	Price               float64   `json:"price"`
	ReligiousPreference string    `json:"religious_preference"`
	Status              string    `json:"status"`
	Bedrooms            int       `json:"bedrooms"`
	Bathrooms           float64   `json:"bathrooms"`
	Amenities           []string  `json:"amenities"`
	Images              []string  `json:"images"`
	ContactEmail        string    `json:"contact_email"`
	ContactPhone        string    `json:"contact_phone"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type listAccommodationsResponse struct {
	Data  []accommodationResponse `json:"data"`
	Total int                     `json:"total"`
}
