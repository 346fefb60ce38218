package handler

import (
	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

// --- Request → Service input ---

func toCreateAccommodationInput(req createAccommodationRequest) ports.CreateAccommodationInput {
	return ports.CreateAccommodationInput{
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		Location:            req.Location,
		Address:             req.Address,
		Price:               req.Price,
		ReligiousPreference: req.ReligiousPreference,
		Status:              req.Status,
		Bedrooms:            req.Bedrooms,
		Bathrooms:           req.Bathrooms,
		Amenities:           req.Amenities,
		Images:              req.Images,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
	}
}

func toAccommodationUpdate(req updateAccommodationRequest) ports.AccommodationUpdate {
	return ports.AccommodationUpdate{
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		Location:            req.Location,
		Address:             req.Address,
		Price:               req.Price,
		ReligiousPreference: req.ReligiousPreference,
		Status:              req.Status,
		Bedrooms:            req.Bedrooms,
		Bathrooms:           req.Bathrooms,
		Amenities:           req.Amenities,
		Images:              req.Images,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
	}
}

// --- Domain → HTTP response ---

func toAccommodationResponse(a *domain.Accommodation) accommodationResponse {
	return accommodationResponse{
		ID:                  a.ID,
		Title:               a.Title,
		Description:         a.Description,
		Type:                string(a.Type),
		Location:            a.Location,
		Address:             a.Address,
		Price:               a.Price,
		ReligiousPreference: string(a.ReligiousPreference),
		Status:              string(a.Status),
		Bedrooms:            a.Bedrooms,
		Bathrooms:           a.Bathrooms,
		Amenities:           a.Amenities,
		Images:              a.Images,
		ContactEmail:        a.ContactEmail,
		ContactPhone:        a.ContactPhone,
		CreatedAt:           a.CreatedAt.UTC(),
		UpdatedAt:           a.UpdatedAt.UTC(),
	}
}

func toListAccommodationsResponse(items []*domain.Accommodation) listAccommodationsResponse {
	data := make([]accommodationResponse, len(items))
	for i, a := range items {
		data[i] = toAccommodationResponse(a)
	}
	return listAccommodationsResponse{Data: data, Total: len(data)}
}
