package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harmonyhousing/accommodation-portal/internal/api/metrics"
	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

type AccommodationService struct {
	repo   ports.AccommodationRepository
	logger zerolog.Logger
}

func NewAccommodationService(repo ports.AccommodationRepository, logger zerolog.Logger) *AccommodationService {
	return &AccommodationService{repo: repo, logger: logger}
}

// List returns the listings matching all provided filter predicates. An empty
// input returns the full collection in store order.
func (s *AccommodationService) List(ctx context.Context, input ports.ListAccommodationsInput) ([]*domain.Accommodation, error) {
	filter := ports.ListAccommodationsFilter{
		Type:     input.Type,
		Location: input.Location,
	}
	// "Any" is a sentinel meaning no preference filter at all.
	if input.ReligiousPreference != "" && input.ReligiousPreference != string(domain.PreferenceAny) {
		filter.ReligiousPreference = input.ReligiousPreference
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list accommodations")
		return nil, err
	}
	return items, nil
}

// Get retrieves a single listing. An unknown id is a normal not-found outcome,
// not a system failure.
func (s *AccommodationService) Get(ctx context.Context, id string) (*domain.Accommodation, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new listing. Caller-supplied id and timestamps are ignored:
// the service assigns a fresh UUID and stamps createdAt = updatedAt = now.
func (s *AccommodationService) Create(ctx context.Context, input ports.CreateAccommodationInput) (*domain.Accommodation, error) {
	now := time.Now().UTC()

	status := domain.AccommodationStatus(input.Status)
	if status == "" {
		status = domain.AccommodationAvailable
	}
	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	acc := &domain.Accommodation{
		ID:                  uuid.NewString(),
		Title:               input.Title,
		Description:         input.Description,
		Type:                domain.AccommodationType(input.Type),
		Location:            input.Location,
		Address:             input.Address,
		Price:               input.Price,
		ReligiousPreference: domain.ReligiousPreference(input.ReligiousPreference),
		Status:              status,
		Bedrooms:            input.Bedrooms,
		Bathrooms:           input.Bathrooms,
		Amenities:           amenities,
		Images:              images,
		ContactEmail:        input.ContactEmail,
		ContactPhone:        input.ContactPhone,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		s.logger.Error().Err(err).Msg("failed to create accommodation")
		return nil, err
	}

	metrics.AccommodationsCreatedTotal.WithLabelValues(string(acc.Type)).Inc()
	s.logger.Info().Str("accommodation_id", acc.ID).Str("title", acc.Title).Msg("accommodation created")
	return acc, nil
}

// Update merges the provided fields over the stored record and refreshes
// updatedAt. Fails with domain.ErrAccommodationNotFound when id is absent.
func (s *AccommodationService) Update(ctx context.Context, id string, upd ports.AccommodationUpdate) (*domain.Accommodation, error) {
	acc, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("accommodation_id", id).Msg("accommodation updated")
	return acc, nil
}

// Delete removes a listing. Deleting an absent id is a no-op, so the call is
// idempotent.
func (s *AccommodationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("accommodation_id", id).Msg("failed to delete accommodation")
		return err
	}
	s.logger.Info().Str("accommodation_id", id).Msg("accommodation deleted")
	return nil
}
