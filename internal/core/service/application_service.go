package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harmonyhousing/accommodation-portal/internal/api/metrics"
	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

type ApplicationService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, logger: logger}
}

// Submit records a new application. Status is forced to Pending regardless of
// anything the caller sent, and the accommodation reference is not checked:
// orphaned applications stay actionable after a listing is deleted.
func (s *ApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
	app := &domain.Application{
		ID:              uuid.NewString(),
		AccommodationID: input.AccommodationID,
		UserID:          input.UserID,
		UserName:        input.UserName,
		UserEmail:       input.UserEmail,
		UserPhone:       input.UserPhone,
		Message:         input.Message,
		Status:          domain.ApplicationPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.logger.Error().Err(err).Msg("failed to submit application")
		return nil, err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	s.logger.Info().
		Str("application_id", app.ID).
		Str("accommodation_id", app.AccommodationID).
		Str("user_id", app.UserID).
		Msg("application submitted")
	return app, nil
}

// List returns every application in store order.
func (s *ApplicationService) List(ctx context.Context) ([]*domain.Application, error) {
	return s.repo.List(ctx)
}

// ListMine returns the caller's own applications with per-status counts.
func (s *ApplicationService) ListMine(ctx context.Context, userID string) (*ports.MyApplicationsResult, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &ports.MyApplicationsResult{Items: items}
	result.Counts.Total = len(items)
	for _, app := range items {
		switch app.Status {
		case domain.ApplicationPending:
			result.Counts.Pending++
		case domain.ApplicationApproved:
			result.Counts.Approved++
		case domain.ApplicationRejected:
			result.Counts.Rejected++
		}
	}
	return result, nil
}

// Get retrieves a single application by id.
func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus applies a review decision. The transition table is enforced
// here: only Pending applications may move, and only to Approved or Rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("update application status: %w (from %s to %s)", domain.ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationDecisionsTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().
		Str("application_id", id).
		Str("status", string(status)).
		Msg("application status updated")
	return updated, nil
}
