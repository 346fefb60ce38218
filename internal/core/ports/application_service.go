package ports

import (
	"context"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// SubmitApplicationInput carries the applicant's details. Status is never
// caller-controlled: submissions always start Pending.
type SubmitApplicationInput struct {
	AccommodationID string
	UserID          string
	UserName        string
	UserEmail       string
	UserPhone       string
	Message         string
}

// ApplicationStatusCounts summarises a user's applications by review state.
type ApplicationStatusCounts struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// MyApplicationsResult is the applicant-facing view of their own submissions.
type MyApplicationsResult struct {
	Items  []*domain.Application
	Counts ApplicationStatusCounts
}

// ApplicationService defines use-case operations for the application lifecycle.
type ApplicationService interface {
	// Submit records a new application. The referenced accommodation is
	// deliberately not checked for existence or availability.
	Submit(ctx context.Context, input SubmitApplicationInput) (*domain.Application, error)
	List(ctx context.Context) ([]*domain.Application, error)
	ListMine(ctx context.Context, userID string) (*MyApplicationsResult, error)
	Get(ctx context.Context, id string) (*domain.Application, error)
	// UpdateStatus applies a review decision. Only Pending applications may
	// transition, and only to Approved or Rejected; anything else fails with
	// domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}
