package ports

import (
	"context"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// ApplicationRepository defines persistence operations for tenancy applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// List returns every application in insertion order.
	List(ctx context.Context) ([]*domain.Application, error)
	// ListByUser returns the given user's applications in insertion order.
	ListByUser(ctx context.Context, userID string) ([]*domain.Application, error)
	// UpdateStatus sets the status of the matching record. Returns
	// domain.ErrApplicationNotFound when id is absent.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int64, error)
}
