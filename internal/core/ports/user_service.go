package ports

import (
	"context"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// CreateUserInput carries the fields for an admin-created account.
type CreateUserInput struct {
	Email               string
	Password            string
	Name                string
	Phone               string
	Role                string
	ReligiousPreference string
}

// UserDetail pairs an account with its submitted applications.
type UserDetail struct {
	User         *domain.User
	Applications []*domain.Application
}

// DashboardStats summarises the portal for the admin dashboard.
type DashboardStats struct {
	Accommodations      int64
	Applications        int64
	PendingApplications int64
	Users               int64
}

// UserService defines the admin-facing account management operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*UserDetail, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	// Delete removes an account. Admins cannot delete themselves; that fails
	// with domain.ErrForbidden.
	Delete(ctx context.Context, id, actorID string) error
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
