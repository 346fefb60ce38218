package ports

import (
	"context"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// UserUpdate holds a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Email               *string
	Name                *string
	Phone               *string
	Role                *string
	ReligiousPreference *string
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail returns the first account matching email. The store does
	// not enforce email uniqueness, so duplicates resolve to first match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
