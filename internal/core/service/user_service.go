package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

// UserService implements admin account management and dashboard stats.
type UserService struct {
	users          ports.UserRepository
	applications   ports.ApplicationRepository
	accommodations ports.AccommodationRepository
	logger         zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	applications ports.ApplicationRepository,
	accommodations ports.AccommodationRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		users:          users,
		applications:   applications,
		accommodations: accommodations,
		logger:         logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Get returns the account together with its submitted applications.
func (s *UserService) Get(ctx context.Context, id string) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserDetail{User: user, Applications: apps}, nil
}

// Create stores an admin-created account. Unlike signup the role is
// caller-chosen; an unrecognised role falls back to "user".
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role != domain.RoleAdmin && role != domain.RoleUser {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:                  uuid.NewString(),
		Email:               input.Email,
		Name:                input.Name,
		Phone:               input.Phone,
		Role:                role,
		ReligiousPreference: domain.ReligiousPreference(input.ReligiousPreference),
		PasswordHash:        string(hash),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

// Delete removes an account. Self-deletion is rejected so an admin cannot
// lock themselves out mid-session.
func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// Dashboard gathers the counts shown on the admin landing page.
func (s *UserService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	accommodations, err := s.accommodations.Count(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.applications.CountByStatus(ctx, domain.ApplicationPending)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		Accommodations:      accommodations,
		Applications:        applications,
		PendingApplications: pending,
		Users:               users,
	}, nil
}
