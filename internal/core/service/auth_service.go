package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonyhousing/accommodation-portal/internal/api/metrics"
	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

// AuthService implements login, signup and session handling.
//
// Login is a development stand-in: the account is resolved by email only and
// the password is never compared. Passwords are still bcrypt-hashed at rest so
// real verification can be enabled later without a migration.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login resolves the account by email and opens a session. An unknown email
// fails with domain.ErrInvalidCredentials and leaves no session behind.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return result, nil
}

// Signup always creates a role=user account. Email uniqueness is not checked,
// so duplicate emails are possible; login resolves them first-match.
func (s *AuthService) Signup(ctx context.Context, email, password, name, phone string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Phone:        phone,
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed up")
	return result, nil
}

// Logout destroys the session. Logging out an already-dead session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves the account behind a live session.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, sess.UserID)
}

// openSession stores a session record and issues the matching JWT. The token's
// jti claim is the session ID, so logout revokes the token server-side.
func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	now := time.Now().UTC()
	sess := &ports.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"jti":   sess.ID,
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   sess.ExpiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, User: user}, nil
}
