package ports

import (
	"context"
	"time"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
)

// Session is the server-side record created at login and destroyed at logout.
// It replaces the ambient current-user pointer of earlier designs: identity is
// injected into each request from the session, never read from global state.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore persists sessions keyed by session ID with a TTL.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	// Find returns the live session or domain.ErrInvalidCredentials when the
	// session is absent or expired.
	Find(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthResult is returned on successful login or signup.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines login, signup and session handling.
//
// Credential verification is intentionally a stand-in: login resolves the
// account by email only and the password is accepted unchecked. Passwords are
// still stored as bcrypt hashes so a real verification step can be switched on
// without a data migration.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, email, password, name, phone string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser resolves the account behind a live session.
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}
