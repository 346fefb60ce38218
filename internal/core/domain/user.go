package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the portal. Email is the login key; uniqueness is
// not enforced by the store, so lookups resolve to the first match.
type User struct {
	ID                  string              `json:"id" bson:"_id"`
	Email               string              `json:"email" bson:"email"`
	Name                string              `json:"name" bson:"name"`
	Phone               string              `json:"phone" bson:"phone"`
	Role                string              `json:"role" bson:"role"`
	ReligiousPreference ReligiousPreference `json:"religious_preference,omitempty" bson:"religious_preference,omitempty"`
	PasswordHash        string              `json:"-" bson:"password_hash"`
	CreatedAt           time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" bson:"updated_at"`
}
