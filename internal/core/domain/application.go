package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a tenancy application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// validTransitions defines the allowed review decisions. Approved and
// Rejected are terminal; an application is decided at most once.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationApproved, ApplicationRejected},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is a prospective tenant's request for a specific accommodation.
// AccommodationID is a plain reference, deliberately not enforced as a foreign
// key: an admin can still act on applications whose listing was deleted.
type Application struct {
	ID              string            `json:"id" bson:"_id"`
	AccommodationID string            `json:"accommodation_id" bson:"accommodation_id"`
	UserID          string            `json:"user_id" bson:"user_id"`
	UserName        string            `json:"user_name" bson:"user_name"`
	UserEmail       string            `json:"user_email" bson:"user_email"`
	UserPhone       string            `json:"user_phone" bson:"user_phone"`
	Message         string            `json:"message" bson:"message"`
	Status          ApplicationStatus `json:"status" bson:"status"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}
