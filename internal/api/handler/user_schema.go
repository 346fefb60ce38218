package handler

import "time"

// --- Request types ---

type createUserRequest struct {
	Email               string `json:"email"                validate:"required,email"`
	Password            string `json:"password"             validate:"required"`
	Name                string `json:"name"                 validate:"required"`
	Phone               string `json:"phone"`
	Role                string `json:"role"                 validate:"omitempty,oneof=admin user"`
	ReligiousPreference string `json:"religious_preference" validate:"omitempty,oneof=Muslim Non-Muslim Any"`
}

type updateUserRequest struct {
	Email               *string `json:"email"                validate:"omitempty,email"`
	Name                *string `json:"name"`
	Phone               *string `json:"phone"`
	Role                *string `json:"role"                 validate:"omitempty,oneof=admin user"`
	ReligiousPreference *string `json:"religious_preference" validate:"omitempty,oneof=Muslim Non-Muslim Any"`
}

// --- Response types ---

type userResponse struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	Role                string    `json:"role"`
	ReligiousPreference string    `json:"religious_preference,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type listUsersResponse struct {
	Data  []userResponse `json:"data"`
	Total int            `json:"total"`
}

type userDetailResponse struct {
	User         userResponse          `json:"user"`
	Applications []applicationResponse `json:"applications"`
}

type dashboardResponse struct {
	Accommodations      int64 `json:"accommodations"`
	Applications        int64 `json:"applications"`
	PendingApplications int64 `json:"pending_applications"`
	Users               int64 `json:"users"`
}
