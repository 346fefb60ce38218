package handler

import "time"

// --- Request types ---

type submitApplicationRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required"`
	UserPhone       string `json:"user_phone"`
	Message         string `json:"message"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

// --- Response types ---

type applicationResponse struct {
	ID              string    `json:"id"`
	AccommodationID string    `json:"accommodation_id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	UserPhone       string    `json:"user_phone"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type listApplicationsResponse struct {
	Data  []applicationResponse `json:"data"`
	Total int                   `json:"total"`
}

type applicationCountsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type myApplicationsResponse struct {
	Data   []applicationResponse     `json:"data"`
	Counts applicationCountsResponse `json:"counts"`
}
