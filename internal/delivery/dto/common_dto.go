package dto

import "github.com/google/uuid"

// RemovedResponse acknowledges a soft delete.
type RemovedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// SimplePersonResponse is the dropdown row for patients and doctors.
type SimplePersonResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Phone    string    `json:"phone"`
}
