package dto

import (
	"time"

	"github.com/google/uuid"
)

type PermissionResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
}

type ProfileResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}
