package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type LoginResponse struct {
	Message string    `json:"message"`
	Admin   AuthAdmin `json:"admin"`
}

type AuthAdmin struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IsRoot    bool      `json:"isRoot"`
}

// LoginResult carries the signed token from the usecase to the handler,
// which moves it into the session cookie.
type LoginResult struct {
	Token    string
	Response LoginResponse
}
