package domain

import (
	"errors"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type (
	UserCreate struct {
		Username string `json:"username" validate:"required,max=50"`
		Email    string `json:"email" validate:"required,max=255,email_basic"`
		FullName string `json:"full_name" validate:"omitempty,max=100"`
	}

	UserUpdate struct {
		Username *string `json:"username" validate:"omitempty,max=50"`
		Email    *string `json:"email" validate:"omitempty,max=255,email_basic"`
		FullName *string `json:"full_name" validate:"omitempty,max=100"`
		IsActive *bool   `json:"is_active"`
	}

	UserResponse struct {
		ID        uint   `json:"id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		FullName  string `json:"full_name,omitempty"`
		IsActive  bool   `json:"is_active"`
		CreatedAt string `json:"created_at"`
	}
)
