package models

import (
	"time"

	"github.com/google/uuid"
)

// Contractor is a registered user of the system.
type Contractor struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Name          string     `json:"name" db:"name" binding:"required,min=2,max=255"`
	Email         string     `json:"email" db:"email" binding:"required,email"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	Company       *string    `json:"company,omitempty" db:"company"`
	Active        bool       `json:"active" db:"active"`
	EmailVerified bool       `json:"email_verified" db:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// RegisterRequest carries the payload for registering a new contractor.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6,max=100"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      Contractor `json:"user"`
}

// RefreshRequest carries the refresh token for renewing a session.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SupabaseUser mirrors the subset of the Supabase auth user the API exposes.
type SupabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// SupabaseSession holds the tokens returned by Supabase auth.
type SupabaseSession struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SupabaseAuthResponse is the combined result of a Supabase auth call.
type SupabaseAuthResponse struct {
	User    *SupabaseUser    `json:"user,omitempty"`
	Session *SupabaseSession `json:"session,omitempty"`
}
