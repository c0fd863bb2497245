// Package models defines the payloads exchanged with the TaskEase API.
package models

import "time"

// User is the profile of the authenticated account (GET /users/me).
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer credential issued by login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ProfileUpdate is the body of PUT /users/me. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Empty reports whether the update would change nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
