package handler

import "time"

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest is deliberately not run through the validator: a missing or
// malformed credential fails the lookup and surfaces as 401, never 400, so
// nothing about account shapes leaks before authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the client-visible view of an account. The password hash is
// excluded at the type level, not by marshalling rules.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}
