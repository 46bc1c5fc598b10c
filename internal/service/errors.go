package service

import "errors"

// Domain errors. Handlers map these onto the HTTP taxonomy; anything else is
// treated as an internal failure and hidden from the client.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("invalid input")

	// ErrEmailTaken is returned on signup with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials deliberately covers both an unknown email and a
	// wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound covers both a missing resource and one owned by someone
	// else; the two cases must stay indistinguishable.
	ErrNotFound = errors.New("not found")
)
