package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMissingUserID indicates a correctly signed token that does not name a user
	ErrMissingUserID = errors.New("authentication token carries no user id")
)

// Password errors
var (
	// ErrPasswordMismatch indicates the password does not match the stored hash
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidPasswordHash indicates the stored value is not a usable bcrypt hash
	ErrInvalidPasswordHash = errors.New("stored password hash is invalid")
)
