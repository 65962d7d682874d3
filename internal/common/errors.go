// Package common defines shared sentinel errors used across the task API
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration conflict: username or email already taken.
	ErrorDuplicateIdentity = errors.New("identity already taken")

	// Login failure. Unknown identity and wrong password collapse into this
	// single value so callers cannot enumerate accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid, malformed or foreign-key token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors. Kept distinct from ErrInvalidToken: expiry is
	// recoverable by logging in again, a bad signature is not.
	ErrTokenExpired = errors.New("token expired")

	// Ownership check failed: the task exists but belongs to another user.
	ErrorForbidden = errors.New("forbidden")
)
