// Package models contains the persisted domain entities shared by the
// repositories and services.
package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash; the
// plaintext password is never stored or logged.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
