package users

import "time"

// User is the single persistent entity of the auth service. PasswordHash is
// opaque bcrypt output; it never leaves the service layer.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
