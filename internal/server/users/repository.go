package users

import (
	"context"
)

// Repository is the durable mapping from email to credential and role data.
//
// Create returns common.ErrEmailExists when the email is already registered;
// uniqueness is enforced by the store itself so concurrent inserts of the
// same email produce exactly one row. FindByEmail returns common.ErrNotFound
// for an absent row.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
