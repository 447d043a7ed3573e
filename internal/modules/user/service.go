package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
