package identity

import "context"

// Repository persists users. GetByEmail returns nil without error when no
// user exists; the login usecase maps that to ErrInvalidCredentials.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}
