package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("identity already exists")
	ErrNotFound           = errors.New("identity not found")
)

// Update carries partial identity changes; nil fields are untouched.
type Update struct {
	Email       *string
	Password    *string
	DisplayName *string
}

// Provider is the external credential store. The core never sees
// passwords at rest; it only exchanges them for a uid here.
type Provider interface {
	VerifyCredentials(ctx context.Context, email, password string) (string, error)
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)
	UpdateIdentity(ctx context.Context, uid string, upd Update) error
	DeleteIdentity(ctx context.Context, uid string) error
}
