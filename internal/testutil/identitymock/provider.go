package identitymock

import (
	"context"

	domain "gatepass-backend/internal/domain/identity"
)

var _ domain.Provider = (*Provider)(nil)

// Provider is a function-backed mock that satisfies identity.Provider.
type Provider struct {
	VerifyCredentialsFn func(ctx context.Context, email, password string) (string, error)
	CreateIdentityFn    func(ctx context.Context, email, password, displayName string) (string, error)
	UpdateIdentityFn    func(ctx context.Context, uid string, upd domain.Update) error
	DeleteIdentityFn    func(ctx context.Context, uid string) error
}

func (m *Provider) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	if m.VerifyCredentialsFn != nil {
		return m.VerifyCredentialsFn(ctx, email, password)
	}
	return "", domain.ErrInvalidCredentials
}

func (m *Provider) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	if m.CreateIdentityFn != nil {
		return m.CreateIdentityFn(ctx, email, password, displayName)
	}
	return "uid-mock", nil
}

func (m *Provider) UpdateIdentity(ctx context.Context, uid string, upd domain.Update) error {
	if m.UpdateIdentityFn != nil {
		return m.UpdateIdentityFn(ctx, uid, upd)
	}
	return nil
}

func (m *Provider) DeleteIdentity(ctx context.Context, uid string) error {
	if m.DeleteIdentityFn != nil {
		return m.DeleteIdentityFn(ctx, uid)
	}
	return nil
}
