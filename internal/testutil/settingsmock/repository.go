package settingsmock

import (
	"context"

	domain "gatepass-backend/internal/domain/settings"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies settings.Repository.
// The zero value serves Defaults() from Get and Ensure.
type Repo struct {
	GetFn    func(ctx context.Context) (*domain.Settings, error)
	SaveFn   func(ctx context.Context, s *domain.Settings) error
	EnsureFn func(ctx context.Context) (*domain.Settings, error)
}

func (m *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return domain.Defaults(), nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Settings) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) Ensure(ctx context.Context) (*domain.Settings, error) {
	if m.EnsureFn != nil {
		return m.EnsureFn(ctx)
	}
	return domain.Defaults(), nil
}
