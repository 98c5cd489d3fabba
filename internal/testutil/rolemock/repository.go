package rolemock

import (
	"context"

	domain "gatepass-backend/internal/domain/role"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies role.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, r *domain.Role) error
	SaveFn           func(ctx context.Context, r *domain.Role) error
	GetByRoleIDFn    func(ctx context.Context, roleID string) (*domain.Role, error)
	ListByPriorityFn func(ctx context.Context) ([]domain.Role, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Role) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Role) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRoleID(ctx context.Context, roleID string) (*domain.Role, error) {
	if m.GetByRoleIDFn != nil {
		return m.GetByRoleIDFn(ctx, roleID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByPriority(ctx context.Context) ([]domain.Role, error) {
	if m.ListByPriorityFn != nil {
		return m.ListByPriorityFn(ctx)
	}
	return nil, nil
}
