package role

import "context"

type Repository interface {
	Create(ctx context.Context, r *Role) error
	Save(ctx context.Context, r *Role) error
	GetByRoleID(ctx context.Context, roleID string) (*Role, error)
	// ListByPriority returns all roles ordered by priority asc.
	ListByPriority(ctx context.Context) ([]Role, error)
}

// Resolver turns a step reference into the applicant ids allowed to act
// on it. Implementations walk fallback roles before giving up with
// ErrNoEligibleApprover.
type Resolver interface {
	Resolve(ctx context.Context, ref StepRef) ([]string, error)
}
