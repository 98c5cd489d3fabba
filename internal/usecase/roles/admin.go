package roles

import (
	"context"
	"errors"

	"gatepass-backend/internal/domain/role"
	"gatepass-backend/pkg/id"
)

type RoleInput struct {
	RoleName      string   `json:"role_name"`
	ApprovalType  string   `json:"approval_type"`
	Priority      int      `json:"priority"`
	FallbackRoles []string `json:"fallback_roles"`
}

// Admin owns role CRUD; resolution lives on Registry.
type Admin struct {
	roles role.Repository
}

func NewAdmin(roles role.Repository) *Admin { return &Admin{roles: roles} }

func (a *Admin) Create(ctx context.Context, in RoleInput) (*role.Role, error) {
	at := role.ApprovalType(in.ApprovalType)
	if !at.Valid() {
		return nil, role.ErrInvalidApprovalType
	}
	r := &role.Role{
		RoleID:        id.NewID32(),
		RoleName:      in.RoleName,
		ApprovalType:  at,
		Priority:      in.Priority,
		FallbackRoles: in.FallbackRoles,
	}
	if err := a.checkFallbacks(ctx, r.RoleID, in.FallbackRoles); err != nil {
		return nil, err
	}
	if err := a.roles.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (a *Admin) Update(ctx context.Context, roleID string, in RoleInput) (*role.Role, error) {
	at := role.ApprovalType(in.ApprovalType)
	if !at.Valid() {
		return nil, role.ErrInvalidApprovalType
	}
	r, err := a.roles.GetByRoleID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if err := a.checkFallbacks(ctx, roleID, in.FallbackRoles); err != nil {
		return nil, err
	}
	r.RoleName = in.RoleName
	r.ApprovalType = at
	r.Priority = in.Priority
	r.FallbackRoles = in.FallbackRoles
	if err := a.roles.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (a *Admin) List(ctx context.Context) ([]role.Role, error) {
	return a.roles.ListByPriority(ctx)
}

// checkFallbacks rejects a fallback list that leads back to the role
// being saved, directly or through other roles' fallback lists.
func (a *Admin) checkFallbacks(ctx context.Context, roleID string, fallbacks []string) error {
	seen := map[string]bool{}
	queue := append([]string(nil), fallbacks...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == roleID {
			return role.ErrFallbackCycle
		}
		if seen[next] {
			continue
		}
		seen[next] = true
		r, err := a.roles.GetByRoleID(ctx, next)
		if err != nil {
			if errors.Is(err, role.ErrNotFound) {
				continue // dangling references resolve to nothing, not cycles
			}
			return err
		}
		queue = append(queue, r.FallbackRoles...)
	}
	return nil
}
