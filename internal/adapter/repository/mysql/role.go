package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	roleDomain "gatepass-backend/internal/domain/role"
)

type RoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{db: db} }

func (r *RoleRepository) Create(ctx context.Context, ro *roleDomain.Role) error {
	return r.db.WithContext(ctx).Create(ro).Error
}

func (r *RoleRepository) Save(ctx context.Context, ro *roleDomain.Role) error {
	return r.db.WithContext(ctx).Save(ro).Error
}

func (r *RoleRepository) GetByRoleID(ctx context.Context, roleID string) (*roleDomain.Role, error) {
	var out roleDomain.Role
	res := r.db.WithContext(ctx).Where("role_id = ?", roleID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, roleDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RoleRepository) ListByPriority(ctx context.Context) ([]roleDomain.Role, error) {
	var out []roleDomain.Role
	res := r.db.WithContext(ctx).Order("priority ASC, id ASC").Find(&out)
	return out, res.Error
}
