package mysql

import (
	"context"

	"gorm.io/gorm"

	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/uow"
)

// GormUoW runs a closure against repositories bound to a single
// transaction, so a decision's read-check-write sequence commits or
// rolls back as one unit.
type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Passes:     NewPassRepository(tx),
		Applicants: NewApplicantRepository(tx),
		Roles:      NewRoleRepository(tx),
		Settings:   NewSettingsRepository(tx),
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

// WithinPassTx locks the pass row for the duration of the transaction,
// serializing concurrent decisions on the same pass.
func (u *GormUoW) WithinPassTx(ctx context.Context, passID string, fn func(r uow.Repos, p *pass.Pass) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		p, err := r.Passes.GetByPassIDForUpdate(ctx, passID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
