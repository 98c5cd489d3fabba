package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	passDomain "gatepass-backend/internal/domain/pass"
)

type PassRepository struct{ db *gorm.DB }

func NewPassRepository(db *gorm.DB) *PassRepository { return &PassRepository{db: db} }

// Create relies on the (applicant_id, pass_day) unique key for the
// create-if-absent guarantee; a duplicate surfaces as ErrAlreadyApplied.
func (r *PassRepository) Create(ctx context.Context, p *passDomain.Pass) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return passDomain.ErrAlreadyApplied
	}
	return err
}

func (r *PassRepository) Save(ctx context.Context, p *passDomain.Pass) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PassRepository) GetByPassID(ctx context.Context, passID string) (*passDomain.Pass, error) {
	var out passDomain.Pass
	res := r.db.WithContext(ctx).Where("pass_id = ?", passID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, passDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PassRepository) GetByPassIDForUpdate(ctx context.Context, passID string) (*passDomain.Pass, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks; the whole-db write lock covers it
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out passDomain.Pass
	res := q.Where("pass_id = ?", passID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, passDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PassRepository) ExistsForDay(ctx context.Context, applicantID, day string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&passDomain.Pass{}).
		Where("applicant_id = ? AND pass_day = ?", applicantID, day).
		Count(&n)
	return n > 0, res.Error
}

func (r *PassRepository) ListByApplicant(ctx context.Context, applicantID string, status passDomain.Status) ([]passDomain.Pass, error) {
	q := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []passDomain.Pass
	res := q.Order("date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *PassRepository) ListPendingByApprovers(ctx context.Context, roles []string) ([]passDomain.Pass, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	var out []passDomain.Pass
	res := r.db.WithContext(ctx).
		Where("status = ? AND current_approver IN ?", passDomain.StatusPending, roles).
		Order("date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PassRepository) ListAll(ctx context.Context) ([]passDomain.Pass, error) {
	var out []passDomain.Pass
	res := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out)
	return out, res.Error
}
