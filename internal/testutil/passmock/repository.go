package passmock

import (
	"context"

	domain "gatepass-backend/internal/domain/pass"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies pass.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn                func(ctx context.Context, p *domain.Pass) error
	SaveFn                  func(ctx context.Context, p *domain.Pass) error
	GetByPassIDFn           func(ctx context.Context, passID string) (*domain.Pass, error)
	GetByPassIDForUpdateFn  func(ctx context.Context, passID string) (*domain.Pass, error)
	ExistsForDayFn          func(ctx context.Context, applicantID, day string) (bool, error)
	ListByApplicantFn       func(ctx context.Context, applicantID string, status domain.Status) ([]domain.Pass, error)
	ListPendingByApproversFn func(ctx context.Context, roles []string) ([]domain.Pass, error)
	ListAllFn               func(ctx context.Context) ([]domain.Pass, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Pass) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Pass) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPassID(ctx context.Context, passID string) (*domain.Pass, error) {
	if m.GetByPassIDFn != nil {
		return m.GetByPassIDFn(ctx, passID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByPassIDForUpdate(ctx context.Context, passID string) (*domain.Pass, error) {
	if m.GetByPassIDForUpdateFn != nil {
		return m.GetByPassIDForUpdateFn(ctx, passID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ExistsForDay(ctx context.Context, applicantID, day string) (bool, error) {
	if m.ExistsForDayFn != nil {
		return m.ExistsForDayFn(ctx, applicantID, day)
	}
	return false, nil
}

func (m *Repo) ListByApplicant(ctx context.Context, applicantID string, status domain.Status) ([]domain.Pass, error) {
	if m.ListByApplicantFn != nil {
		return m.ListByApplicantFn(ctx, applicantID, status)
	}
	return nil, nil
}

func (m *Repo) ListPendingByApprovers(ctx context.Context, roles []string) ([]domain.Pass, error) {
	if m.ListPendingByApproversFn != nil {
		return m.ListPendingByApproversFn(ctx, roles)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Pass, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
