package uowmock

import (
	"context"
	"errors"

	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPassTxFn func(ctx context.Context, passID string, fn func(r uow.Repos, p *pass.Pass) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW that runs closures directly against the
// given repos, with the pass looked up through r.Passes.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinPassTxFn: func(ctx context.Context, passID string, fn func(uow.Repos, *pass.Pass) error) error {
			p, err := r.Passes.GetByPassIDForUpdate(ctx, passID)
			if err != nil {
				return err
			}
			return fn(r, p)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinPassTx(ctx context.Context, passID string, fn func(r uow.Repos, p *pass.Pass) error) error {
	if m.WithinPassTxFn != nil {
		return m.WithinPassTxFn(ctx, passID, fn)
	}
	return errUnimplemented
}
