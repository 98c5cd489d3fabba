package uow

import (
	"context"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
	"gatepass-backend/internal/domain/settings"
)

type Repos struct {
	Passes     pass.Repository
	Applicants applicant.Repository
	Roles      role.Repository
	Settings   settings.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the pass row first, then pass it in
	WithinPassTx(ctx context.Context, passID string, fn func(r Repos, p *pass.Pass) error) error
}
