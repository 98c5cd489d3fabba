package pass

import "context"

type Repository interface {
	// Create inserts a new pass. A duplicate (applicant_id, pass_day)
	// pair must surface as ErrAlreadyApplied so callers can treat the
	// conflict as "already issued".
	Create(ctx context.Context, p *Pass) error
	Save(ctx context.Context, p *Pass) error
	GetByPassID(ctx context.Context, passID string) (*Pass, error)
	// GetByPassIDForUpdate locks the row for the enclosing transaction.
	GetByPassIDForUpdate(ctx context.Context, passID string) (*Pass, error)
	// ExistsForDay reports whether the applicant holds any pass (any
	// type, any status) in the given day bucket.
	ExistsForDay(ctx context.Context, applicantID, day string) (bool, error)
	// ListByApplicant returns the applicant's passes, newest first.
	// Empty status means all statuses.
	ListByApplicant(ctx context.Context, applicantID string, status Status) ([]Pass, error)
	// ListPendingByApprovers returns pending passes whose
	// current_approver is one of the given role strings.
	ListPendingByApprovers(ctx context.Context, roles []string) ([]Pass, error)
	// ListAll returns every pass, newest first.
	ListAll(ctx context.Context) ([]Pass, error)
}
