package settings

import "context"

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
	// Ensure creates the singleton row with defaults if it is missing
	// and returns the current value.
	Ensure(ctx context.Context) (*Settings, error)
}
