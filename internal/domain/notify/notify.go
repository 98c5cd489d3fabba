package notify

import "context"

// Sender delivers operator/user-facing mail. Delivery is non-critical
// by contract: implementations may fail, but callers must never let a
// send error abort the primary operation; log it and move on.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Noop discards everything; used when SMTP is not configured.
type Noop struct{}

func (Noop) Send(context.Context, string, string, string) error { return nil }
