package sotd

import "context"

// Service defines the interface for the daily song announcement
type Service interface {
	// CheckDue reports whether today's announcement still needs to be sent
	// and, if so, picks the song. Safe to call on every process start.
	CheckDue(ctx context.Context) (*CheckDueOutput, error)

	// MarkSent persists the marker after a successful send. Callers must not
	// mark when the send failed, so the announcement is retried on the next
	// start instead of silently skipped.
	MarkSent(ctx context.Context, input *MarkSentInput) error
}
