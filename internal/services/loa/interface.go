package loa

import "context"

// Service defines the interface for the leave of absence workflow
type Service interface {
	// Submit creates a pending request. The guild must have a log channel
	// configured; the caller posts the approval card there.
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// AttachMessage records the posted approval card on the request
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// Resolve accepts or declines a pending request. Only holders of the
	// guild's manager role may resolve; the first resolution wins and every
	// later attempt fails with the repository's ErrAlreadyResolved.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
