package roles

import "context"

// Service defines the interface for reaction driven self-assigned roles
type Service interface {
	// NeedsBootstrap reports whether the instructional embed still has to be
	// posted. Once the sentinel exists this is always false, even if the
	// message was later deleted externally.
	NeedsBootstrap(ctx context.Context) (bool, error)

	// MarkBootstrapped persists the sentinel after the embed was posted
	MarkBootstrapped(ctx context.Context, input *MarkBootstrappedInput) error

	// RoleForEmoji returns the role bound to an emoji, if any
	RoleForEmoji(emoji string) (string, bool)

	// Bindings returns the configured bindings in declaration order
	Bindings() []Binding
}
