package roles

import "github.com/boardslol/staffbot/internal/repositories/marker"

// Binding maps a reaction emoji to a role, fixed at deploy time
type Binding struct {
	// Emoji is the reaction emoji symbol
	Emoji string

	// RoleID is the role granted or revoked by that emoji
	RoleID string

	// Label is the human description shown in the instructional embed
	Label string
}

// Config holds the dependencies for the reaction role service
type Config struct {
	// MarkerRepo persists the bootstrap sentinel
	MarkerRepo marker.Repository

	// Bindings are the deploy-time emoji to role mappings, in the order the
	// reactions are seeded on the instructional embed
	Bindings []Binding
}

// MarkBootstrappedInput contains parameters for persisting the sentinel
type MarkBootstrappedInput struct {
	MessageID string
}
