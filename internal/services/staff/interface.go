package staff

import "context"

// Service defines the interface for staff management operations
type Service interface {
	// Setup stores the guild's staff roles and logging channels
	Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error)

	// GetConfig returns the guild document, creating it if absent
	GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error)

	// AddWarning appends a warning to a user's ledger
	AddWarning(ctx context.Context, input *AddWarningInput) (*AddWarningOutput, error)

	// ListWarnings returns a user's warnings in the order they were issued
	ListWarnings(ctx context.Context, input *ListWarningsInput) (*ListWarningsOutput, error)

	// StartShift appends a shift record to the shift log
	StartShift(ctx context.Context, input *StartShiftInput) (*StartShiftOutput, error)
}
