package loa

// WorkflowError is a custom error type for LOA workflow errors
type WorkflowError string

// Error implements the error interface
func (e WorkflowError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrLogChannelNotConfigured  WorkflowError = "log channel not configured"
	ErrManagerRoleNotConfigured WorkflowError = "manager role not configured"
	ErrNotManager               WorkflowError = "resolver does not hold the manager role"
	ErrLOARoleNotConfigured     WorkflowError = "loa role not configured"
	ErrNilConfig                WorkflowError = "config cannot be nil"
	ErrNilRequestRepo           WorkflowError = "request repository cannot be nil"
	ErrNilGuildRepo             WorkflowError = "guild repository cannot be nil"
	ErrNilClock                 WorkflowError = "clock cannot be nil"
	ErrNilUUIDGenerator         WorkflowError = "UUID generator cannot be nil"
)
