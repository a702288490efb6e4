package staff

// StaffError is a custom error type for staff management errors
type StaffError string

// Error implements the error interface
func (e StaffError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoWarnings                   StaffError = "no warnings found for user"
	ErrShiftLogChannelNotConfigured StaffError = "shift log channel not configured"
	ErrNilConfig                    StaffError = "config cannot be nil"
	ErrNilGuildRepo                 StaffError = "guild repository cannot be nil"
)
