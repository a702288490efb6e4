package roles

// RolesError is a custom error type for reaction role errors
type RolesError string

// Error implements the error interface
func (e RolesError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     RolesError = "config cannot be nil"
	ErrNilMarkerRepo RolesError = "marker repository cannot be nil"
	ErrNoBindings    RolesError = "at least one reaction role binding is required"
)
