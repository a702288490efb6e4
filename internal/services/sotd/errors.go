package sotd

// SOTDError is a custom error type for song of the day errors
type SOTDError string

// Error implements the error interface
func (e SOTDError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     SOTDError = "config cannot be nil"
	ErrNilMarkerRepo SOTDError = "marker repository cannot be nil"
	ErrNilClock      SOTDError = "clock cannot be nil"
)
