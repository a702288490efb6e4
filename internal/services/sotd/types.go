package sotd

import (
	"github.com/boardslol/staffbot/internal/common/clock"
	"github.com/boardslol/staffbot/internal/models"
	"github.com/boardslol/staffbot/internal/repositories/marker"
)

// Config holds the dependencies for the song of the day service
type Config struct {
	// MarkerRepo persists the last-sent marker
	MarkerRepo marker.Repository

	// Clock provides the current time; today is its UTC calendar date
	Clock clock.Clock

	// Songs is the candidate list; defaults to the built-in list if empty
	Songs []models.Song

	// Seed is an optional PRNG seed for testing
	Seed int64
}

// CheckDueOutput contains the result of the daily idempotency check
type CheckDueOutput struct {
	// Due is false when today's announcement was already sent
	Due bool

	// Today is the current UTC date, formatted YYYY-MM-DD
	Today string

	// Song is the selected candidate; only meaningful when Due is true
	Song models.Song
}

// MarkSentInput contains parameters for recording a sent announcement
type MarkSentInput struct {
	Today     string
	MessageID string
}
