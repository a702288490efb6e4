package sotd

import (
	"context"
	"math/rand"
	"time"

	"github.com/boardslol/staffbot/internal/common/clock"
	"github.com/boardslol/staffbot/internal/models"
	"github.com/boardslol/staffbot/internal/repositories/marker"
)

// Date layout for the marker, UTC calendar date
const dateLayout = "2006-01-02"

// defaultSongs is the built-in candidate list
var defaultSongs = []models.Song{
	{Name: "Greedy", Artist: "Tate McRae", Link: "https://open.spotify.com/track/4ZPaBzMY32xb75srn21mrc"},
	{Name: "Water", Artist: "Tyla", Link: "https://open.spotify.com/track/1DMEzmAoQIikcL52psptQL"},
	{Name: "Paint The Town Red", Artist: "Doja Cat", Link: "https://open.spotify.com/track/6HxZ4nC7rGv1m5P4sdmgxB"},
	{Name: "Slut!", Artist: "Taylor Swift", Link: "https://open.spotify.com/track/6ogwLJKtKKIUpAKnkk2whu"},
}

// service implements the Service interface
type service struct {
	markerRepo marker.Repository
	clock      clock.Clock
	songs      []models.Song
	random     *rand.Rand
}

// New creates a new song of the day service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MarkerRepo == nil {
		return nil, ErrNilMarkerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	songs := cfg.Songs
	if len(songs) == 0 {
		songs = defaultSongs
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		markerRepo: cfg.MarkerRepo,
		clock:      cfg.Clock,
		songs:      songs,
		random:     rand.New(rand.NewSource(seed)),
	}, nil
}

// CheckDue reports whether today's announcement still needs to be sent
func (s *service) CheckDue(ctx context.Context) (*CheckDueOutput, error) {
	today := s.clock.Now().UTC().Format(dateLayout)

	m, err := s.markerRepo.GetSOTDMarker(ctx)
	if err != nil {
		return nil, err
	}

	if m.LastSent == today {
		return &CheckDueOutput{Due: false, Today: today}, nil
	}

	return &CheckDueOutput{
		Due:   true,
		Today: today,
		Song:  s.songs[s.random.Intn(len(s.songs))],
	}, nil
}

// MarkSent persists the marker after a successful send
func (s *service) MarkSent(ctx context.Context, input *MarkSentInput) error {
	return s.markerRepo.SaveSOTDMarker(ctx, &marker.SaveSOTDMarkerInput{
		LastSent:  input.Today,
		MessageID: input.MessageID,
	})
}
