package roles

import (
	"context"

	"github.com/boardslol/staffbot/internal/repositories/marker"
)

// service implements the Service interface
type service struct {
	markerRepo marker.Repository
	bindings   []Binding
	byEmoji    map[string]string
}

// New creates a new reaction role service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MarkerRepo == nil {
		return nil, ErrNilMarkerRepo
	}

	if len(cfg.Bindings) == 0 {
		return nil, ErrNoBindings
	}

	byEmoji := make(map[string]string, len(cfg.Bindings))
	for _, b := range cfg.Bindings {
		byEmoji[b.Emoji] = b.RoleID
	}

	return &service{
		markerRepo: cfg.MarkerRepo,
		bindings:   cfg.Bindings,
		byEmoji:    byEmoji,
	}, nil
}

// NeedsBootstrap reports whether the instructional embed still has to be posted
func (s *service) NeedsBootstrap(ctx context.Context) (bool, error) {
	has, err := s.markerRepo.HasRoleMessage(ctx)
	if err != nil {
		return false, err
	}
	return !has, nil
}

// MarkBootstrapped persists the sentinel after the embed was posted
func (s *service) MarkBootstrapped(ctx context.Context, input *MarkBootstrappedInput) error {
	return s.markerRepo.SaveRoleMessage(ctx, &marker.SaveRoleMessageInput{
		MessageID: input.MessageID,
	})
}

// RoleForEmoji returns the role bound to an emoji, if any
func (s *service) RoleForEmoji(emoji string) (string, bool) {
	roleID, ok := s.byEmoji[emoji]
	return roleID, ok
}

// Bindings returns the configured bindings in declaration order
func (s *service) Bindings() []Binding {
	return s.bindings
}
