package guild

import (
	"context"

	"github.com/boardslol/staffbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/boardslol/staffbot/internal/repositories/guild Repository

// Repository defines the interface for guild document persistence
type Repository interface {
	// GetConfig retrieves the guild document, creating and persisting a
	// default-initialized one if none exists yet
	GetConfig(ctx context.Context, input *GetConfigInput) (*models.GuildConfig, error)

	// UpdateConfig applies a mutation to the guild document under the guild's
	// lock and persists the result. The whole document is rewritten.
	UpdateConfig(ctx context.Context, input *UpdateConfigInput) (*models.GuildConfig, error)
}
