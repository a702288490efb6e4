package guild

import "github.com/boardslol/staffbot/internal/models"

// GetConfigInput contains parameters for retrieving a guild document
type GetConfigInput struct {
	GuildID string
}

// UpdateConfigInput contains parameters for mutating a guild document.
// Apply receives the loaded document and mutates it in place; returning an
// error aborts the update without writing anything.
type UpdateConfigInput struct {
	GuildID string
	Apply   func(cfg *models.GuildConfig) error
}
