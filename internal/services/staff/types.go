package staff

import (
	"github.com/boardslol/staffbot/internal/models"
	"github.com/boardslol/staffbot/internal/repositories/guild"
)

// Config holds the dependencies for the staff service
type Config struct {
	// GuildRepo persists the per-guild documents
	GuildRepo guild.Repository
}

// SetupInput contains the role and channel IDs chosen by the administrator
type SetupInput struct {
	GuildID         string
	StaffRole       string
	ManagerRole     string
	LOARole         string
	LogChannel      string
	ShiftLogChannel string
}

// SetupOutput contains the stored configuration
type SetupOutput struct {
	Config *models.GuildConfig
}

// GetConfigInput contains parameters for reading a guild's configuration
type GetConfigInput struct {
	GuildID string
}

// GetConfigOutput contains the guild's configuration
type GetConfigOutput struct {
	Config *models.GuildConfig
}

// AddWarningInput contains parameters for warning a user
type AddWarningInput struct {
	GuildID string
	UserID  string
	Reason  string
}

// AddWarningOutput contains the result of warning a user
type AddWarningOutput struct {
	// Count is the user's total number of warnings after the append
	Count int
}

// ListWarningsInput contains parameters for listing a user's warnings
type ListWarningsInput struct {
	GuildID string
	UserID  string
}

// ListWarningsOutput contains a user's warnings in issue order
type ListWarningsOutput struct {
	Reasons []string
}

// StartShiftInput contains parameters for starting a shift
type StartShiftInput struct {
	GuildID     string
	Description string
	StartedBy   string
}

// StartShiftOutput contains the result of starting a shift
type StartShiftOutput struct {
	// ChannelID is the configured shift log channel to announce in
	ChannelID string

	// Shift is the recorded shift
	Shift models.Shift
}
