package models

// GuildConfig is the per-guild configuration and ledger document. One document
// exists per guild, keyed by the guild ID, and is always read and written whole.
type GuildConfig struct {
	// GuildID is the Discord guild this document belongs to
	GuildID string `json:"guildId"`

	// StaffRole is the role identifying staff members, empty until setup runs
	StaffRole string `json:"staffRole"`

	// ManagerRole is the role allowed to resolve LOA requests, empty until setup runs
	ManagerRole string `json:"managerRole"`

	// LOARole is the role granted to a member during an approved leave of absence
	LOARole string `json:"loaRole"`

	// LogChannel is where LOA approval cards are posted
	LogChannel string `json:"logChannel"`

	// ShiftLogChannel is where shift announcements are posted
	ShiftLogChannel string `json:"shiftLogChannel"`

	// Warnings maps a user ID to the reasons they were warned for, in the
	// order the warnings were issued
	Warnings map[string][]string `json:"warnings"`

	// Shifts is the append-only log of started shifts
	Shifts []Shift `json:"shifts"`
}

// Shift records a single shift announcement. Shifts have no end event.
type Shift struct {
	// Description is the free-text description of the shift
	Description string `json:"description"`

	// StartedBy is the tag of the user who started the shift
	StartedBy string `json:"startedBy"`
}

// NewGuildConfig returns a default-initialized document for a guild.
func NewGuildConfig(guildID string) *GuildConfig {
	return &GuildConfig{
		GuildID:  guildID,
		Warnings: make(map[string][]string),
		Shifts:   []Shift{},
	}
}
