package loa

import (
	"github.com/boardslol/staffbot/internal/common/clock"
	"github.com/boardslol/staffbot/internal/common/uuid"
	"github.com/boardslol/staffbot/internal/models"
	guildRepo "github.com/boardslol/staffbot/internal/repositories/guild"
	loaRepo "github.com/boardslol/staffbot/internal/repositories/loa"
)

// Config holds the dependencies for the LOA workflow service
type Config struct {
	// RequestRepo persists the LOA request records
	RequestRepo loaRepo.Repository

	// GuildRepo reads the per-guild configuration
	GuildRepo guildRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator mints request IDs
	UUIDGenerator uuid.UUID
}

// SubmitInput contains a member's leave of absence submission
type SubmitInput struct {
	GuildID      string
	RequesterID  string
	RequesterTag string
	Duration     string
	StartDate    string
	Reason       string
}

// SubmitOutput contains the created request and where to post its card
type SubmitOutput struct {
	Request *models.LOARequest

	// LogChannelID is the guild's configured log channel
	LogChannelID string
}

// AttachMessageInput contains the posted approval card identifiers
type AttachMessageInput struct {
	RequestID string
	ChannelID string
	MessageID string
}

// ResolveInput contains a manager's decision on a pending request
type ResolveInput struct {
	GuildID    string
	RequestID  string
	ResolverID string

	// ResolverRoles are the role IDs held by the resolver, used for the
	// manager gate
	ResolverRoles []string

	// Accept is true for approval, false for decline
	Accept bool
}

// ResolveOutput contains the resolved request and the role to grant
type ResolveOutput struct {
	Request *models.LOARequest

	// LOARoleID is the guild's configured LOA role; set only on accept
	LOARoleID string
}
