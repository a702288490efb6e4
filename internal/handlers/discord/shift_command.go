package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/boardslol/staffbot/internal/services/staff"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// StartShiftCommand records a shift and announces it in the shift log channel
type StartShiftCommand struct {
	BaseCommand
	staffService staff.Service
	logger       zerolog.Logger
}

// NewStartShiftCommand creates a new startshift command handler
func NewStartShiftCommand(staffService staff.Service, logger zerolog.Logger) *StartShiftCommand {
	return &StartShiftCommand{
		BaseCommand: BaseCommand{
			Name:        "startshift",
			Description: "Start a staff shift and announce it",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "What this shift covers",
					Required:    true,
				},
			},
		},
		staffService: staffService,
		logger:       logger,
	}
}

// Handle processes the startshift command
func (c *StartShiftCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This command only works inside a server.")
	}

	opts := commandOptions(i)
	description := opts["description"].StringValue()

	output, err := c.staffService.StartShift(context.Background(), &staff.StartShiftInput{
		GuildID:     i.GuildID,
		Description: description,
		StartedBy:   i.Member.User.String(),
	})
	if err != nil {
		if errors.Is(err, staff.ErrShiftLogChannelNotConfigured) {
			return RespondWithError(s, i, "Shift log channel not set! Run /setup first.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Failed to record shift: %v", err))
	}

	// The shift record stands even if the announcement cannot be delivered
	if _, err := s.ChannelMessageSendEmbed(output.ChannelID, renderShiftEmbed(output.Shift)); err != nil {
		c.logger.Warn().Err(err).Str("channel_id", output.ChannelID).Msg("failed to announce shift")
		return RespondWithError(s, i, "Shift recorded, but the announcement could not be posted.")
	}

	return RespondWithEphemeralMessage(s, i, "✅ Shift started and announced!")
}
