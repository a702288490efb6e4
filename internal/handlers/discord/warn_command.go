package discord

import (
	"context"
	"fmt"

	"github.com/boardslol/staffbot/internal/services/staff"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// WarnCommand issues a warning to a user and records it in the ledger
type WarnCommand struct {
	BaseCommand
	staffService staff.Service
	logger       zerolog.Logger
}

// NewWarnCommand creates a new warn command handler
func NewWarnCommand(staffService staff.Service, logger zerolog.Logger) *WarnCommand {
	return &WarnCommand{
		BaseCommand: BaseCommand{
			Name:        "warn",
			Description: "Warn a user and record the warning",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to warn",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the warning",
					Required:    true,
				},
			},
		},
		staffService: staffService,
		logger:       logger,
	}
}

// Handle processes the warn command
func (c *WarnCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This command only works inside a server.")
	}

	opts := commandOptions(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()

	output, err := c.staffService.AddWarning(context.Background(), &staff.AddWarningInput{
		GuildID: i.GuildID,
		UserID:  target.ID,
		Reason:  reason,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to record warning: %v", err))
	}

	// The ledger write is authoritative; the DM is a courtesy that fails
	// quietly when the user has DMs closed
	guildName := "this server"
	if guild, gerr := s.Guild(i.GuildID); gerr == nil {
		guildName = guild.Name
	}
	channel, err := s.UserChannelCreate(target.ID)
	if err == nil {
		notice := fmt.Sprintf("You have received a warning in %s for the following reason: %s", guildName, reason)
		if _, err := s.ChannelMessageSend(channel.ID, notice); err != nil {
			c.logger.Warn().Err(err).Str("user_id", target.ID).Msg("cannot DM warned user")
		}
	} else {
		c.logger.Warn().Err(err).Str("user_id", target.ID).Msg("cannot open DM channel for warned user")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✅ %s has been warned for: \"%s\" (warning #%d)", target.String(), reason, output.Count))
}
