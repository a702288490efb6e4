package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/boardslol/staffbot/internal/services/staff"
	"github.com/bwmarrin/discordgo"
)

// ShowWarningsCommand lists a user's warnings in the order they were issued
type ShowWarningsCommand struct {
	BaseCommand
	staffService staff.Service
}

// NewShowWarningsCommand creates a new showwarnings command handler
func NewShowWarningsCommand(staffService staff.Service) *ShowWarningsCommand {
	return &ShowWarningsCommand{
		BaseCommand: BaseCommand{
			Name:        "showwarnings",
			Description: "Show all warnings recorded for a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User whose warnings to show",
					Required:    true,
				},
			},
		},
		staffService: staffService,
	}
}

// Handle processes the showwarnings command
func (c *ShowWarningsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This command only works inside a server.")
	}

	opts := commandOptions(i)
	target := opts["user"].UserValue(s)

	output, err := c.staffService.ListWarnings(context.Background(), &staff.ListWarningsInput{
		GuildID: i.GuildID,
		UserID:  target.ID,
	})
	if err != nil {
		if errors.Is(err, staff.ErrNoWarnings) {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No warnings found for %s.", target.String()))
		}
		return RespondWithError(s, i, fmt.Sprintf("Failed to load warnings: %v", err))
	}

	return RespondWithEphemeralEmbed(s, i, renderWarningsEmbed(target.String(), output.Reasons))
}
