package discord

import (
	"context"
	"fmt"
	"slices"

	"github.com/boardslol/staffbot/internal/services/staff"
	"github.com/bwmarrin/discordgo"
)

// StaffListCommand lists every member holding the configured staff role
type StaffListCommand struct {
	BaseCommand
	staffService staff.Service
}

// NewStaffListCommand creates a new stafflist command handler
func NewStaffListCommand(staffService staff.Service) *StaffListCommand {
	return &StaffListCommand{
		BaseCommand: BaseCommand{
			Name:        "stafflist",
			Description: "List all members holding the staff role",
		},
		staffService: staffService,
	}
}

// Handle processes the stafflist command
func (c *StaffListCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This command only works inside a server.")
	}

	output, err := c.staffService.GetConfig(context.Background(), &staff.GetConfigInput{GuildID: i.GuildID})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to load configuration: %v", err))
	}

	staffRole := output.Config.StaffRole
	if staffRole == "" {
		return RespondWithError(s, i, "Staff role not set! Run /setup first.")
	}

	var memberIDs []string
	after := ""
	for {
		members, err := s.GuildMembers(i.GuildID, after, 1000)
		if err != nil {
			return RespondWithError(s, i, fmt.Sprintf("Failed to list members: %v", err))
		}
		for _, m := range members {
			if slices.Contains(m.Roles, staffRole) {
				memberIDs = append(memberIDs, m.User.ID)
			}
		}
		if len(members) < 1000 {
			break
		}
		after = members[len(members)-1].User.ID
	}

	if len(memberIDs) == 0 {
		return RespondWithError(s, i, "No staff members found!")
	}

	return RespondWithEphemeralEmbed(s, i, renderStaffListEmbed(memberIDs))
}
