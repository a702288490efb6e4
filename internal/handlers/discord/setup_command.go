package discord

import (
	"context"
	"fmt"

	"github.com/boardslol/staffbot/internal/services/staff"
	"github.com/bwmarrin/discordgo"
)

// SetupCommand stores the guild's staff roles and logging channels
type SetupCommand struct {
	BaseCommand
	staffService staff.Service
}

// NewSetupCommand creates a new setup command handler
func NewSetupCommand(staffService staff.Service) *SetupCommand {
	return &SetupCommand{
		BaseCommand: BaseCommand{
			Name:        "setup",
			Description: "Configure staff roles and logging channels for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "staffrole",
					Description: "Role held by all staff members",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "managerrole",
					Description: "Role allowed to approve LOA requests",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "loarole",
					Description: "Role granted to members on leave",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "logchannel",
					Description: "Channel for LOA approval cards",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "shiftlogchannel",
					Description: "Channel for shift announcements",
					Required:    true,
				},
			},
		},
		staffService: staffService,
	}
}

// Handle processes the setup command
func (c *SetupCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This command only works inside a server.")
	}

	if i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
		return RespondWithError(s, i, "You need the Administrator permission to run setup.")
	}

	opts := commandOptions(i)

	input := &staff.SetupInput{
		GuildID:         i.GuildID,
		StaffRole:       opts["staffrole"].RoleValue(nil, "").ID,
		ManagerRole:     opts["managerrole"].RoleValue(nil, "").ID,
		LOARole:         opts["loarole"].RoleValue(nil, "").ID,
		LogChannel:      opts["logchannel"].ChannelValue(nil).ID,
		ShiftLogChannel: opts["shiftlogchannel"].ChannelValue(nil).ID,
	}

	output, err := c.staffService.Setup(context.Background(), input)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to save configuration: %v", err))
	}

	cfg := output.Config
	summary := fmt.Sprintf(
		"✅ Setup complete!\nStaff role: <@&%s>\nManager role: <@&%s>\nLOA role: <@&%s>\nLog channel: <#%s>\nShift log channel: <#%s>",
		cfg.StaffRole, cfg.ManagerRole, cfg.LOARole, cfg.LogChannel, cfg.ShiftLogChannel,
	)
	return RespondWithEphemeralMessage(s, i, summary)
}
