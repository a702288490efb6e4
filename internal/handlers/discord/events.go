package discord

import (
	"github.com/bwmarrin/discordgo"
)

// handleMemberAdd welcomes a new member, once per join window
func (b *Bot) handleMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if b.config.WelcomeChannelID == "" {
		return
	}

	if m.User == nil || m.User.Bot {
		return
	}

	if !b.joinGuard.Mark(m.User.ID) {
		b.logger.Debug().Str("user_id", m.User.ID).Msg("duplicate join event suppressed")
		return
	}

	if _, err := s.ChannelMessageSendEmbed(b.config.WelcomeChannelID, renderWelcomeEmbed(m.Member)); err != nil {
		b.logger.Warn().Err(err).Str("user_id", m.User.ID).Msg("failed to send welcome message")
	}
}

// handleReactionAdd grants the role bound to the emoji that was added
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if b.rolesService == nil || r.GuildID == "" {
		return
	}

	// The bot seeds its own reactions on the role message; skip them
	if r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	roleID, ok := b.rolesService.RoleForEmoji(r.Emoji.Name)
	if !ok {
		return
	}

	if err := s.GuildMemberRoleAdd(r.GuildID, r.UserID, roleID); err != nil {
		b.logger.Warn().Err(err).Str("user_id", r.UserID).Str("role_id", roleID).Msg("failed to grant reaction role")
		return
	}

	b.sendDM(s, r.UserID, "", renderRoleChangeEmbed(r.Emoji.Name, true))
}

// handleReactionRemove revokes the role bound to the emoji that was removed
func (b *Bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if b.rolesService == nil || r.GuildID == "" {
		return
	}

	if r.UserID == s.State.User.ID {
		return
	}

	roleID, ok := b.rolesService.RoleForEmoji(r.Emoji.Name)
	if !ok {
		return
	}

	if err := s.GuildMemberRoleRemove(r.GuildID, r.UserID, roleID); err != nil {
		b.logger.Warn().Err(err).Str("user_id", r.UserID).Str("role_id", roleID).Msg("failed to revoke reaction role")
		return
	}

	b.sendDM(s, r.UserID, "", renderRoleChangeEmbed(r.Emoji.Name, false))
}
