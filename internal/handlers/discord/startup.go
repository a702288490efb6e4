package discord

import (
	"context"
	"fmt"

	"github.com/boardslol/staffbot/internal/services/roles"
	"github.com/boardslol/staffbot/internal/services/sotd"
	"github.com/bwmarrin/discordgo"
)

// sotdReactions are seeded on every daily announcement for quick voting.
// Custom emoji use discordgo's name:id form.
var sotdReactions = []string{"bop:1341589766444945468", "flop:1341589765157421126"}

// sendDailySong posts today's song announcement unless it already went out.
// The marker is only written after a successful send, so a delivery failure
// leaves the announcement due for the next start.
func (b *Bot) sendDailySong(ctx context.Context) {
	if b.config.SOTDChannelID == "" {
		b.logger.Info().Msg("song of the day disabled, no channel configured")
		return
	}

	output, err := b.sotdService.CheckDue(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to check song of the day marker")
		return
	}

	if !output.Due {
		b.logger.Debug().Str("date", output.Today).Msg("song of the day already sent")
		return
	}

	content := ""
	if b.config.SOTDPingRoleID != "" {
		content = fmt.Sprintf("<@&%s>", b.config.SOTDPingRoleID)
	}

	msg, err := b.session.ChannelMessageSendComplex(b.config.SOTDChannelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{renderSOTDEmbed(output.Song)},
	})
	if err != nil {
		b.logger.Error().Err(err).Str("channel_id", b.config.SOTDChannelID).Msg("failed to send song of the day")
		return
	}

	for _, emoji := range sotdReactions {
		if err := b.session.MessageReactionAdd(b.config.SOTDChannelID, msg.ID, emoji); err != nil {
			b.logger.Warn().Err(err).Str("emoji", emoji).Msg("failed to seed song reaction")
		}
	}

	if err := b.sotdService.MarkSent(ctx, &sotd.MarkSentInput{Today: output.Today, MessageID: msg.ID}); err != nil {
		b.logger.Error().Err(err).Msg("failed to persist song of the day marker")
		return
	}

	b.logger.Info().Str("date", output.Today).Str("song", output.Song.Name).Msg("sent song of the day")
}

// ensureRoleMessage posts the reaction role embed exactly once per deployment
// and seeds one reaction per binding so members can click instead of hunting
// for emoji
func (b *Bot) ensureRoleMessage(ctx context.Context) {
	if b.rolesService == nil || b.config.RoleChannelID == "" {
		return
	}

	needed, err := b.rolesService.NeedsBootstrap(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to check role message sentinel")
		return
	}
	if !needed {
		return
	}

	msg, err := b.session.ChannelMessageSendEmbed(b.config.RoleChannelID, renderRoleMessageEmbed(b.rolesService.Bindings()))
	if err != nil {
		b.logger.Error().Err(err).Str("channel_id", b.config.RoleChannelID).Msg("failed to post role message")
		return
	}

	for _, binding := range b.rolesService.Bindings() {
		if err := b.session.MessageReactionAdd(b.config.RoleChannelID, msg.ID, binding.Emoji); err != nil {
			b.logger.Warn().Err(err).Str("emoji", binding.Emoji).Msg("failed to seed role reaction")
		}
	}

	if err := b.rolesService.MarkBootstrapped(ctx, &roles.MarkBootstrappedInput{MessageID: msg.ID}); err != nil {
		b.logger.Error().Err(err).Msg("failed to persist role message sentinel")
		return
	}

	b.logger.Info().Str("message_id", msg.ID).Msg("posted reaction role message")
}
