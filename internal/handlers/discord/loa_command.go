package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/boardslol/staffbot/internal/services/loa"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// LOARequestCommand submits a leave of absence request for manager review
type LOARequestCommand struct {
	BaseCommand
	loaService loa.Service
	logger     zerolog.Logger
}

// NewLOARequestCommand creates a new loarequest command handler
func NewLOARequestCommand(loaService loa.Service, logger zerolog.Logger) *LOARequestCommand {
	return &LOARequestCommand{
		BaseCommand: BaseCommand{
			Name:        "loarequest",
			Description: "Request a leave of absence",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "duration",
					Description: "How long you will be away",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "startdate",
					Description: "When the leave starts",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Why you need the leave",
					Required:    true,
				},
			},
		},
		loaService: loaService,
		logger:     logger,
	}
}

// Handle processes the loarequest command
func (c *LOARequestCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This command only works inside a server.")
	}

	opts := commandOptions(i)

	output, err := c.loaService.Submit(context.Background(), &loa.SubmitInput{
		GuildID:      i.GuildID,
		RequesterID:  i.Member.User.ID,
		RequesterTag: i.Member.User.String(),
		Duration:     opts["duration"].StringValue(),
		StartDate:    opts["startdate"].StringValue(),
		Reason:       opts["reason"].StringValue(),
	})
	if err != nil {
		if errors.Is(err, loa.ErrLogChannelNotConfigured) {
			return RespondWithError(s, i, "Log channel not set! Run /setup first.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Failed to submit request: %v", err))
	}

	msg, err := s.ChannelMessageSendComplex(output.LogChannelID, renderLOACard(output.Request))
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to post the approval card: %v", err))
	}

	if err := c.loaService.AttachMessage(context.Background(), &loa.AttachMessageInput{
		RequestID: output.Request.ID,
		ChannelID: output.LogChannelID,
		MessageID: msg.ID,
	}); err != nil {
		// The card is posted and the buttons work; only the resolved-card
		// edit is lost if this write failed
		c.logger.Warn().Err(err).Str("request_id", output.Request.ID).Msg("failed to attach approval card to request")
	}

	return RespondWithEphemeralMessage(s, i, "✅ LOA request submitted for review!")
}
