package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boardslol/staffbot/internal/guard"
	loaRepo "github.com/boardslol/staffbot/internal/repositories/loa"
	"github.com/boardslol/staffbot/internal/services/loa"
	"github.com/boardslol/staffbot/internal/services/roles"
	"github.com/boardslol/staffbot/internal/services/sotd"
	"github.com/boardslol/staffbot/internal/services/staff"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Button custom ID prefixes; the LOA request ID follows the colon
const (
	ButtonLOAAccept  = "loa_accept:"
	ButtonLOADecline = "loa_decline:"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	staffService staff.Service
	loaService   loa.Service
	sotdService  sotd.Service
	rolesService roles.Service
	joinGuard    *guard.Guard
	logger       zerolog.Logger
	config       *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Staff service
	StaffService staff.Service

	// LOA workflow service
	LOAService loa.Service

	// Song of the day service
	SOTDService sotd.Service

	// Reaction role service; nil disables reaction roles entirely
	RolesService roles.Service

	// Join guard for welcome de-duplication
	JoinGuard *guard.Guard

	// Logger for handler-level events
	Logger zerolog.Logger

	// WelcomeChannelID is where welcome embeds go; empty disables them
	WelcomeChannelID string

	// SOTDChannelID is where the daily song goes; empty disables it
	SOTDChannelID string

	// SOTDPingRoleID is mentioned in the daily song announcement, optional
	SOTDPingRoleID string

	// RoleChannelID is where the reaction role embed goes
	RoleChannelID string
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.StaffService == nil {
		return nil, errors.New("staff service cannot be nil")
	}

	if cfg.LOAService == nil {
		return nil, errors.New("loa service cannot be nil")
	}

	if cfg.SOTDService == nil {
		return nil, errors.New("sotd service cannot be nil")
	}

	if cfg.JoinGuard == nil {
		return nil, errors.New("join guard cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		staffService: cfg.StaffService,
		loaService:   cfg.LOAService,
		sotdService:  cfg.SOTDService,
		rolesService: cfg.RolesService,
		joinGuard:    cfg.JoinGuard,
		logger:       cfg.Logger,
		config:       cfg,
	}

	// Register the gateway handlers
	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMemberAdd)
	session.AddHandler(bot.handleReactionAdd)
	session.AddHandler(bot.handleReactionRemove)

	return bot, nil
}

// Start initializes the Discord connection, registers commands, and runs the
// idempotent startup announcements
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewSetupCommand(b.staffService),
		NewLOARequestCommand(b.loaService, b.logger),
		NewWarnCommand(b.staffService, b.logger),
		NewShowWarningsCommand(b.staffService),
		NewStaffListCommand(b.staffService),
		NewStartShiftCommand(b.staffService, b.logger),
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	ctx := context.Background()
	b.sendDailySong(ctx)
	b.ensureRoleMessage(ctx)

	b.logger.Info().Str("user", b.session.State.User.Username).Msg("bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	b.joinGuard.Stop()

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, ButtonLOAAccept):
		return b.handleLOAResolution(s, i, strings.TrimPrefix(customID, ButtonLOAAccept), true)
	case strings.HasPrefix(customID, ButtonLOADecline):
		return b.handleLOAResolution(s, i, strings.TrimPrefix(customID, ButtonLOADecline), false)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleLOAResolution handles the Accept and Decline buttons on an approval
// card. The authorization gate and the status transition live in the service;
// the role grant and notifications happen here, after the transition commits.
func (b *Bot) handleLOAResolution(s *discordgo.Session, i *discordgo.InteractionCreate, requestID string, accept bool) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithError(s, i, "This action only works inside a server.")
	}

	ctx := context.Background()

	output, err := b.loaService.Resolve(ctx, &loa.ResolveInput{
		GuildID:       i.GuildID,
		RequestID:     requestID,
		ResolverID:    i.Member.User.ID,
		ResolverRoles: i.Member.Roles,
		Accept:        accept,
	})
	if err != nil {
		switch {
		case errors.Is(err, loa.ErrNotManager):
			return RespondWithError(s, i, "You need the manager role to approve or decline this request.")
		case errors.Is(err, loa.ErrManagerRoleNotConfigured), errors.Is(err, loa.ErrLOARoleNotConfigured):
			return RespondWithError(s, i, fmt.Sprintf("Run /setup first: %v.", err))
		case errors.Is(err, loaRepo.ErrAlreadyResolved):
			return RespondWithEphemeralMessage(s, i, "This request has already been resolved.")
		case errors.Is(err, loaRepo.ErrRequestNotFound):
			return RespondWithError(s, i, "Could not find this LOA request.")
		default:
			b.logger.Error().Err(err).Str("request_id", requestID).Msg("error resolving loa request")
			return RespondWithError(s, i, fmt.Sprintf("Failed to resolve request: %v", err))
		}
	}

	request := output.Request

	if accept {
		if err := s.GuildMemberRoleAdd(i.GuildID, request.RequesterID, output.LOARoleID); err != nil {
			// The request is already accepted at this point; surface the
			// failed grant to the resolver rather than pretending it worked.
			b.logger.Error().Err(err).Str("request_id", requestID).Str("user_id", request.RequesterID).Msg("failed to grant loa role")
			return RespondWithError(s, i, fmt.Sprintf("Request accepted, but granting the LOA role failed: %v", err))
		}
	}

	// Best-effort notification to the requester
	notification := "Your Leave of Absence request has been declined."
	if accept {
		notification = "Your Leave of Absence request has been approved. You are now marked as on LOA."
	}
	b.sendDM(s, request.RequesterID, notification, nil)

	// Rewrite the approval card so the outcome is visible in the log channel
	if request.MessageID != "" {
		if _, err := s.ChannelMessageEditComplex(renderResolvedLOACard(request)); err != nil {
			b.logger.Warn().Err(err).Str("request_id", requestID).Msg("failed to update approval card")
		}
	}

	verb := "declined"
	icon := "❌"
	if accept {
		verb = "approved"
		icon = "✅"
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s %s's LOA request has been %s.", icon, request.RequesterTag, verb))
}

// sendDM delivers a direct message on a best-effort basis. Closed DMs are
// logged and never propagated.
func (b *Bot) sendDM(s *discordgo.Session, userID, content string, embed *discordgo.MessageEmbed) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		b.logger.Warn().Err(err).Str("user_id", userID).Msg("cannot open DM channel")
		return
	}

	msg := &discordgo.MessageSend{Content: content}
	if embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{embed}
	}

	if _, err := s.ChannelMessageSendComplex(channel.ID, msg); err != nil {
		b.logger.Warn().Err(err).Str("user_id", userID).Msg("cannot DM user")
	}
}
