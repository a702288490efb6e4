package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/boardslol/staffbot/internal/common/clock"
	"github.com/boardslol/staffbot/internal/common/uuid"
	"github.com/boardslol/staffbot/internal/config"
	"github.com/boardslol/staffbot/internal/guard"
	"github.com/boardslol/staffbot/internal/handlers/discord"
	guildRepo "github.com/boardslol/staffbot/internal/repositories/guild"
	loaRepo "github.com/boardslol/staffbot/internal/repositories/loa"
	markerRepo "github.com/boardslol/staffbot/internal/repositories/marker"
	loaService "github.com/boardslol/staffbot/internal/services/loa"
	rolesService "github.com/boardslol/staffbot/internal/services/roles"
	sotdService "github.com/boardslol/staffbot/internal/services/sotd"
	staffService "github.com/boardslol/staffbot/internal/services/staff"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env is fine in production, the environment is already set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// Initialize repositories
	guilds, err := guildRepo.NewFile(&guildRepo.Config{DataDir: cfg.DataDir})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create guild repository")
	}

	requests, err := loaRepo.NewFile(&loaRepo.Config{DataDir: cfg.DataDir})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create loa repository")
	}

	markers, err := markerRepo.NewFile(&markerRepo.Config{DataDir: cfg.DataDir})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create marker repository")
	}

	// Initialize services
	staffSvc, err := staffService.New(&staffService.Config{GuildRepo: guilds})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create staff service")
	}

	loaSvc, err := loaService.New(&loaService.Config{
		RequestRepo:   requests,
		GuildRepo:     guilds,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create loa service")
	}

	sotdSvc, err := sotdService.New(&sotdService.Config{
		MarkerRepo: markers,
		Clock:      &clock.DefaultClock{},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create sotd service")
	}

	// Reaction roles run only when bindings are configured
	var rolesSvc rolesService.Service
	if len(cfg.RoleBindings) > 0 {
		bindings := make([]rolesService.Binding, 0, len(cfg.RoleBindings))
		for _, b := range cfg.RoleBindings {
			bindings = append(bindings, rolesService.Binding{
				Emoji:  b.Emoji,
				RoleID: b.RoleID,
				Label:  b.Label,
			})
		}

		rolesSvc, err = rolesService.New(&rolesService.Config{
			MarkerRepo: markers,
			Bindings:   bindings,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create roles service")
		}
	} else {
		logger.Info().Msg("reaction roles disabled, no bindings configured")
	}

	joinGuard := guard.New(&guard.Config{})

	bot, err := discord.New(&discord.Config{
		Token:            cfg.Token,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		StaffService:     staffSvc,
		LOAService:       loaSvc,
		SOTDService:      sotdSvc,
		RolesService:     rolesSvc,
		JoinGuard:        joinGuard,
		Logger:           logger,
		WelcomeChannelID: cfg.WelcomeChannelID,
		SOTDChannelID:    cfg.SOTDChannelID,
		SOTDPingRoleID:   cfg.SOTDPingRoleID,
		RoleChannelID:    cfg.RoleChannelID,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start bot")
	}

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
}
