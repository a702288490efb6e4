package staff

import (
	"context"
	"errors"

	"github.com/boardslol/staffbot/internal/models"
	guildRepo "github.com/boardslol/staffbot/internal/repositories/guild"
)

// service implements the Service interface
type service struct {
	guildRepo guildRepo.Repository
}

// New creates a new staff service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GuildRepo == nil {
		return nil, ErrNilGuildRepo
	}

	return &service{
		guildRepo: cfg.GuildRepo,
	}, nil
}

// Setup stores the guild's staff roles and logging channels
func (s *service) Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cfg, err := s.guildRepo.UpdateConfig(ctx, &guildRepo.UpdateConfigInput{
		GuildID: input.GuildID,
		Apply: func(cfg *models.GuildConfig) error {
			cfg.StaffRole = input.StaffRole
			cfg.ManagerRole = input.ManagerRole
			cfg.LOARole = input.LOARole
			cfg.LogChannel = input.LogChannel
			cfg.ShiftLogChannel = input.ShiftLogChannel
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &SetupOutput{Config: cfg}, nil
}

// GetConfig returns the guild document, creating it if absent
func (s *service) GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cfg, err := s.guildRepo.GetConfig(ctx, &guildRepo.GetConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &GetConfigOutput{Config: cfg}, nil
}

// AddWarning appends a warning to a user's ledger and returns the new total.
// The ledger write is authoritative; notifying the user is the caller's
// best-effort concern.
func (s *service) AddWarning(ctx context.Context, input *AddWarningInput) (*AddWarningOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var count int
	_, err := s.guildRepo.UpdateConfig(ctx, &guildRepo.UpdateConfigInput{
		GuildID: input.GuildID,
		Apply: func(cfg *models.GuildConfig) error {
			cfg.Warnings[input.UserID] = append(cfg.Warnings[input.UserID], input.Reason)
			count = len(cfg.Warnings[input.UserID])
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &AddWarningOutput{Count: count}, nil
}

// ListWarnings returns a user's warnings in issue order. A user with no
// recorded warnings gets ErrNoWarnings, distinguishable from an empty guild.
func (s *service) ListWarnings(ctx context.Context, input *ListWarningsInput) (*ListWarningsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cfg, err := s.guildRepo.GetConfig(ctx, &guildRepo.GetConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	reasons := cfg.Warnings[input.UserID]
	if len(reasons) == 0 {
		return nil, ErrNoWarnings
	}

	return &ListWarningsOutput{Reasons: reasons}, nil
}

// StartShift appends a shift record and returns the channel to announce in
func (s *service) StartShift(ctx context.Context, input *StartShiftInput) (*StartShiftOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	shift := models.Shift{
		Description: input.Description,
		StartedBy:   input.StartedBy,
	}

	var channelID string
	_, err := s.guildRepo.UpdateConfig(ctx, &guildRepo.UpdateConfigInput{
		GuildID: input.GuildID,
		Apply: func(cfg *models.GuildConfig) error {
			if cfg.ShiftLogChannel == "" {
				return ErrShiftLogChannelNotConfigured
			}
			channelID = cfg.ShiftLogChannel
			cfg.Shifts = append(cfg.Shifts, shift)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &StartShiftOutput{
		ChannelID: channelID,
		Shift:     shift,
	}, nil
}
