package loa

import (
	"context"
	"errors"
	"slices"

	"github.com/boardslol/staffbot/internal/common/clock"
	"github.com/boardslol/staffbot/internal/common/uuid"
	"github.com/boardslol/staffbot/internal/models"
	guildRepo "github.com/boardslol/staffbot/internal/repositories/guild"
	loaRepo "github.com/boardslol/staffbot/internal/repositories/loa"
)

// service implements the Service interface
type service struct {
	requestRepo loaRepo.Repository
	guildRepo   guildRepo.Repository
	clock       clock.Clock
	uuider      uuid.UUID
}

// New creates a new LOA workflow service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RequestRepo == nil {
		return nil, ErrNilRequestRepo
	}

	if cfg.GuildRepo == nil {
		return nil, ErrNilGuildRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		requestRepo: cfg.RequestRepo,
		guildRepo:   cfg.GuildRepo,
		clock:       cfg.Clock,
		uuider:      cfg.UUIDGenerator,
	}, nil
}

// Submit creates a pending request for the guild's log channel
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cfg, err := s.guildRepo.GetConfig(ctx, &guildRepo.GetConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if cfg.LogChannel == "" {
		return nil, ErrLogChannelNotConfigured
	}

	request := &models.LOARequest{
		ID:           s.uuider.NewUUID(),
		GuildID:      input.GuildID,
		RequesterID:  input.RequesterID,
		RequesterTag: input.RequesterTag,
		Duration:     input.Duration,
		StartDate:    input.StartDate,
		Reason:       input.Reason,
		Status:       models.LOAStatusPending,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.requestRepo.CreateRequest(ctx, &loaRepo.CreateRequestInput{
		Request: request,
	}); err != nil {
		return nil, err
	}

	return &SubmitOutput{
		Request:      request,
		LogChannelID: cfg.LogChannel,
	}, nil
}

// AttachMessage records the posted approval card on the request
func (s *service) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.requestRepo.AttachMessage(ctx, &loaRepo.AttachMessageInput{
		RequestID: input.RequestID,
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
	})
}

// Resolve accepts or declines a pending request. The manager gate and the
// configuration checks run before any state changes; the status transition
// itself is a compare-and-swap in the repository.
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cfg, err := s.guildRepo.GetConfig(ctx, &guildRepo.GetConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if cfg.ManagerRole == "" {
		return nil, ErrManagerRoleNotConfigured
	}

	if !slices.Contains(input.ResolverRoles, cfg.ManagerRole) {
		return nil, ErrNotManager
	}

	status := models.LOAStatusDeclined
	loaRoleID := ""
	if input.Accept {
		if cfg.LOARole == "" {
			return nil, ErrLOARoleNotConfigured
		}
		status = models.LOAStatusAccepted
		loaRoleID = cfg.LOARole
	}

	request, err := s.requestRepo.ResolveRequest(ctx, &loaRepo.ResolveRequestInput{
		RequestID:  input.RequestID,
		Status:     status,
		ResolvedBy: input.ResolverID,
		ResolvedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &ResolveOutput{
		Request:   request,
		LOARoleID: loaRoleID,
	}, nil
}
