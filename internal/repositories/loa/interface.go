package loa

import (
	"context"

	"github.com/boardslol/staffbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/boardslol/staffbot/internal/repositories/loa Repository

// Repository defines the interface for leave of absence request persistence
type Repository interface {
	// CreateRequest persists a new request
	CreateRequest(ctx context.Context, input *CreateRequestInput) error

	// GetRequest retrieves a request by ID
	GetRequest(ctx context.Context, input *GetRequestInput) (*models.LOARequest, error)

	// AttachMessage records the channel and message the approval card was
	// posted to
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// ResolveRequest transitions a pending request to accepted or declined.
	// The check and the write happen under one lock, so exactly one resolver
	// wins; later attempts get ErrAlreadyResolved.
	ResolveRequest(ctx context.Context, input *ResolveRequestInput) (*models.LOARequest, error)
}
