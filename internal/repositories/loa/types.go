package loa

import (
	"time"

	"github.com/boardslol/staffbot/internal/models"
)

// CreateRequestInput contains parameters for persisting a new request
type CreateRequestInput struct {
	Request *models.LOARequest
}

// GetRequestInput contains parameters for retrieving a request
type GetRequestInput struct {
	RequestID string
}

// AttachMessageInput contains parameters for recording the approval card
type AttachMessageInput struct {
	RequestID string
	ChannelID string
	MessageID string
}

// ResolveRequestInput contains parameters for resolving a pending request
type ResolveRequestInput struct {
	RequestID  string
	Status     models.LOAStatus
	ResolvedBy string
	ResolvedAt time.Time
}
