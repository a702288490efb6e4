package models

import (
	"time"
)

// LOAStatus represents the current state of a leave of absence request
type LOAStatus string

const (
	// LOAStatusPending indicates a request is awaiting a manager's decision
	LOAStatusPending LOAStatus = "pending"

	// LOAStatusAccepted indicates a request was approved
	LOAStatusAccepted LOAStatus = "accepted"

	// LOAStatusDeclined indicates a request was declined
	LOAStatusDeclined LOAStatus = "declined"
)

// LOARequest represents a leave of absence request. The approval card posted
// to the log channel carries only the request ID; the requester and status
// live here, never in the rendered message.
type LOARequest struct {
	// ID is the unique identifier for the request
	ID string

	// GuildID is the guild the request was submitted in
	GuildID string

	// RequesterID is the Discord user ID of the submitter
	RequesterID string

	// RequesterTag is the submitter's tag, kept for display
	RequesterTag string

	// Duration is the free-text duration of the leave
	Duration string

	// StartDate is the free-text start date of the leave
	StartDate string

	// Reason is the free-text reason for the leave
	Reason string

	// Status is the current state of the request
	Status LOAStatus

	// ChannelID is the channel the approval card was posted to
	ChannelID string

	// MessageID is the ID of the approval card message
	MessageID string

	// ResolvedBy is the user ID of the manager who resolved the request
	ResolvedBy string

	// CreatedAt is when the request was submitted
	CreatedAt time.Time

	// ResolvedAt is when the request was accepted or declined
	ResolvedAt time.Time
}
