package marker

// SaveSOTDMarkerInput contains parameters for saving the song of the day marker
type SaveSOTDMarkerInput struct {
	// LastSent is the announcement date, formatted YYYY-MM-DD (UTC)
	LastSent string

	// MessageID is the ID of the announcement message
	MessageID string
}

// SaveRoleMessageInput contains parameters for saving the reaction role sentinel
type SaveRoleMessageInput struct {
	// MessageID is the ID of the posted reaction role embed
	MessageID string
}
