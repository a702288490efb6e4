package models

// SOTDMarker records the last sent song of the day announcement. At most one
// announcement is sent per UTC calendar date.
type SOTDMarker struct {
	// LastSent is the date of the last announcement, formatted YYYY-MM-DD
	LastSent string `json:"lastSent"`

	// MessageID is the ID of the announcement message
	MessageID string `json:"messageId"`
}

// RoleMessageMarker records the reaction role bootstrap message. Its presence
// on disk is the signal that the embed was already posted; the content is
// never read back for decisions.
type RoleMessageMarker struct {
	// MessageID is the ID of the posted reaction role embed
	MessageID string `json:"messageId"`
}
