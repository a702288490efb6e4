package models

// Song is a song of the day candidate
type Song struct {
	// Name is the song title
	Name string

	// Artist is the performing artist
	Artist string

	// Link is the streaming URL for the song
	Link string
}
