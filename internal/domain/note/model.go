package note

import "time"

type Note struct {
	ID                   int       `json:"id"`
	Title                *string   `json:"title,omitempty"`
	Content              string    `json:"content"`
	NotesSupplementaires *string   `json:"notes_supplementaires,omitempty"`
	URLDrive             *string   `json:"url_drive,omitempty"`
	Favoris              bool      `json:"favoris"`
	Archived             bool      `json:"archived"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Filter narrows a note listing. Search matches title and content,
// case-insensitively, as a substring.
type Filter struct {
	Search string
}
