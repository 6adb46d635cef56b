package note

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type WriteRequest struct {
	Title                string `json:"title,omitempty"`
	Content              string `json:"content" doc:"Required note body"`
	NotesSupplementaires string `json:"notes_supplementaires,omitempty"`
	URLDrive             string `json:"url_drive,omitempty"`
	Favoris              bool   `json:"favoris,omitempty"`
}

func (r WriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

type ListResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}
