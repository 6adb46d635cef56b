package conversation

import "time"

type Type string

const (
	TypeMeeting Type = "meeting"
	TypeCall    Type = "call"
	TypeEmail   Type = "email"
)

// Conversation is a logged interaction with a contact. The dashboard only
// reads today's meetings; the contact name is joined in for display.
type Conversation struct {
	ID          int       `json:"id"`
	ContactID   int       `json:"contact_id"`
	ContactName string    `json:"nom_complet,omitempty"`
	Type        Type      `json:"type"`
	HappenedAt  time.Time `json:"happened_at"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
