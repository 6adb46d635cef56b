package dashboard

import (
	"time"

	"commandcenter/internal/domain/affirmation"
	"commandcenter/internal/domain/contact"
	"commandcenter/internal/domain/conversation"
	"commandcenter/internal/domain/decision"
	"commandcenter/internal/domain/finance"
	"commandcenter/internal/domain/journal"
	"commandcenter/internal/domain/note"
	"commandcenter/internal/domain/task"
)

// Overview is the single-screen dashboard payload. A section whose read
// failed is simply empty; the dashboard itself never errors.
type Overview struct {
	Tresorerie *finance.Treasury           `json:"tresorerie,omitempty"`
	Taches     []task.Capture              `json:"taches"`
	Urgentes   []task.Tache                `json:"urgentes"`
	Notes      []note.Note                 `json:"notes"`
	Decisions  []decision.Decision         `json:"decisions"`
	RDVs       []conversation.Conversation `json:"rdvs"`
	Prospects  []contact.Contact           `json:"prospects"`
	Journal    *journal.Entry              `json:"journal,omitempty"`
	FocusChart []journal.ScorePoint        `json:"focus_chart"`
	Punchline  *affirmation.Quote          `json:"punchline,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
