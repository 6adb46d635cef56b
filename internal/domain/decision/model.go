package decision

import "time"

// ConcilType classifies a decision: petit_concil for day-to-day calls,
// grand_concil for strategic ones. Display and filtering only.
type ConcilType string

const (
	PetitConcil ConcilType = "petit_concil"
	GrandConcil ConcilType = "grand_concil"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusImplementee Status = "implementee"
	StatusRevisee     Status = "revisee"
	StatusAnnulee     Status = "annulee"
)

type Decision struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Decision      string     `json:"decision"`
	Context       *string    `json:"context,omitempty"`
	Rationale     *string    `json:"rationale,omitempty"`
	AnalyseConcil *string    `json:"analyse_concil,omitempty"`
	TypeConcil    ConcilType `json:"type_concil"`
	Statut        Status     `json:"statut"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	URLDrive      *string    `json:"url_drive,omitempty"`
	DecisionDate  time.Time  `json:"decision_date"`
	Archived      bool       `json:"archived"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Filter struct {
	TypeConcil ConcilType
	Statut     Status
}
