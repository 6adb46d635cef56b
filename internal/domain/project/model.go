package project

import "time"

type Type string

const (
	TypeDeveloppement Type = "developpement"
	TypeConsulting    Type = "consulting"
	TypeDesign        Type = "design"
	TypeMarketing     Type = "marketing"
	TypeFormation     Type = "formation"
	TypeAutre         Type = "autre"
)

type Status string

const (
	StatusProspect Status = "prospect"
	StatusEnCours  Status = "en_cours"
	StatusTermine  Status = "termine"
	StatusPause    Status = "pause"
	StatusAnnule   Status = "annule"
)

type Project struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	TypeProjet  Type       `json:"type_projet"`
	Statut      Status     `json:"statut"`
	Budget      *float64   `json:"budget,omitempty"`
	DateStart   *time.Time `json:"date_start,omitempty"`
	DateEnd     *time.Time `json:"date_end,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Filter struct {
	TypeProjet Type
	Statut     Status
}
