package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type WriteRequest struct {
	Name        string   `json:"name" doc:"Required"`
	TypeProjet  Type     `json:"type_projet,omitempty"`
	Statut      Status   `json:"statut,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	DateStart   string   `json:"date_start,omitempty" doc:"YYYY-MM-DD"`
	DateEnd     string   `json:"date_end,omitempty" doc:"YYYY-MM-DD"`
	Description string   `json:"description,omitempty"`
}

func (r WriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.TypeProjet, validation.In(
			TypeDeveloppement, TypeConsulting, TypeDesign,
			TypeMarketing, TypeFormation, TypeAutre)),
		validation.Field(&r.Statut, validation.In(
			StatusProspect, StatusEnCours, StatusTermine, StatusPause, StatusAnnule)),
		validation.Field(&r.DateStart, validation.Date("2006-01-02")),
		validation.Field(&r.DateEnd, validation.Date("2006-01-02")),
	)
}

type ListResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
