package decision

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type WriteRequest struct {
	Title         string     `json:"title" doc:"Required"`
	Decision      string     `json:"decision" doc:"Required decision text"`
	Context       string     `json:"context,omitempty"`
	Rationale     string     `json:"rationale,omitempty"`
	AnalyseConcil string     `json:"analyse_concil,omitempty" doc:"AI council analysis"`
	TypeConcil    ConcilType `json:"type_concil,omitempty" doc:"petit_concil or grand_concil"`
	Statut        Status     `json:"statut,omitempty" doc:"active, implementee, revisee or annulee"`
	Deadline      string     `json:"deadline,omitempty" doc:"YYYY-MM-DD"`
	URLDrive      string     `json:"url_drive,omitempty"`
}

func (r WriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Decision, validation.Required),
		validation.Field(&r.TypeConcil, validation.In(PetitConcil, GrandConcil)),
		validation.Field(&r.Statut,
			validation.In(StatusActive, StatusImplementee, StatusRevisee, StatusAnnulee)),
		validation.Field(&r.Deadline, validation.Date("2006-01-02")),
	)
}

type ListResponse struct {
	Decisions []Decision `json:"decisions"`
	Total     int        `json:"total"`
}
