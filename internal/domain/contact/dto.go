package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateRequest struct {
	NomComplet     string `json:"nom_complet" doc:"Full name, required"`
	Email          string `json:"email,omitempty"`
	Telephone      string `json:"telephone,omitempty"`
	Societe        string `json:"societe,omitempty"`
	TypeContact    Type   `json:"type_contact,omitempty" doc:"prospect, client, partenaire, fournisseur or reseau"`
	ScorePriorite  *int   `json:"score_priorite,omitempty" doc:"0-10, defaults to 5"`
	StatutRelation string `json:"statut_relation,omitempty" doc:"Defaults to actif"`
	Notes          string `json:"notes,omitempty"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NomComplet, validation.Required),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.ScorePriorite, validation.Min(0), validation.Max(10)),
	)
}

type UpdateRequest struct {
	NomComplet     string `json:"nom_complet"`
	Email          string `json:"email,omitempty"`
	Telephone      string `json:"telephone,omitempty"`
	Societe        string `json:"societe,omitempty"`
	TypeContact    Type   `json:"type_contact,omitempty"`
	ScorePriorite  *int   `json:"score_priorite,omitempty"`
	StatutRelation string `json:"statut_relation,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NomComplet, validation.Required),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.ScorePriorite, validation.Min(0), validation.Max(10)),
	)
}

type ListResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
}
