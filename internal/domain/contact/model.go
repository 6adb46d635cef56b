package contact

import "time"

type Type string

const (
	TypeProspect    Type = "prospect"
	TypeClient      Type = "client"
	TypePartenaire  Type = "partenaire"
	TypeFournisseur Type = "fournisseur"
	TypeReseau      Type = "reseau"
)

func (t Type) String() string { return string(t) }

type RelationStatus string

const (
	RelationActif        RelationStatus = "actif"
	RelationInactif      RelationStatus = "inactif"
	RelationEnDiscussion RelationStatus = "en_discussion"
	RelationEnAttente    RelationStatus = "en_attente"
)

type Contact struct {
	ID                 int            `json:"id"`
	NomComplet         string         `json:"nom_complet"`
	Email              *string        `json:"email,omitempty"`
	Telephone          *string        `json:"telephone,omitempty"`
	Societe            *string        `json:"societe,omitempty"`
	TypeContact        Type           `json:"type_contact"`
	ScorePriorite      int            `json:"score_priorite"`
	StatutRelation     RelationStatus `json:"statut_relation"`
	DatePremierContact time.Time      `json:"date_premier_contact"`
	Notes              *string        `json:"notes,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// Filter narrows a contact listing. Zero values mean "no restriction".
type Filter struct {
	Type           Type
	StatutRelation RelationStatus
	Search         string
}
