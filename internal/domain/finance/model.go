package finance

import "time"

type Status string

const (
	StatutRecu      Status = "reçu"
	StatutPaye      Status = "payé"
	StatutEnAttente Status = "en_attente"
	StatutPrevu     Status = "prevu"
)

// Type only steers sign normalization at write time; the stored row
// encodes direction in the sign of montant (revenue positive, expense
// negative).
type Type string

const (
	TypeRevenu  Type = "revenu"
	TypeDepense Type = "depense"
)

type Transaction struct {
	ID              int       `json:"id"`
	Montant         float64   `json:"montant"`
	Statut          Status    `json:"statut"`
	DateTransaction time.Time `json:"date_transaction"`
	Categorie       *string   `json:"categorie,omitempty"`
	Source          *string   `json:"source,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type Filter struct {
	Statut Status
}

// Treasury is the monthly rollup shown on the dashboard: settled
// transactions split by sign.
type Treasury struct {
	Revenus  float64 `json:"revenus"`
	Depenses float64 `json:"depenses"`
	Net      float64 `json:"net"`
}
