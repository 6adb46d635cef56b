package finance

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type WriteRequest struct {
	Type            Type    `json:"type" doc:"revenu or depense"`
	Montant         float64 `json:"montant" doc:"Required, non-zero. Positive depense amounts are negated at write time"`
	Statut          Status  `json:"statut,omitempty" doc:"reçu, en_attente or prevu; defaults to reçu"`
	DateTransaction string  `json:"date_transaction,omitempty" doc:"YYYY-MM-DD, defaults to today"`
	Categorie       string  `json:"categorie,omitempty"`
	Source          string  `json:"source,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

func (r WriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Montant, validation.Required),
		validation.Field(&r.Type, validation.In(TypeRevenu, TypeDepense)),
		validation.Field(&r.Statut,
			validation.In(StatutRecu, StatutPaye, StatutEnAttente, StatutPrevu)),
		validation.Field(&r.DateTransaction, validation.Date("2006-01-02")),
	)
}

type ListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}
