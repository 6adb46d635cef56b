package task

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type TacheRequest struct {
	Name     string        `json:"name" doc:"Required"`
	Entree   string        `json:"entree,omitempty" doc:"Description"`
	Notes    string        `json:"notes,omitempty"`
	Priorite TachePriority `json:"priorite,omitempty" doc:"urgent, a_planifier, a_valider or standard"`
	Statut   TacheStatus   `json:"statut,omitempty" doc:"non_debutee, en_cours or terminee"`
	Deadline string        `json:"deadline,omitempty" doc:"YYYY-MM-DD"`
	URLDrive string        `json:"url_drive,omitempty"`
}

func (r TacheRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Priorite,
			validation.In(PrioriteUrgent, PrioriteAPlanifier, PrioriteAValider, PrioriteStandard)),
		validation.Field(&r.Statut,
			validation.In(TacheNonDebutee, TacheEnCours, TacheTerminee)),
		validation.Field(&r.Deadline, validation.Date("2006-01-02")),
	)
}

type CaptureRequest struct {
	Name        string        `json:"name" doc:"Required"`
	Description string        `json:"description,omitempty"`
	Priorite    int           `json:"priorite,omitempty" doc:"Numeric priority, higher is more urgent"`
	Statut      CaptureStatus `json:"statut,omitempty" doc:"todo, en_cours or done"`
	Deadline    string        `json:"deadline,omitempty" doc:"YYYY-MM-DD"`
}

func (r CaptureRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Statut,
			validation.In(CaptureTodo, CaptureEnCours, CaptureDone)),
		validation.Field(&r.Deadline, validation.Date("2006-01-02")),
	)
}

type TacheListResponse struct {
	Taches []Tache `json:"taches"`
	Total  int     `json:"total"`
}

type CaptureListResponse struct {
	Captures []Capture `json:"captures"`
	Total    int       `json:"total"`
}
