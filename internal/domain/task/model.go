package task

import "time"

// Two incompatible task schemas coexist in the store: "taches" (the full
// task board) and "captures" (the quick-capture inbox). They stay separate
// variants sharing only the Task capability interface; merging them is an
// open product question.

type TacheStatus string

const (
	TacheNonDebutee TacheStatus = "non_debutee"
	TacheEnCours    TacheStatus = "en_cours"
	TacheTerminee   TacheStatus = "terminee"
)

type TachePriority string

const (
	PrioriteUrgent     TachePriority = "urgent"
	PrioriteAPlanifier TachePriority = "a_planifier"
	PrioriteAValider   TachePriority = "a_valider"
	PrioriteStandard   TachePriority = "standard"
)

type Tache struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Entree    *string       `json:"entree,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
	Priorite  TachePriority `json:"priorite"`
	Statut    TacheStatus   `json:"statut"`
	Deadline  *time.Time    `json:"deadline,omitempty"`
	URLDrive  *string       `json:"url_drive,omitempty"`
	Archived  bool          `json:"archived"`
	CreatedAt time.Time     `json:"created_at"`
}

type CaptureStatus string

const (
	CaptureTodo    CaptureStatus = "todo"
	CaptureEnCours CaptureStatus = "en_cours"
	CaptureDone    CaptureStatus = "done"
)

type Capture struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Priorite    int           `json:"priorite"`
	Statut      CaptureStatus `json:"statut"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	Archived    bool          `json:"archived"`
	CreatedAt   time.Time     `json:"created_at"`
}

type TacheFilter struct {
	Statut   TacheStatus
	Priorite TachePriority
}

type CaptureFilter struct {
	Statut CaptureStatus
}
