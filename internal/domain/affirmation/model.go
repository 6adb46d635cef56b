package affirmation

type Affirmation struct {
	ID       int    `json:"id"`
	Numero   int    `json:"numero"`
	Citation string `json:"citation"`
}

// Quote is the punchline shown on the dashboard for a given day.
type Quote struct {
	Citation string `json:"citation"`
	Index    int    `json:"index"`
	Date     string `json:"date"`
}
