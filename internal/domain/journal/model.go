package journal

import "time"

// Entry is one day of the journal: ten 0-10 scores, sleep, habit flags
// and four free-text fields. At most one row exists per date.
type Entry struct {
	ID   int       `json:"id"`
	Date time.Time `json:"date"`

	OverallScore      int `json:"overall_score"`
	EnergyScore       int `json:"energy_score"`
	WorkScore         int `json:"work_score"`
	NutritionScore    int `json:"nutrition_score"`
	SleepScore        int `json:"sleep_score"`
	MindsetScore      int `json:"mindset_score"`
	RelationshipScore int `json:"relationship_score"`
	PeaceScore        int `json:"peace_score"`
	LoveScore         int `json:"love_score"`
	JoyScore          int `json:"joy_score"`

	Notes      *string `json:"notes,omitempty"`
	Focus      *string `json:"focus,omitempty"`
	Gratitude  *string `json:"gratitude,omitempty"`
	Intentions *string `json:"intentions,omitempty"`

	HoursSleep   float64 `json:"hours_sleep"`
	SleepQuality string  `json:"sleep_quality"`

	Meditation        bool `json:"meditation"`
	MeditationMinutes int  `json:"meditation_minutes"`
	Breathwork        bool `json:"breathwork"`
	ColdShower        bool `json:"cold_shower"`
	Sunshine30Min     bool `json:"sunshine_30min"`

	Water2L    bool `json:"water_2l"`
	Vegetables bool `json:"vegetables"`
	Fruits     bool `json:"fruits"`
	NoBread    bool `json:"no_bread"`
	NoPasta    bool `json:"no_pasta"`

	Workout  bool `json:"workout"`
	QuickRun bool `json:"quick_run"`
	Walk     bool `json:"walk"`

	DeepWorkHours float64 `json:"deep_work_hours"`
	ClientCalls   int     `json:"client_calls"`

	Prieres       int  `json:"prieres"`
	Visualisation bool `json:"visualisation"`

	NoPorn   bool `json:"no_porn"`
	NoAlcool bool `json:"no_alcool"`
	NoSmoke  bool `json:"no_smoke"`

	CreatedAt time.Time `json:"created_at"`
}

// ScorePoint is one day of the dashboard trend chart.
type ScorePoint struct {
	Date         time.Time `json:"date"`
	OverallScore int       `json:"overall_score"`
	EnergyScore  int       `json:"energy_score"`
	WorkScore    int       `json:"work_score"`
}
