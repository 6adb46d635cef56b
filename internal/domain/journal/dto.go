package journal

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type WriteRequest struct {
	OverallScore      int `json:"overall_score" doc:"0-10"`
	EnergyScore       int `json:"energy_score" doc:"0-10"`
	WorkScore         int `json:"work_score" doc:"0-10"`
	NutritionScore    int `json:"nutrition_score" doc:"0-10"`
	SleepScore        int `json:"sleep_score" doc:"0-10"`
	MindsetScore      int `json:"mindset_score" doc:"0-10"`
	RelationshipScore int `json:"relationship_score" doc:"0-10"`
	PeaceScore        int `json:"peace_score" doc:"0-10"`
	LoveScore         int `json:"love_score" doc:"0-10"`
	JoyScore          int `json:"joy_score" doc:"0-10"`

	Notes      string `json:"notes,omitempty"`
	Focus      string `json:"focus,omitempty"`
	Gratitude  string `json:"gratitude,omitempty"`
	Intentions string `json:"intentions,omitempty"`

	HoursSleep   float64 `json:"hours_sleep,omitempty"`
	SleepQuality string  `json:"sleep_quality,omitempty"`

	Meditation        bool `json:"meditation,omitempty"`
	MeditationMinutes int  `json:"meditation_minutes,omitempty"`
	Breathwork        bool `json:"breathwork,omitempty"`
	ColdShower        bool `json:"cold_shower,omitempty"`
	Sunshine30Min     bool `json:"sunshine_30min,omitempty"`

	Water2L    bool `json:"water_2l,omitempty"`
	Vegetables bool `json:"vegetables,omitempty"`
	Fruits     bool `json:"fruits,omitempty"`
	NoBread    bool `json:"no_bread,omitempty"`
	NoPasta    bool `json:"no_pasta,omitempty"`

	Workout  bool `json:"workout,omitempty"`
	QuickRun bool `json:"quick_run,omitempty"`
	Walk     bool `json:"walk,omitempty"`

	DeepWorkHours float64 `json:"deep_work_hours,omitempty"`
	ClientCalls   int     `json:"client_calls,omitempty"`

	Prieres       int  `json:"prieres,omitempty"`
	Visualisation bool `json:"visualisation,omitempty"`

	NoPorn   bool `json:"no_porn,omitempty"`
	NoAlcool bool `json:"no_alcool,omitempty"`
	NoSmoke  bool `json:"no_smoke,omitempty"`
}

func (r WriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OverallScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.EnergyScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.WorkScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.NutritionScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.SleepScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.MindsetScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.RelationshipScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.PeaceScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.LoveScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.JoyScore, validation.Min(0), validation.Max(10)),
		validation.Field(&r.MeditationMinutes, validation.Min(0)),
		validation.Field(&r.HoursSleep, validation.Min(0.0), validation.Max(24.0)),
	)
}
