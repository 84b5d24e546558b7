package models

// Observation is one visitor-count measurement at a fixed timestamp.
// Observations are immutable once parsed; the normalizer is the only
// producer.
type Observation struct {
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	DayOfWeek        int      `json:"day_of_week"`
	Visitors         int      `json:"visitors"`
	Temperature      *float64 `json:"temperature,omitempty"`
	Weather          string   `json:"weather"`
	IsRaining        bool     `json:"is_raining"`
	IsDaytime        bool     `json:"is_daytime"`
	IsHoliday        bool     `json:"is_holiday"`
	IsVacationPeriod bool     `json:"is_vacation_period"`
	SpecialDate      string   `json:"special_date,omitempty"`
}
