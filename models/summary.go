package models

// PeakEntry names the busiest slot of a day's series.
type PeakEntry struct {
	Time     string `json:"time"`
	Visitors int    `json:"visitors"`
}

// Summary holds the headline statistics shown above the chart.
// CurrentVisitors is only meaningful when the summarized day is today.
type Summary struct {
	TotalVisitors   int       `json:"total_visitors"`
	CurrentVisitors int       `json:"current_visitors"`
	Peak            PeakEntry `json:"peak"`
	AverageVisitors int       `json:"average_visitors"`
}
