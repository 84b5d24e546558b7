package models

// SeriesPoint is one entry of the merged actual+predicted display series.
// Exactly one of Visitors or Predicted is populated; the other renders as
// a null gap in the chart.
type SeriesPoint struct {
	Time      string `json:"time"`
	Visitors  *int   `json:"visitors"`
	Predicted *int   `json:"predicted,omitempty"`
}
