package models

// Prediction is a forecast value for one time slot. Predictions never
// carry actual-measurement fields; the display series keeps the two
// disjoint.
type Prediction struct {
	Time      string `json:"time"`
	Predicted int    `json:"predicted"`
}
