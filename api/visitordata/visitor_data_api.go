package visitordata

// VisitorDataAPI defines the interface for fetching the raw visitor-count
// CSV published by the data collector. A fetch failure is an explicit
// error signal; callers degrade through the forecast fallback tiers
// instead of crashing.
type VisitorDataAPI interface {
	FetchVisitorCSV() (string, error)
}
