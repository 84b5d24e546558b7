package forecast

import (
	"encoding/json"
	"math"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

// HistoricalIndex maps a time-of-day slot to every visitor count observed
// at that slot across the historical dataset. An index is immutable once
// built; each refresh builds a fresh one wholesale and swaps it in, so
// in-flight forecast computations keep reading a consistent snapshot.
type HistoricalIndex struct {
	counts map[string][]int
}

// BuildHistoricalIndex indexes a full historical observation sequence by
// time-of-day slot.
func BuildHistoricalIndex(history []models.Observation) *HistoricalIndex {
	index := &HistoricalIndex{counts: make(map[string][]int)}
	for _, obs := range history {
		index.counts[obs.Time] = append(index.counts[obs.Time], obs.Visitors)
	}
	return index
}

// AverageAt returns the arithmetic mean of historical counts at the slot,
// rounded half-up since visitor counts are discrete. The second return is
// false when the slot was never observed; an empty slot is an expected
// condition, not an error.
func (idx *HistoricalIndex) AverageAt(slot string) (int, bool) {
	if idx == nil {
		return 0, false
	}
	counts := idx.counts[slot]
	if len(counts) == 0 {
		return 0, false
	}
	sum := 0
	for _, count := range counts {
		sum += count
	}
	return roundHalfUp(float64(sum) / float64(len(counts))), true
}

// Empty reports whether the index holds no historical data at all.
func (idx *HistoricalIndex) Empty() bool {
	return idx == nil || len(idx.counts) == 0
}

// MarshalJSON serializes the slot index so snapshots can be cached.
func (idx *HistoricalIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(idx.counts)
}

// UnmarshalJSON restores a cached snapshot.
func (idx *HistoricalIndex) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &idx.counts)
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
