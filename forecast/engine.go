package forecast

import (
	"sort"
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

// slotMinutes are the quarter-hour marks the collector produces.
var slotMinutes = [...]int{0, 15, 30, 45}

const (
	// minHistoricalResolved is the threshold below which historical
	// averaging is considered too sparse and trend decay takes over.
	minHistoricalResolved = 5

	// Decay thresholds for the closing-hours trend model. Heuristic,
	// carried over unchanged from the data collector's behavior.
	lateDecayHour    = 19
	closingDecayHour = 22

	// Constants of the synthetic last-resort curve: a triangle peaking at
	// midday and ending at 21:00.
	fallbackPeakHour  = 12
	fallbackPeakCount = 15
	fallbackLastHour  = 21
)

// Engine produces same-day forecasts. It is stateless: every prediction is
// a pure function of today's observations, a historical index snapshot and
// an explicit clock value, so concurrent invocations need no locking and a
// cancelled computation is simply discarded.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Predict emits one prediction per unobserved 15-minute slot between now
// and end of day, sorted ascending by slot. Resolution order per slot:
// historical slot average, then trend decay from the latest actual count,
// then the synthetic fallback curve when neither input is usable. Past
// 23:45 no slots remain and the result is empty.
func (e *Engine) Predict(today []models.Observation, index *HistoricalIndex, now time.Time) []models.Prediction {
	if index.Empty() && len(today) == 0 {
		return e.fallbackCurve(now)
	}

	actual := make(map[string]bool, len(today))
	for _, obs := range today {
		actual[obs.Time] = true
	}
	resolved := make(map[string]bool)

	predictions := make([]models.Prediction, 0)
	e.walkRemainingSlots(now, func(slot string, hour int) {
		if actual[slot] || resolved[slot] {
			return
		}
		if avg, ok := index.AverageAt(slot); ok {
			predictions = append(predictions, models.Prediction{Time: slot, Predicted: avg})
			resolved[slot] = true
		}
	})

	if len(predictions) < minHistoricalResolved && len(today) > 0 {
		baseline := latestObservation(today).Visitors
		e.walkRemainingSlots(now, func(slot string, hour int) {
			if actual[slot] || resolved[slot] {
				return
			}
			switch {
			case hour >= closingDecayHour:
				baseline = maxInt(0, baseline-2)
			case hour >= lateDecayHour:
				baseline = maxInt(0, baseline-1)
			}
			predictions = append(predictions, models.Prediction{Time: slot, Predicted: baseline})
			resolved[slot] = true
		})
	}

	sort.Slice(predictions, func(i, j int) bool {
		return models.CompareSlots(predictions[i].Time, predictions[j].Time) < 0
	})
	return predictions
}

// walkRemainingSlots visits every quarter-hour slot from the current slot
// through 23:45 in time order. Slots already elapsed within the current
// hour are excluded; the slot matching the current minute is still due.
func (e *Engine) walkRemainingSlots(now time.Time, visit func(slot string, hour int)) {
	for hour := now.Hour(); hour < 24; hour++ {
		for _, minute := range slotMinutes {
			if hour == now.Hour() && minute < now.Minute() {
				continue
			}
			visit(models.SlotString(hour, minute), hour)
		}
	}
}

// fallbackCurve is the deterministic synthetic series emitted when both
// the historical index and today's observations are unusable. It keeps the
// display non-empty, trading accuracy for availability.
func (e *Engine) fallbackCurve(now time.Time) []models.Prediction {
	predictions := make([]models.Prediction, 0)
	for hour := now.Hour() + 1; hour <= fallbackLastHour; hour++ {
		predictions = append(predictions, models.Prediction{
			Time:      models.SlotString(hour, 0),
			Predicted: maxInt(0, fallbackPeakCount-absInt(hour-fallbackPeakHour)),
		})
	}
	return predictions
}

// latestObservation returns the chronologically most recent observation.
func latestObservation(today []models.Observation) models.Observation {
	latest := today[0]
	for _, obs := range today[1:] {
		if models.CompareSlots(obs.Time, latest.Time) > 0 {
			latest = obs
		}
	}
	return latest
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
