package forecast

import (
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

// Summarize derives the headline statistics for one day's actual
// observations. The clock is an explicit parameter so the calculation is
// pure and testable; isToday gates the "current visitors" figure, which
// has no meaning for past days.
func Summarize(series []models.Observation, now time.Time, isToday bool) models.Summary {
	summary := models.Summary{Peak: models.PeakEntry{Time: "N/A"}}

	nonZero := 0
	for _, obs := range series {
		summary.TotalVisitors += obs.Visitors
		if obs.Visitors > 0 {
			nonZero++
		}
		// first occurrence wins on ties
		if obs.Visitors > summary.Peak.Visitors {
			summary.Peak = models.PeakEntry{Time: obs.Time, Visitors: obs.Visitors}
		}
	}

	if isToday {
		nowSlot := models.SlotString(now.Hour(), now.Minute())
		currentSlot := ""
		for _, obs := range series {
			if models.CompareSlots(obs.Time, nowSlot) > 0 {
				continue
			}
			if currentSlot == "" || models.CompareSlots(obs.Time, currentSlot) >= 0 {
				currentSlot = obs.Time
				summary.CurrentVisitors = obs.Visitors
			}
		}
	}

	// Closed-hours zero readings stay out of the denominator.
	if nonZero > 0 {
		summary.AverageVisitors = roundHalfUp(float64(summary.TotalVisitors) / float64(nonZero))
	}
	return summary
}
