package forecast

import (
	"sort"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

// BuildDisplaySeries merges actual observations and predictions into the
// chart-ready series, sorted by slot. Each point carries exactly one of
// the two measures; when both exist for a slot the actual wins.
func BuildDisplaySeries(actual []models.Observation, predictions []models.Prediction) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(actual)+len(predictions))
	seen := make(map[string]bool, len(actual))

	for _, obs := range actual {
		visitors := obs.Visitors
		points = append(points, models.SeriesPoint{Time: obs.Time, Visitors: &visitors})
		seen[obs.Time] = true
	}
	for _, p := range predictions {
		if seen[p.Time] {
			continue
		}
		predicted := p.Predicted
		points = append(points, models.SeriesPoint{Time: p.Time, Predicted: &predicted})
	}

	sort.Slice(points, func(i, j int) bool {
		return models.CompareSlots(points[i].Time, points[j].Time) < 0
	})
	return points
}
