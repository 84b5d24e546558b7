package services

import (
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/api/visitordata"
	"github.com/MetisPrometheus/dashboard-trimmeriet/ingest"
	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

const dateKeyLayout = "2006-01-02"

// loadObservations fetches the full dataset and runs it through the one
// canonical ingest pipeline. Every code path that needs observations goes
// through here so parsing rules cannot drift between callers.
func loadObservations(api visitordata.VisitorDataAPI) ([]models.Observation, error) {
	csvText, err := api.FetchVisitorCSV()
	if err != nil {
		return nil, err
	}
	rows, err := ingest.ParseCSV(csvText)
	if err != nil {
		return nil, err
	}
	return ingest.Normalize(rows), nil
}

func groupByDate(observations []models.Observation) map[string][]models.Observation {
	byDate := make(map[string][]models.Observation)
	for _, obs := range observations {
		byDate[obs.Date] = append(byDate[obs.Date], obs)
	}
	return byDate
}

func dateKey(now time.Time) string {
	return now.Format(dateKeyLayout)
}
