package services

import (
	"log"
	"sort"
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/api/visitordata"
	"github.com/MetisPrometheus/dashboard-trimmeriet/dao/redis"
	"github.com/MetisPrometheus/dashboard-trimmeriet/forecast"
)

// DataRefresherService periodically reloads the visitor dataset, rebuilds
// the historical index and recomputes today's forecast. Every cycle writes
// whole snapshots; the newest write wins and in-flight readers keep the
// snapshot they started with.
type DataRefresherService struct {
	visitorDao     *redis.RedisVisitorDAO
	visitorDataApi visitordata.VisitorDataAPI
	engine         *forecast.Engine
	now            func() time.Time
}

// NewDataRefresherService constructs a new Refresher with dependencies.
func NewDataRefresherService(
	visitorDao *redis.RedisVisitorDAO,
	visitorDataApi visitordata.VisitorDataAPI,
	engine *forecast.Engine,
	now func() time.Time) *DataRefresherService {

	if now == nil {
		now = time.Now
	}
	return &DataRefresherService{
		visitorDao:     visitorDao,
		visitorDataApi: visitorDataApi,
		engine:         engine,
		now:            now,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (dr *DataRefresherService) StartPeriodicJob(interval time.Duration) {
	go dr.startPeriodicJob(interval)
}

func (dr *DataRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[DataRefresherService] Running periodic data refresher job.")
		if err := dr.RefreshVisitorData(); err != nil {
			log.Printf("[DataRefresherService] RefreshVisitorData returned error: %v", err)
		} else {
			log.Println("[DataRefresherService] RefreshVisitorData completed successfully.")
		}
	}
}

// RefreshVisitorData orchestrates the full cycle: fetch, normalize, cache
// the per-day series, rebuild the historical index, recompute today's
// forecast. Individual cache writes that fail are logged and skipped.
func (dr *DataRefresherService) RefreshVisitorData() error {
	observations, err := loadObservations(dr.visitorDataApi)
	if err != nil {
		log.Printf("[DataRefresherService] Failed to load visitor data: %v", err)
		return err
	}
	log.Printf("[DataRefresherService] Loaded %d observations", len(observations))

	byDate := groupByDate(observations)
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		if err := dr.visitorDao.SetDailySeries(date, byDate[date]); err != nil {
			log.Printf("[DataRefresherService] Failed to cache series for %s: %v", date, err)
		}
	}

	index := forecast.BuildHistoricalIndex(observations)
	if err := dr.visitorDao.SetHistoricalIndex(index); err != nil {
		log.Printf("[DataRefresherService] Failed to cache historical index: %v", err)
	}

	now := dr.now()
	today := dateKey(now)
	predictions := dr.engine.Predict(byDate[today], index, now)
	if len(predictions) == 0 {
		// no slots remain today, drop any stale forecast
		if err := dr.visitorDao.DeleteForecast(today); err != nil {
			log.Printf("[DataRefresherService] Failed to delete stale forecast for %s: %v", today, err)
		}
	} else if err := dr.visitorDao.SetForecast(today, predictions); err != nil {
		log.Printf("[DataRefresherService] Failed to cache forecast for %s: %v", today, err)
	}

	log.Printf("[DataRefresherService] Refreshed %d days, %d predictions for %s",
		len(dates), len(predictions), today)
	return nil
}
