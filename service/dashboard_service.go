package services

import (
	"log"
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/api/visitordata"
	"github.com/MetisPrometheus/dashboard-trimmeriet/dao/redis"
	"github.com/MetisPrometheus/dashboard-trimmeriet/forecast"
	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

// DashboardService serves the per-day series, the merged display series and
// the summary statistics. Read paths prefer the cache and fall back to a
// direct fetch; they never surface a hard failure, degrading to an empty or
// synthetic series instead so the caller always has something to render.
type DashboardService struct {
	visitorDao     *redis.RedisVisitorDAO
	visitorDataApi visitordata.VisitorDataAPI
	engine         *forecast.Engine
	now            func() time.Time
}

// NewDashboardService constructs a DashboardService. A nil clock defaults
// to time.Now; tests inject a fixed clock.
func NewDashboardService(
	visitorDao *redis.RedisVisitorDAO,
	visitorDataApi visitordata.VisitorDataAPI,
	engine *forecast.Engine,
	now func() time.Time) *DashboardService {

	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		visitorDao:     visitorDao,
		visitorDataApi: visitorDataApi,
		engine:         engine,
		now:            now,
	}
}

// DaySeries returns the actual observations for one calendar day, from the
// cache when possible, otherwise by fetching the dataset directly. Failures
// degrade to an empty series.
func (s *DashboardService) DaySeries(date string) []models.Observation {
	cached, err := s.visitorDao.GetDailySeries(date)
	if err != nil {
		log.Printf("[DashboardService] Cache read failed for %s: %v", date, err)
	}
	if cached != nil {
		return cached
	}

	observations, err := loadObservations(s.visitorDataApi)
	if err != nil {
		log.Printf("[DashboardService] Visitor data source unavailable: %v", err)
		return []models.Observation{}
	}
	series := groupByDate(observations)[date]
	if series == nil {
		series = []models.Observation{}
	}
	return series
}

// MergedSeries returns the chart-ready actual+predicted series for a day.
// Predictions attach only when the requested day is today.
func (s *DashboardService) MergedSeries(date string) []models.SeriesPoint {
	actual := s.DaySeries(date)
	now := s.now()

	var predictions []models.Prediction
	if date == dateKey(now) {
		predictions = s.forecastToday(date, actual, now)
	}
	return forecast.BuildDisplaySeries(actual, predictions)
}

// Summary computes the headline statistics for a day's series.
func (s *DashboardService) Summary(date string) models.Summary {
	now := s.now()
	return forecast.Summarize(s.DaySeries(date), now, date == dateKey(now))
}

// forecastToday prefers the forecast cached by the refresher and recomputes
// from the index snapshot when no cached set exists. A missing or failed
// index leaves the engine to its fallback tiers.
func (s *DashboardService) forecastToday(date string, actual []models.Observation, now time.Time) []models.Prediction {
	cached, err := s.visitorDao.GetForecast(date)
	if err != nil {
		log.Printf("[DashboardService] Forecast cache read failed for %s: %v", date, err)
	}
	if cached != nil {
		return cached
	}

	index, err := s.visitorDao.GetHistoricalIndex()
	if err != nil {
		log.Printf("[DashboardService] Historical index unavailable, relying on fallback tiers: %v", err)
		index = nil
	}
	return s.engine.Predict(actual, index, now)
}
