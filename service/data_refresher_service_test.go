package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MetisPrometheus/dashboard-trimmeriet/dao/redis"
	"github.com/MetisPrometheus/dashboard-trimmeriet/db"
	"github.com/MetisPrometheus/dashboard-trimmeriet/forecast"
	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

const stubCSV = "timestamp,visitor_count,temperature,weather_category,is_raining,is_daytime,is_holiday,is_vacation_period,special_date_name\n" +
	"2025-03-01 10:00:00,8,9.0,clear,no,yes,no,no,\n" +
	"2025-03-01 11:00:00,12,9.5,clear,no,yes,no,no,\n" +
	"2025-03-02 10:00:00,6,8.0,cloudy,no,yes,no,no,\n" +
	"2025-03-02 11:00:00,10,8.5,cloudy,no,yes,no,no,\n"

// stubVisitorDataAPI serves canned CSV text or a canned error.
type stubVisitorDataAPI struct {
	text string
	err  error
}

func (s *stubVisitorDataAPI) FetchVisitorCSV() (string, error) {
	return s.text, s.err
}

// fixedClock pins "now" to 2025-03-02 10:05, inside the stub dataset.
func fixedClock() time.Time {
	return time.Date(2025, 3, 2, 10, 5, 0, 0, time.UTC)
}

func newTestDAO() *redis.RedisVisitorDAO {
	return redis.NewRedisVisitorDAO(db.NewMockRedisClient(context.Background()))
}

func TestRefreshVisitorData_PopulatesCache(t *testing.T) {
	dao := newTestDAO()
	refresher := NewDataRefresherService(dao, &stubVisitorDataAPI{text: stubCSV}, forecast.NewEngine(), fixedClock)

	err := refresher.RefreshVisitorData()
	require.NoError(t, err)

	// per-day series cached
	series, err := dao.GetDailySeries("2025-03-01")
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "10:00", series[0].Time)
	assert.Equal(t, 8, series[0].Visitors)

	// historical index rebuilt over the whole dataset
	index, err := dao.GetHistoricalIndex()
	require.NoError(t, err)
	require.NotNil(t, index)
	avg, ok := index.AverageAt("11:00")
	require.True(t, ok)
	assert.Equal(t, 11, avg) // mean(12, 10)

	// today's forecast recomputed and cached
	predictions, err := dao.GetForecast("2025-03-02")
	require.NoError(t, err)
	require.NotEmpty(t, predictions)
	assert.Equal(t, "10:15", predictions[0].Time)
}

func TestRefreshVisitorData_SourceUnavailable(t *testing.T) {
	dao := newTestDAO()
	sourceErr := errors.New("fetch failed")
	refresher := NewDataRefresherService(dao, &stubVisitorDataAPI{err: sourceErr}, forecast.NewEngine(), fixedClock)

	err := refresher.RefreshVisitorData()
	require.Error(t, err)

	// nothing cached, readers will degrade through the fallback tiers
	series, err := dao.GetDailySeries("2025-03-02")
	require.NoError(t, err)
	assert.Nil(t, series)
}

func TestRefreshVisitorData_PastEndOfDayDropsStaleForecast(t *testing.T) {
	dao := newTestDAO()
	_ = dao.SetForecast("2025-03-02", []models.Prediction{{Time: "23:45", Predicted: 3}})

	lateClock := func() time.Time {
		return time.Date(2025, 3, 2, 23, 50, 0, 0, time.UTC)
	}
	refresher := NewDataRefresherService(dao, &stubVisitorDataAPI{text: stubCSV}, forecast.NewEngine(), lateClock)

	require.NoError(t, refresher.RefreshVisitorData())

	predictions, err := dao.GetForecast("2025-03-02")
	require.NoError(t, err)
	assert.Nil(t, predictions)
}
