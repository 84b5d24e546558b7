package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/MetisPrometheus/dashboard-trimmeriet/db"
	"github.com/MetisPrometheus/dashboard-trimmeriet/forecast"
	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

const DAILY_SERIES_KEY_FORMAT = "daily_series_v1:%s"

// HISTORICAL_INDEX_KEY holds the latest historical index snapshot; each
// refresh overwrites it wholesale.
const HISTORICAL_INDEX_KEY = "historical_index_v1"

// FORECAST_KEY_FORMAT is used to cache the prediction set per date.
const FORECAST_KEY_FORMAT = "forecast_v1:%s"

// RedisVisitorDAO handles visitor-series caching using Redis.
type RedisVisitorDAO struct {
	client db.RedisClient
}

// NewRedisVisitorDAO initializes a RedisVisitorDAO with the Redis client.
func NewRedisVisitorDAO(client db.RedisClient) *RedisVisitorDAO {
	return &RedisVisitorDAO{client: client}
}

// SetDailySeries caches the full observation series for one calendar day.
func (dao *RedisVisitorDAO) SetDailySeries(date string, series []models.Observation) error {
	key := fmt.Sprintf(DAILY_SERIES_KEY_FORMAT, date)
	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal daily series for %s: %w", date, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set daily series in redis: %w", err)
	}
	return nil
}

// GetDailySeries retrieves the cached observation series for a day.
// A cache miss returns (nil, nil).
func (dao *RedisVisitorDAO) GetDailySeries(date string) ([]models.Observation, error) {
	key := fmt.Sprintf(DAILY_SERIES_KEY_FORMAT, date)
	str, err := dao.client.Get(key)
	if err != nil {
		if isCacheMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily series from redis: %w", err)
	}
	var series []models.Observation
	if err := json.Unmarshal([]byte(str), &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily series JSON: %w", err)
	}
	return series, nil
}

// ListCachedSeriesDates returns the dates for all cached daily series.
func (dao *RedisVisitorDAO) ListCachedSeriesDates() ([]string, error) {
	pattern := fmt.Sprintf(DAILY_SERIES_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily series keys: %w", err)
	}

	prefix := fmt.Sprintf(DAILY_SERIES_KEY_FORMAT, "")
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, prefix))
	}
	return dates, nil
}

// SetHistoricalIndex caches the historical index snapshot.
func (dao *RedisVisitorDAO) SetHistoricalIndex(index *forecast.HistoricalIndex) error {
	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal historical index: %w", err)
	}
	if err := dao.client.Set(HISTORICAL_INDEX_KEY, string(data)); err != nil {
		return fmt.Errorf("failed to set historical index in redis: %w", err)
	}
	return nil
}

// GetHistoricalIndex retrieves the cached historical index snapshot.
// A cache miss returns (nil, nil).
func (dao *RedisVisitorDAO) GetHistoricalIndex() (*forecast.HistoricalIndex, error) {
	str, err := dao.client.Get(HISTORICAL_INDEX_KEY)
	if err != nil {
		if isCacheMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get historical index from redis: %w", err)
	}
	var index forecast.HistoricalIndex
	if err := json.Unmarshal([]byte(str), &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal historical index JSON: %w", err)
	}
	return &index, nil
}

// SetForecast caches the prediction set for a date, replacing the prior set.
func (dao *RedisVisitorDAO) SetForecast(date string, predictions []models.Prediction) error {
	key := fmt.Sprintf(FORECAST_KEY_FORMAT, date)
	data, err := json.Marshal(predictions)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for %s: %w", date, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	return nil
}

// GetForecast retrieves the cached prediction set for a date.
// A cache miss returns (nil, nil).
func (dao *RedisVisitorDAO) GetForecast(date string) ([]models.Prediction, error) {
	key := fmt.Sprintf(FORECAST_KEY_FORMAT, date)
	str, err := dao.client.Get(key)
	if err != nil {
		if isCacheMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get forecast from redis: %w", err)
	}
	var predictions []models.Prediction
	if err := json.Unmarshal([]byte(str), &predictions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return predictions, nil
}

func (dao *RedisVisitorDAO) DeleteForecast(date string) error {
	key := fmt.Sprintf(FORECAST_KEY_FORMAT, date)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete forecast key %s: %w", key, err)
	}
	log.Printf("[RedisVisitorDAO] Deleted forecast cache for %s", date)
	return nil
}

// isCacheMiss recognizes the miss signals of both go-redis ("redis: nil")
// and the mock client ("key not found").
func isCacheMiss(err error) bool {
	return strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found")
}
