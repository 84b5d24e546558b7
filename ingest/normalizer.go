package ingest

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

const dateLayout = "2006-01-02"

// Normalize converts raw rows into canonical observations. Rows that fail
// to normalize are dropped and logged; a bad row never halts the batch.
func Normalize(rows []Row) []models.Observation {
	observations := make([]models.Observation, 0, len(rows))
	for _, row := range rows {
		obs, err := NormalizeRow(row)
		if err != nil {
			log.Printf("[Normalizer] Dropping row: %v", err)
			continue
		}
		observations = append(observations, obs)
	}
	return observations
}

// NormalizeRow turns one raw row into an Observation. The combined
// timestamp field splits into date and time-of-day, and the yes/no flag
// columns convert with a strict-equality policy: only the exact string
// "yes" reads as true.
func NormalizeRow(row Row) (models.Observation, error) {
	timestamp := stringField(row, "timestamp")
	parts := strings.SplitN(timestamp, " ", 2)
	if len(parts) != 2 {
		return models.Observation{}, fmt.Errorf("bad timestamp %q", timestamp)
	}

	day, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return models.Observation{}, fmt.Errorf("bad date in timestamp %q: %w", timestamp, err)
	}

	hour, minute, err := models.ParseSlot(parts[1])
	if err != nil {
		return models.Observation{}, fmt.Errorf("bad time in timestamp %q: %w", timestamp, err)
	}

	visitors, ok := intField(row, "visitor_count")
	if !ok || visitors < 0 {
		return models.Observation{}, fmt.Errorf("bad visitor_count %v at %q", row["visitor_count"], timestamp)
	}

	obs := models.Observation{
		Date:             parts[0],
		Time:             models.SlotString(hour, minute),
		DayOfWeek:        int(day.Weekday()),
		Visitors:         visitors,
		Weather:          stringField(row, "weather_category"),
		IsRaining:        yesField(row, "is_raining"),
		IsDaytime:        yesField(row, "is_daytime"),
		IsHoliday:        yesField(row, "is_holiday"),
		IsVacationPeriod: yesField(row, "is_vacation_period"),
		SpecialDate:      stringField(row, "special_date_name"),
	}
	if temperature, ok := floatField(row, "temperature"); ok {
		obs.Temperature = &temperature
	}
	return obs, nil
}

func stringField(row Row, name string) string {
	s, _ := row[name].(string)
	return s
}

// yesField implements the strict flag policy: any value other than the
// exact string "yes" is false, including "Yes", "true" and empty cells.
func yesField(row Row, name string) bool {
	return stringField(row, name) == "yes"
}

func intField(row Row, name string) (int, bool) {
	n, ok := row[name].(int)
	return n, ok
}

func floatField(row Row, name string) (float64, bool) {
	switch v := row[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
