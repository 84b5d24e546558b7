package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
)

// stubDashboard records the date it was asked for and returns canned data.
type stubDashboard struct {
	lastDate string
	series   []models.SeriesPoint
	summary  models.Summary
}

func (s *stubDashboard) MergedSeries(date string) []models.SeriesPoint {
	s.lastDate = date
	return s.series
}

func (s *stubDashboard) Summary(date string) models.Summary {
	s.lastDate = date
	return s.summary
}

type stubRefresher struct {
	err    error
	called bool
}

func (s *stubRefresher) RefreshVisitorData() error {
	s.called = true
	return s.err
}

func handlerClock() time.Time {
	return time.Date(2025, 3, 2, 10, 5, 0, 0, time.UTC)
}

func TestGetVisitors_ReturnsSeriesJSON(t *testing.T) {
	visitors := 6
	dashboard := &stubDashboard{series: []models.SeriesPoint{{Time: "10:00", Visitors: &visitors}}}
	handler := NewVisitorHandler(dashboard, &stubRefresher{}, handlerClock)

	req := httptest.NewRequest("GET", "/v1/visitors?date=2025-03-01", nil)
	rr := httptest.NewRecorder()
	handler.GetVisitors(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "2025-03-01", dashboard.lastDate)

	var got []models.SeriesPoint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "10:00", got[0].Time)
}

func TestGetVisitors_EmptySeriesRendersJSONArray(t *testing.T) {
	dashboard := &stubDashboard{series: []models.SeriesPoint{}}
	handler := NewVisitorHandler(dashboard, &stubRefresher{}, handlerClock)

	req := httptest.NewRequest("GET", "/v1/visitors", nil)
	rr := httptest.NewRecorder()
	handler.GetVisitors(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestGetVisitors_DateDefaultsToToday(t *testing.T) {
	dashboard := &stubDashboard{}
	handler := NewVisitorHandler(dashboard, &stubRefresher{}, handlerClock)

	req := httptest.NewRequest("GET", "/v1/visitors", nil)
	rr := httptest.NewRecorder()
	handler.GetVisitors(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2025-03-02", dashboard.lastDate)
}

func TestGetVisitors_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "Not A Date", date: "tomorrow"},
		{name: "Wrong Layout", date: "02-03-2025"},
		{name: "Out Of Range", date: "2025-13-40"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dashboard := &stubDashboard{}
			handler := NewVisitorHandler(dashboard, &stubRefresher{}, handlerClock)

			req := httptest.NewRequest("GET", "/v1/visitors?date="+test.date, nil)
			rr := httptest.NewRecorder()
			handler.GetVisitors(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, dashboard.lastDate)
		})
	}
}

func TestGetVisitorSummary(t *testing.T) {
	dashboard := &stubDashboard{summary: models.Summary{
		TotalVisitors:   20,
		CurrentVisitors: 6,
		Peak:            models.PeakEntry{Time: "11:00", Visitors: 12},
		AverageVisitors: 10,
	}}
	handler := NewVisitorHandler(dashboard, &stubRefresher{}, handlerClock)

	req := httptest.NewRequest("GET", "/v1/visitors/summary?date=2025-03-01", nil)
	rr := httptest.NewRecorder()
	handler.GetVisitorSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, dashboard.summary, got)
}

func TestGetVisitorChart_RendersHTML(t *testing.T) {
	visitors := 6
	dashboard := &stubDashboard{series: []models.SeriesPoint{{Time: "10:00", Visitors: &visitors}}}
	handler := NewVisitorHandler(dashboard, &stubRefresher{}, handlerClock)

	req := httptest.NewRequest("GET", "/v1/visitors/chart?date=2025-03-01", nil)
	rr := httptest.NewRecorder()
	handler.GetVisitorChart(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<html")
}

func TestRefresh(t *testing.T) {
	refresher := &stubRefresher{}
	handler := NewVisitorHandler(&stubDashboard{}, refresher, handlerClock)

	req := httptest.NewRequest("POST", "/v1/refresh", nil)
	rr := httptest.NewRecorder()
	handler.Refresh(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, refresher.called)
	assert.JSONEq(t, `{"status": "refreshed"}`, rr.Body.String())
}

func TestRefresh_SourceUnavailable(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("fetch failed")}
	handler := NewVisitorHandler(&stubDashboard{}, refresher, handlerClock)

	req := httptest.NewRequest("POST", "/v1/refresh", nil)
	rr := httptest.NewRecorder()
	handler.Refresh(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestPing(t *testing.T) {
	handler := NewVisitorHandler(&stubDashboard{}, &stubRefresher{}, handlerClock)

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	handler.Ping(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
