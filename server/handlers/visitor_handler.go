package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"
	"github.com/MetisPrometheus/dashboard-trimmeriet/util"
)

const (
	DATE_QUERY_ARG = "date"

	dateArgLayout = "2006-01-02"
)

// DashboardService is the slice of the service layer the handler consumes.
type DashboardService interface {
	MergedSeries(date string) []models.SeriesPoint
	Summary(date string) models.Summary
}

// Refresher triggers a manual data reload.
type Refresher interface {
	RefreshVisitorData() error
}

type VisitorHandler struct {
	dashboard DashboardService
	refresher Refresher
	now       func() time.Time
}

func NewVisitorHandler(dashboard DashboardService, refresher Refresher, now func() time.Time) *VisitorHandler {
	if now == nil {
		now = time.Now
	}
	return &VisitorHandler{dashboard: dashboard, refresher: refresher, now: now}
}

// GetVisitors handles GET /v1/visitors?date=YYYY-MM-DD and returns the
// merged actual+predicted series. Date defaults to today.
func (h *VisitorHandler) GetVisitors(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(r.URL.Query(), w)
	if !ok {
		return // error already written
	}
	writeJSON(w, h.dashboard.MergedSeries(date))
}

// GetVisitorSummary handles GET /v1/visitors/summary?date=YYYY-MM-DD.
func (h *VisitorHandler) GetVisitorSummary(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(r.URL.Query(), w)
	if !ok {
		return
	}
	writeJSON(w, h.dashboard.Summary(date))
}

// GetVisitorChart handles GET /v1/visitors/chart?date=YYYY-MM-DD and
// renders the series as an HTML line chart.
func (h *VisitorHandler) GetVisitorChart(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(r.URL.Query(), w)
	if !ok {
		return
	}
	series := h.dashboard.MergedSeries(date)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderVisitorChart(w, date, series); err != nil {
		log.Println("Error rendering visitor chart:", err)
	}
}

// Refresh handles POST /v1/refresh and triggers an immediate data reload.
func (h *VisitorHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.RefreshVisitorData(); err != nil {
		log.Println("Manual refresh failed:", err)
		http.Error(w, "Refresh failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]string{"status": "refreshed"})
}

// Ping handles GET /ping
func (h *VisitorHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *VisitorHandler) parseDate(vals url.Values, w http.ResponseWriter) (string, bool) {
	date := vals.Get(DATE_QUERY_ARG)
	if date == "" {
		return h.now().Format(dateArgLayout), true
	}
	if _, err := time.Parse(dateArgLayout, date); err != nil {
		http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return "", false
	}
	return date, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
