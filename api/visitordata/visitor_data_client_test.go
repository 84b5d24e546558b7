package visitordata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MetisPrometheus/dashboard-trimmeriet/api"
)

const testCSV = "timestamp,visitor_count\n2025-03-01 08:00:00,5\n"

func TestVisitorDataClient_FetchVisitorCSV(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/visitor_counts.csv" {
			t.Errorf("Expected CSV endpoint, got '%s'", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testCSV))
	}))
	defer mockServer.Close()

	client := NewVisitorDataClient(api.NewHTTPClient(mockServer.URL), "/data/visitor_counts.csv")

	text, err := client.FetchVisitorCSV()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != testCSV {
		t.Errorf("Unexpected CSV body: %q", text)
	}
}

func TestVisitorDataClient_FetchFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewVisitorDataClient(api.NewHTTPClient(mockServer.URL), "/data/visitor_counts.csv")

	if _, err := client.FetchVisitorCSV(); err == nil {
		t.Fatalf("Expected an error, got nil")
	}
}

// stubAPI is a canned VisitorDataAPI for wrapper tests.
type stubAPI struct {
	text string
	err  error
}

func (s *stubAPI) FetchVisitorCSV() (string, error) {
	return s.text, s.err
}

func TestRateLimitedVisitorDataAPI_Delegates(t *testing.T) {
	wrapped := NewRateLimitedVisitorDataAPI(context.Background(), &stubAPI{text: testCSV}, 1000, 1)

	text, err := wrapped.FetchVisitorCSV()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != testCSV {
		t.Errorf("Unexpected CSV body: %q", text)
	}
}

func TestRateLimitedVisitorDataAPI_PropagatesErrors(t *testing.T) {
	sourceErr := errors.New("source down")
	wrapped := NewRateLimitedVisitorDataAPI(context.Background(), &stubAPI{err: sourceErr}, 1000, 1)

	if _, err := wrapped.FetchVisitorCSV(); !errors.Is(err, sourceErr) {
		t.Errorf("Expected source error, got %v", err)
	}
}

func TestRateLimitedVisitorDataAPI_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// burst already spent by a zero-burst limiter, so Wait must fail fast
	wrapped := NewRateLimitedVisitorDataAPI(ctx, &stubAPI{text: testCSV}, 0.001, 0)

	if _, err := wrapped.FetchVisitorCSV(); err == nil {
		t.Fatalf("Expected an error, got nil")
	}
}
