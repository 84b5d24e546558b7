package visitordata

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchVisitorCSV_Fixture(t *testing.T) {
	// Arrange: fixtures resolve relative to the project root
	t.Setenv("PROJECT_ROOT", filepath.Join("..", ".."))
	client := NewVisitorDataClientMock()

	// Act
	text, err := client.FetchVisitorCSV()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.True(t, len(lines) > 1, "fixture should contain data rows")
	assert.Equal(t,
		"timestamp,visitor_count,temperature,weather_category,is_raining,is_daytime,is_holiday,is_vacation_period,special_date_name",
		lines[0], "fixture header must match the interchange contract")
}
