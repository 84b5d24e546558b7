package visitordata

import (
	"fmt"

	"github.com/MetisPrometheus/dashboard-trimmeriet/config"
	"github.com/MetisPrometheus/dashboard-trimmeriet/util"
)

// VisitorDataClientMock embeds mocked logic for the visitor data client.
// It serves the bundled sample CSV so non-prod environments work offline
// with a deterministic dataset.
type VisitorDataClientMock struct {
}

// NewVisitorDataClientMock creates a new instance of VisitorDataClientMock
func NewVisitorDataClientMock() *VisitorDataClientMock {
	return &VisitorDataClientMock{}
}

// FetchVisitorCSV reads the sample CSV fixture from disk.
func (c *VisitorDataClientMock) FetchVisitorCSV() (string, error) {
	text, err := util.ReadTextFile(config.GetResourcePath(config.VISITOR_COUNTS_SAMPLE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read sample visitor counts CSV")
		return "", err
	}
	return text, nil
}
