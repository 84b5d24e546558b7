package visitordata

import (
	"github.com/MetisPrometheus/dashboard-trimmeriet/api"
)

// VisitorDataClient embeds the common HTTPClient
type VisitorDataClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	csvEndpoint string
}

// NewVisitorDataClient creates a new instance of VisitorDataClient
func NewVisitorDataClient(httpClient *api.HTTPClient, csvEndpoint string) *VisitorDataClient {
	return &VisitorDataClient{
		HTTPClient:  httpClient,
		csvEndpoint: csvEndpoint,
	}
}

// FetchVisitorCSV downloads the full visitor-count CSV as raw text.
func (c *VisitorDataClient) FetchVisitorCSV() (string, error) {
	return c.FetchText(c.csvEndpoint, nil)
}
