package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Data refresher config
const DATA_REFRESHER_SERVICE_SCHEDULE_MINUTES = 5

// Visitor data source (raw CSV published by the collector)
const VISITOR_DATA_ENDPOINT_BASE = "https://raw.githubusercontent.com"
const VISITOR_DATA_CSV_ENDPOINT = "/MetisPrometheus/datacollector-trimmeriet/main/data/visitor_counts.csv"

// Fetch rate limit: at most one download per 30s with a single-burst budget,
// so the periodic job and a manual refresh cannot hammer the source.
const VISITOR_DATA_FETCH_RPS = 1.0 / 30.0
const VISITOR_DATA_FETCH_BURST = 1

// HTTP server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VISITOR_COUNTS_SAMPLE_RESOURCE = "visitor_counts_sample.csv"

// RedisAddress returns the Redis address, honoring an env override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
