package main

import (
	"log"
	"os"
	"time"

	"github.com/MetisPrometheus/dashboard-trimmeriet/config"
	"github.com/MetisPrometheus/dashboard-trimmeriet/di"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	log.Println("Running initial data refresh")
	if err := container.DataRefresherService.RefreshVisitorData(); err != nil {
		log.Printf("Initial refresh failed, serving with fallbacks: %v", err)
	}

	log.Println("Starting periodic refresh job")
	container.DataRefresherService.StartPeriodicJob(config.DATA_REFRESHER_SERVICE_SCHEDULE_MINUTES * time.Minute)

	log.Println("Starting server")
	container.VisitorHttpServer.Start()
}
