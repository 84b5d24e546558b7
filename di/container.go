package di

import (
	"context"
	"fmt"
	"log"

	"github.com/MetisPrometheus/dashboard-trimmeriet/api"
	"github.com/MetisPrometheus/dashboard-trimmeriet/api/visitordata"
	"github.com/MetisPrometheus/dashboard-trimmeriet/config"
	"github.com/MetisPrometheus/dashboard-trimmeriet/dao/redis"
	"github.com/MetisPrometheus/dashboard-trimmeriet/db"
	"github.com/MetisPrometheus/dashboard-trimmeriet/forecast"
	"github.com/MetisPrometheus/dashboard-trimmeriet/server"
	"github.com/MetisPrometheus/dashboard-trimmeriet/server/handlers"
	services "github.com/MetisPrometheus/dashboard-trimmeriet/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient          db.RedisClient
	RedisVisitorDao      *redis.RedisVisitorDAO
	VisitorDataAPI       visitordata.VisitorDataAPI
	ForecastEngine       *forecast.Engine
	DashboardService     *services.DashboardService
	DataRefresherService *services.DataRefresherService
	VisitorHandler       *handlers.VisitorHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	VisitorHttpServer    *server.VisitorHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewDataRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis visitor DAO
	redisVisitorDao := redis.NewRedisVisitorDAO(redisClient)

	// Initialize the visitor data source - fixture-backed mock outside prod
	var visitorDataApi visitordata.VisitorDataAPI
	if env != "prod" {
		visitorDataApi = visitordata.NewVisitorDataClientMock()
		log.Printf("Using mock visitor data api")
	} else {
		log.Printf("Using prod visitor data api")
		httpClient := api.NewHTTPClient(config.VISITOR_DATA_ENDPOINT_BASE)

		visitorDataApi = visitordata.NewRateLimitedVisitorDataAPI(
			ctx,
			visitordata.NewVisitorDataClient(httpClient, config.VISITOR_DATA_CSV_ENDPOINT),
			config.VISITOR_DATA_FETCH_RPS,
			config.VISITOR_DATA_FETCH_BURST,
		)
	}

	// Initialize the forecast engine
	forecastEngine := forecast.NewEngine()

	// Initialize service layer
	dashboardService := services.NewDashboardService(redisVisitorDao, visitorDataApi, forecastEngine, nil)
	dataRefresherService := services.NewDataRefresherService(redisVisitorDao, visitorDataApi, forecastEngine, nil)

	// Initialize visitor handler
	visitorHandler := handlers.NewVisitorHandler(dashboardService, dataRefresherService, nil)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(visitorHandler, muxRouter)

	// Initialize the http server
	visitorHttpServer := server.NewVisitorHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:          redisClient,
		RedisVisitorDao:      redisVisitorDao,
		VisitorDataAPI:       visitorDataApi,
		ForecastEngine:       forecastEngine,
		DashboardService:     dashboardService,
		DataRefresherService: dataRefresherService,
		VisitorHandler:       visitorHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		VisitorHttpServer:    visitorHttpServer,
	}
}
