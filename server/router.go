package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VisitorHandler is the handler surface the router binds routes to.
type VisitorHandler interface {
	GetVisitors(w http.ResponseWriter, r *http.Request)
	GetVisitorSummary(w http.ResponseWriter, r *http.Request)
	GetVisitorChart(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	visitorHandler VisitorHandler
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	visitorHandler VisitorHandler,
	router *mux.Router) *Router {
	return &Router{
		visitorHandler: visitorHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?date={YYYY-MM-DD}, defaulting to today
	r.router.HandleFunc("/v1/visitors", r.visitorHandler.GetVisitors).Methods("GET")
	r.router.HandleFunc("/v1/visitors/summary", r.visitorHandler.GetVisitorSummary).Methods("GET")
	r.router.HandleFunc("/v1/visitors/chart", r.visitorHandler.GetVisitorChart).Methods("GET")

	r.router.HandleFunc("/v1/refresh", r.visitorHandler.Refresh).Methods("POST")

	r.router.HandleFunc("/ping", r.visitorHandler.Ping).Methods("GET")
}
