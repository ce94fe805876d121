package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PortalRoutes is the set of handlers the router exposes.
type PortalRoutes interface {
	GetFreeRooms(w http.ResponseWriter, r *http.Request)
	GetFreeRoomsChart(w http.ResponseWriter, r *http.Request)
	GetExams(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	portalHandler PortalRoutes
	router        *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	portalHandler PortalRoutes,
	router *mux.Router) *Router {
	return &Router{
		portalHandler: portalHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	// optional ?now={RFC3339} on the data routes
	r.router.HandleFunc("/v1/rooms/free", r.portalHandler.GetFreeRooms).Methods("GET")
	r.router.HandleFunc("/v1/rooms/free/chart", r.portalHandler.GetFreeRoomsChart).Methods("GET")
	r.router.HandleFunc("/v1/exams", r.portalHandler.GetExams).Methods("GET")

	r.router.HandleFunc("/ping", r.portalHandler.Ping).Methods("GET")
}
