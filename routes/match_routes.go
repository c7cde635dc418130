package routes

import (
	"hackmate_server/controllers"
	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes registers teammate-matching routes under `/api/matches`
func RegisterMatchRoutes(router *mux.Router, matchService *services.MatchService) {
	controller := &controllers.MatchController{MatchService: matchService}

	matchRouter := router.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("/{userId}", controller.GetTeamMatchesHandler).Methods("GET")
}
