package routes

import (
	"hackmate_server/controllers"
	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterHackathonRoutes registers hackathon routes under `/api/hackathons`
func RegisterHackathonRoutes(router *mux.Router, hackathonService *services.HackathonService) {
	controller := &controllers.HackathonController{HackathonService: hackathonService}

	hackathonRouter := router.PathPrefix("/api/hackathons").Subrouter()
	hackathonRouter.HandleFunc("", controller.ListHackathonsHandler).Methods("GET")
	hackathonRouter.HandleFunc("/enroll", controller.EnrollHandler).Methods("POST")
	hackathonRouter.HandleFunc("/enrolled/{userId}", controller.GetEnrolledHandler).Methods("GET")
	hackathonRouter.HandleFunc("/recommended/{userId}", controller.GetRecommendedHandler).Methods("GET")
}
