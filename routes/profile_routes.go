package routes

import (
	"hackmate_server/controllers"
	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes registers profile routes under `/api/profiles`
func RegisterProfileRoutes(router *mux.Router, profileService *services.ProfileService) {
	controller := &controllers.ProfileController{ProfileService: profileService}

	profileRouter := router.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.AddProfileHandler).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetProfileHandler).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdateProfileHandler).Methods("PUT")
	profileRouter.HandleFunc("/{userId}", controller.DeleteProfileHandler).Methods("DELETE")
}
