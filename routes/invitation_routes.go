package routes

import (
	"hackmate_server/controllers"
	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterInvitationRoutes registers all invitation routes under `/api/invitations`
func RegisterInvitationRoutes(router *mux.Router, manager *services.InvitationEngineManager) {
	controller := &controllers.InvitationController{Manager: manager}

	invitationRouter := router.PathPrefix("/api/invitations").Subrouter()
	invitationRouter.HandleFunc("", controller.SendInvitationHandler).Methods("POST")                           // Send an invitation
	invitationRouter.HandleFunc("/{userId}", controller.GetInvitationsHandler).Methods("GET")                   // Get invitation snapshot
	invitationRouter.HandleFunc("/{invitationId}/respond", controller.RespondToInvitationHandler).Methods("PUT") // Accept/decline
	invitationRouter.HandleFunc("/{userId}/subscription", controller.ReleaseHandler).Methods("DELETE")          // Tear down subscription
}
