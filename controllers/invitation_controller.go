package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// InvitationController handles HTTP requests for team invitations
type InvitationController struct {
	Manager *services.InvitationEngineManager
}

// GetInvitationsHandler returns the user's invitation snapshot: received,
// sent, and the unread count
func (c *InvitationController) GetInvitationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	engine, err := c.Manager.GetOrCreate(r.Context(), userID)
	if err != nil {
		// Stale-but-present beats empty: serve whatever snapshot the
		// engine holds and let the change feed catch it up.
		log.Printf("Error priming invitation engine for %s: %v", userID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"receivedInvitations": engine.ReceivedInvitations(),
		"sentInvitations":     engine.SentInvitations(),
		"unreadCount":         engine.UnreadCount(),
		"isLoading":           engine.IsLoading(),
	})
}

// SendInvitationHandler creates a new invitation
func (c *InvitationController) SendInvitationHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromUserID  string `json:"fromUserId"`
		ToUserID    string `json:"toUserId"`
		HackathonID string `json:"hackathonId,omitempty"`
		Message     string `json:"message,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.FromUserID == "" || request.ToUserID == "" {
		http.Error(w, "fromUserId and toUserId are required", http.StatusBadRequest)
		return
	}

	engine, err := c.Manager.GetOrCreate(r.Context(), request.FromUserID)
	if err != nil {
		log.Printf("Error priming invitation engine for %s: %v", request.FromUserID, err)
	}

	if err := engine.SendInvitation(r.Context(), request.ToUserID, request.HackathonID, request.Message); err != nil {
		if errors.Is(err, services.ErrAlreadyInvited) {
			http.Error(w, "Already invited", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to send invitation", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Invitation sent successfully"})
}

// RespondToInvitationHandler accepts or declines an invitation
func (c *InvitationController) RespondToInvitationHandler(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["invitationId"]

	var request struct {
		UserID string `json:"userId"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	engine, err := c.Manager.GetOrCreate(r.Context(), request.UserID)
	if err != nil {
		log.Printf("Error priming invitation engine for %s: %v", request.UserID, err)
	}

	if err := engine.RespondToInvitation(r.Context(), invitationID, request.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			http.Error(w, "Status must be accepted or declined", http.StatusBadRequest)
		case errors.Is(err, services.ErrInvitationNotFound):
			http.Error(w, "Invitation not found", http.StatusNotFound)
		case errors.Is(err, services.ErrInvitationNotPending):
			http.Error(w, "Invitation has already been responded to", http.StatusConflict)
		default:
			http.Error(w, "Failed to update invitation", http.StatusInternalServerError)
		}
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Invitation status updated successfully"})
}

// ReleaseHandler tears down the user's invitation subscription, e.g. on
// logout
func (c *InvitationController) ReleaseHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	c.Manager.Release(userID)
	json.NewEncoder(w).Encode(map[string]string{"message": "Subscription released"})
}
