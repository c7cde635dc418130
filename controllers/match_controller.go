package controllers

import (
	"encoding/json"
	"net/http"

	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for teammate matching
type MatchController struct {
	MatchService *services.MatchService
}

// GetTeamMatchesHandler returns the ranked teammate list for a user
func (c *MatchController) GetTeamMatchesHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := c.MatchService.GetTeamMatches(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to compute matches", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
