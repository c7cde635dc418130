package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// HackathonController handles HTTP requests for hackathons and enrollment
type HackathonController struct {
	HackathonService *services.HackathonService
}

// ListHackathonsHandler lists hackathons, optionally filtered by status
// query parameters (?status=Upcoming&status=Ongoing)
func (c *HackathonController) ListHackathonsHandler(w http.ResponseWriter, r *http.Request) {
	statuses := r.URL.Query()["status"]

	hackathons, err := c.HackathonService.ListHackathons(r.Context(), statuses)
	if err != nil {
		http.Error(w, "Failed to fetch hackathons", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(hackathons)
}

// EnrollHandler enrolls a user into a hackathon
func (c *HackathonController) EnrollHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      string `json:"userId"`
		HackathonID string `json:"hackathonId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.HackathonID == "" {
		http.Error(w, "userId and hackathonId are required", http.StatusBadRequest)
		return
	}

	enrollment, err := c.HackathonService.Enroll(r.Context(), request.UserID, request.HackathonID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyEnrolled) {
			http.Error(w, "Already enrolled", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to enroll", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(enrollment)
}

// GetEnrolledHandler lists the hackathons a user has joined
func (c *HackathonController) GetEnrolledHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	hackathons, err := c.HackathonService.ListEnrolledHackathons(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch enrolled hackathons", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(hackathons)
}

// GetRecommendedHandler lists hackathons matching the user's skills
func (c *HackathonController) GetRecommendedHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	recommended, err := c.HackathonService.GetRecommendedHackathons(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch recommendations", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(recommended)
}
