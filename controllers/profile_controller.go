package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hackmate_server/models"
	"hackmate_server/services"

	"github.com/gorilla/mux"
)

// ProfileController handles HTTP requests for user profiles
type ProfileController struct {
	ProfileService *services.ProfileService
}

// AddProfileHandler creates a profile at account registration
func (c *ProfileController) AddProfileHandler(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if profile.ID == "" || profile.Email == "" {
		http.Error(w, "id and email are required", http.StatusBadRequest)
		return
	}

	created, err := c.ProfileService.AddProfile(r.Context(), profile)
	if err != nil {
		http.Error(w, "Failed to create profile", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetProfileHandler retrieves a profile by ID
func (c *ProfileController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(profile)
}

// UpdateProfileHandler applies owner edits to a profile
func (c *ProfileController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := c.ProfileService.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(updated)
}

// DeleteProfileHandler removes a profile
func (c *ProfileController) DeleteProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.ProfileService.DeleteProfile(r.Context(), userID); err != nil {
		http.Error(w, "Failed to delete profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted successfully"})
}
