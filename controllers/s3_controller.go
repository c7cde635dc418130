package controllers

import (
	"encoding/json"
	"net/http"

	"hackmate_server/services"
)

// GenerateAvatarUploadURLHandler returns a presigned URL for uploading a
// profile avatar
func GenerateAvatarUploadURLHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	uploadURL, key, err := services.GenerateAvatarUploadURL(request.FileName, request.FileType)
	if err != nil {
		http.Error(w, "Failed to generate upload URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"uploadUrl": uploadURL,
		"key":       key,
	})
}

// GenerateAvatarReadURLHandler returns a presigned URL for reading a
// stored avatar
func GenerateAvatarReadURLHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	readURL, err := services.GenerateAvatarReadURL(key)
	if err != nil {
		http.Error(w, "Failed to generate read URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"readUrl": readURL})
}
