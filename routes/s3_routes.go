package routes

import (
	"hackmate_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes registers avatar upload routes under `/api/s3`
func RegisterS3Routes(router *mux.Router) {
	s3Router := router.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/upload-url", controllers.GenerateAvatarUploadURLHandler).Methods("POST")
	s3Router.HandleFunc("/read-url", controllers.GenerateAvatarReadURLHandler).Methods("GET")
}
