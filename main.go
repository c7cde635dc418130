package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"hackmate_server/routes"
	"hackmate_server/services"
	"hackmate_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Change feed shared by the invitation service and the socket server
	changeFeed := services.NewChangeFeed()

	// Initialize Services
	profileService := &services.ProfileService{Dynamo: dynamoService}
	invitationService := &services.InvitationService{
		Dynamo:                    dynamoService,
		Feed:                      changeFeed,
		AllowReinviteAfterDecline: os.Getenv("ALLOW_REINVITE_AFTER_DECLINE") == "true",
	}
	engineManager := services.NewInvitationEngineManager(invitationService)
	matchService := &services.MatchService{
		Dynamo:      dynamoService,
		Profiles:    profileService,
		Invitations: invitationService,
	}
	hackathonService := &services.HackathonService{
		Dynamo:   dynamoService,
		Profiles: profileService,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to HackMate")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterInvitationRoutes(r, engineManager)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterHackathonRoutes(r, hackathonService)
	routes.RegisterS3Routes(r)

	// Socket.IO server pushing invitation change signals
	socketServer := socket.NewSocketServer(changeFeed)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
