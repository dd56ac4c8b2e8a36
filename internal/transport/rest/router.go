package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"fortitwin/internal/repository"
	"fortitwin/internal/service"
	"fortitwin/internal/store"
	"fortitwin/internal/transport/rest/handler"
	"fortitwin/internal/transport/ws"
)

// Container holds all dependencies for the router. WSHub and ReportRepo may
// be nil; the corresponding features are simply disabled.
type Container struct {
	Interview  *service.InterviewService
	Sessions   store.SessionStore
	Retriever  service.Retriever
	ReportRepo repository.ReportRepo
	WSHub      *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	interviewHandler := handler.NewInterviewHandler(c.Interview, c.Sessions, c.Retriever, c.ReportRepo)
	if c.WSHub != nil {
		interviewHandler.SetBroadcaster(c.WSHub)
	}

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/interviews", interviewHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}", interviewHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/answers", interviewHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/events", interviewHandler.Event).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/emotion", interviewHandler.Emotion).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/score", interviewHandler.Score).Methods("POST", "OPTIONS")

	// Monitor feed
	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub)
		v1.HandleFunc("/ws/interviews/{id}/monitor", wsHandler.MonitorWS).Methods("GET")
	}

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
