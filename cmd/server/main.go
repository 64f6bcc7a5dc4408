package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"heallink-triage/internal/prediction"
	"heallink-triage/internal/triage"
)

func main() {
	// 1. Configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mlServiceURL := os.Getenv("ML_SERVICE_URL")
	if mlServiceURL == "" {
		mlServiceURL = "http://127.0.0.1:8001"
	}

	mlTimeout := 5 * time.Second
	if v := os.Getenv("ML_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			mlTimeout = time.Duration(secs) * time.Second
		}
	}

	// 2. Clients
	mlClient := prediction.NewClient(mlServiceURL, mlTimeout)

	// 3. Services
	engine := triage.NewEngine()
	handler := triage.NewHandler(engine, mlClient)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		triage.RegisterRoutes(r, handler)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Triage server starting on port %s (ML service: %s)...\n", port, mlServiceURL)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
