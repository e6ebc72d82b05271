package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/lumimood/lumimood-backend/internal/config"
	"github.com/lumimood/lumimood-backend/internal/database"
	"github.com/lumimood/lumimood-backend/internal/handlers"
	"github.com/lumimood/lumimood-backend/internal/middleware"
	"github.com/lumimood/lumimood-backend/internal/routes"
	"github.com/lumimood/lumimood-backend/internal/services"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Log connection attempt (without showing password)
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		// Mask password in log for security
		maskedURI := cfg.MongoURI
		if strings.Contains(maskedURI, "@") {
			parts := strings.Split(maskedURI, "@")
			if len(parts) > 0 && strings.Contains(parts[0], ":") {
				userPass := strings.Split(parts[0], ":")
				if len(userPass) >= 3 {
					maskedURI = strings.Replace(maskedURI, userPass[2], "***", 1)
				}
			}
		}
		log.Printf("MongoDB URI: %s", maskedURI)
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Redis is optional; without it rate limiting is skipped (fail open)
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️  WARNING: failed to connect to Redis, rate limiting disabled: %v", err)
		} else {
			defer database.DisconnectRedis()
		}
	} else {
		log.Println("REDIS_URI not set, rate limiting disabled")
	}

	// Ensure MongoDB indexes for chat history
	if err := services.EnsureChatIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB chat indexes: %v", err)
	} else {
		log.Println("✅ MongoDB chat indexes ensured")
	}

	// Wire the chatbot against the external generation service
	handlers.InitChatResponder(cfg)
	if cfg.ChatAPIKey == "hf_demo" {
		log.Println("⚠️  WARNING: HUGGINGFACE_API_KEY not set, using demo key (fallback replies likely)")
	}

	// Setup router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit)

	// Health check (no auth, no body)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  GET    /api/journal")
	log.Println("  POST   /api/journal")
	log.Println("  GET    /api/journal/{id}")
	log.Println("  PUT    /api/journal/{id}")
	log.Println("  DELETE /api/journal/{id}")
	log.Println("  POST   /api/journal/chat")
	log.Println("  GET    /api/journal/chat/history")
	log.Println("  GET    /api/journal/analytics/mood-trends")
	log.Println("  POST   /api/assessment")
	log.Println("  GET    /api/assessment")

	log.Printf("🚀 Lumimood backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
