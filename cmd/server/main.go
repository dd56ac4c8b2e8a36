package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fortitwin/internal/config"
	"fortitwin/internal/repository"
	"fortitwin/internal/service"
	"fortitwin/internal/store"
	"fortitwin/internal/transport/rest"
	"fortitwin/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()
	humeConfig := config.DefaultHumeConfig()

	log.Printf("AI Config:")
	log.Printf("  Provider: %s", aiConfig.Provider)
	log.Printf("  Model:    %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured")
	} else {
		log.Println("  API Key:  NOT SET (offline question synthesis)")
	}

	// Remote generation capability; nil means permanent offline mode
	var generator service.Generator
	if aiConfig.IsEnabled() {
		switch aiConfig.Provider {
		case config.ProviderAzure:
			client, err := service.NewAzureOpenAIClient(aiConfig.AzureEndpoint, aiConfig.APIKey, aiConfig.AzureDeployment)
			if err != nil {
				log.Printf("Azure OpenAI init failed, falling back to offline mode: %v", err)
			} else {
				generator = client
			}
		default:
			generator = service.NewGeminiClient(aiConfig)
		}
	}

	// Session store: Redis when configured, otherwise in-memory
	var sessions store.SessionStore
	if cfg.RedisAddr != "" {
		addr := cfg.RedisAddr
		if len(addr) > 8 && addr[:8] == "redis://" {
			addr = addr[8:]
		}
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		sessions = store.NewRedisStore(rdb, 0)
	} else {
		log.Println("REDIS_URI not set, using in-memory sessions")
		sessions = store.NewMemoryStore()
	}

	// Mongo backs retrieval documents and persisted reports; both optional
	var retriever service.Retriever = service.NoopRetriever{}
	var reportRepo repository.ReportRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}
		log.Println("Connected to MongoDB")

		db := mongoClient.Database(cfg.MongoDB)
		docRepo := repository.NewDocumentRepo(db)
		if err := docRepo.EnsureIndexes(ctx); err != nil {
			log.Printf("Warning: document index creation failed: %v", err)
		}
		retriever = service.NewDocumentRetriever(docRepo)
		reportRepo = repository.NewReportRepo(db)
	} else {
		log.Println("MONGO_URI not set, retrieval context and report persistence disabled")
	}

	personas := service.NewPersonaRegistry(service.DefaultPresets(), service.DefaultPersonaName)
	emotion := service.NewHumeEmotionProvider(humeConfig.APIKey)
	interviewSvc := service.NewInterviewService(personas, generator, nil, emotion, service.MockEmotionProvider{}, service.NormalizeEvent)

	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	router := rest.NewRouter(&rest.Container{
		Interview:  interviewSvc,
		Sessions:   sessions,
		Retriever:  retriever,
		ReportRepo: reportRepo,
		WSHub:      wsHub,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/interviews")
		log.Println("  GET  /v1/interviews/{id}")
		log.Println("  POST /v1/interviews/{id}/answers")
		log.Println("  POST /v1/interviews/{id}/events")
		log.Println("  POST /v1/interviews/{id}/emotion")
		log.Println("  POST /v1/interviews/{id}/score")
		log.Println("  WS   /v1/ws/interviews/{id}/monitor")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
