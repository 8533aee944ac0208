package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oadeniran/Nexus/internal/config"
	"github.com/oadeniran/Nexus/internal/llm"
	"github.com/oadeniran/Nexus/internal/logging"
	"github.com/oadeniran/Nexus/internal/search"
	serverHTTP "github.com/oadeniran/Nexus/internal/server/http"
	"github.com/oadeniran/Nexus/internal/session"
)

func main() {
	logger := logging.NewComponentLogger("Main")
	logger.Info("Starting Nexus server...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Info("=== Server Configuration ===")
	logger.Info("Environment: %s", cfg.Environment)
	logger.Info("Chat Model: %s", cfg.ChatModel)
	logger.Info("Embedding Model: %s", cfg.EmbeddingModel)
	logger.Info("Database: %s", cfg.DatabaseName)
	logger.Info("Port: %s", cfg.Port)
	logger.Info("===========================")

	client, err := llm.NewClient(llm.ClientConfig{
		APIKey:         cfg.LLMAPIKey,
		BaseURL:        cfg.LLMBaseURL,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
	})
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := session.NewMongoStore(connectCtx, cfg.MongoURI, cfg.DatabaseName)
	cancelConnect()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	service := session.NewService(client, store, search.NewCosineRanker())
	router := serverHTTP.NewRouter(service, cfg.IsProduction())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
