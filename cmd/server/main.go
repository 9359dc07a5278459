package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"wacs.com.ng/support-chatbot/internal/api"
	"wacs.com.ng/support-chatbot/internal/config"
	"wacs.com.ng/support-chatbot/internal/core"
	"wacs.com.ng/support-chatbot/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if config.AppConfig.LogLevel == "DEBUG" {
		log.Println("Service starting in DEBUG mode")
	}

	// Embedding cache is optional; the index is rebuilt in memory either way.
	var embedCache *store.EmbeddingCache
	if config.AppConfig.EmbeddingCache != "" {
		var err error
		embedCache, err = store.NewEmbeddingCache(config.AppConfig.EmbeddingCache)
		if err != nil {
			log.Fatalf("Failed to initialize embedding cache: %v", err)
		}
		defer embedCache.Close()
	}

	// Initialize embedding service and build the FAQ index
	embeddingService := core.NewEmbeddingService()
	defer embeddingService.Close()

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	retriever, err := core.NewRetriever(buildCtx, embeddingService, embedCache)
	buildCancel()
	if err != nil {
		log.Fatalf("Failed to build FAQ index: %v", err)
	}

	// Initialize generation and chat services
	llmService := core.NewLLMService()
	convStore := store.NewConversationStore()
	chatService := core.NewChatService(convStore, retriever, llmService)

	// Schedule the conversation sweep. The store never sweeps on its own,
	// so without this job memory would grow without bound.
	maxAge := time.Duration(config.AppConfig.ConversationTTLH) * time.Hour
	scheduler := cron.New()
	_, err = scheduler.AddFunc(config.AppConfig.SweepSchedule, func() {
		if removed := convStore.Sweep(maxAge); removed > 0 {
			log.Printf("Swept %d conversations inactive for over %s", removed, maxAge)
		}
	})
	if err != nil {
		log.Fatalf("Invalid sweep schedule %q: %v", config.AppConfig.SweepSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(chatService)
	router := api.NewRouter(apiHandler, config.AppConfig.StaticDir)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // LLM calls can take time
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		log.Printf("Starting server on %s. Press Ctrl+C to quit.", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", serverAddr, err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting gracefully")
}
