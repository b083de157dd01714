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

	"golang-stock-sentiment/internal/sentiment/config"
	delivery "golang-stock-sentiment/internal/sentiment/delivery/http"
	_ "golang-stock-sentiment/internal/sentiment/docs"
	"golang-stock-sentiment/internal/sentiment/repository"
	"golang-stock-sentiment/internal/sentiment/service"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sentiment service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Secrets may live in a local .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Sentiment Service", logger.Field("name", cfg.App.Name), logger.Field("version", cfg.App.Version))
	if envErr != nil {
		appLogger.Debug("No .env file loaded", logger.ErrorField(envErr))
	}

	// Initialize AI provider
	var aiRepo repository.AIRepository
	switch cfg.AI.Provider {
	case common.AIProviderOpenAI:
		aiRepo = repository.NewOpenAIRepository(cfg, appLogger)
	case common.AIProviderGemini:
		clientCfg := &genai.ClientConfig{
			APIKey:     cfg.Gemini.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cfg.Gemini.Timeout},
		}
		if cfg.Gemini.BaseURL != "" {
			clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Gemini.BaseURL}
		}
		genAiClient, err := genai.NewClient(ctx, clientCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		repo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
		}
		aiRepo = repo
	default:
		appLogger.Fatal("Invalid AI provider specified in config", logger.Field("provider", cfg.AI.Provider))
	}

	// Initialize repositories and services
	searchRepo := repository.NewSerpAPIRepository(cfg, appLogger)
	fetcher := service.NewWebResultFetcher(searchRepo, appLogger)
	requester := service.NewAnalysisRequester(aiRepo, appLogger)
	sentimentSvc := service.NewSentimentService(fetcher, requester, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	renderer, err := delivery.NewTemplateRenderer()
	if err != nil {
		appLogger.Fatal("Failed to load templates", logger.ErrorField(err))
	}
	e.Renderer = renderer
	delivery.RegisterMiddleware(e, appLogger)

	// Initialize handlers and routes
	sentimentHandler := delivery.NewSentimentHandler(sentimentSvc, appLogger)
	sentimentHandler.RegisterPageRoutes(e)
	apiV1 := e.Group("/api/v1")
	sentimentHandler.RegisterRoutes(apiV1.Group("/sentiment"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Sentiment API
// @version 1.0
// @description Web search digest plus model sentiment brief for a stock ticker.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "sentiment-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-sentiment.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing sentiment-service CLI: %s\n", err)
		os.Exit(1)
	}
}
