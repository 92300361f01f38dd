package main

import (
	"log"
	"os"

	"clipnotes/internal/ai"
	"clipnotes/internal/api"
	"clipnotes/internal/config"
	"clipnotes/internal/db"
	"clipnotes/internal/extract"
	"clipnotes/internal/pipeline"
	"clipnotes/internal/repository"
	"clipnotes/internal/transcribe"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The extractor shells out to yt-dlp and ffmpeg; refuse to start without them.
	if err := extract.CheckDependencies(); err != nil {
		log.Fatalf("Dependency check failed: %v", err)
	}

	// Initialize database and repository
	log.Printf("Initializing database connection...")
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	repo := repository.NewPostgresRepository()

	// Wire the pipeline. All clients are stateless and shared by every run.
	extractor := extract.New(cfg.AudioDir)
	transcriber := transcribe.NewAssemblyAIClient(cfg.AssemblyAIKey, cfg.AssemblyAIURL)

	var summarizer pipeline.Summarizer
	if cfg.OpenAIKey != "" {
		summarizer = ai.NewSummarizer(cfg.OpenAIKey)
		log.Println("OpenAI summary fallback enabled")
	} else {
		log.Println("OPENAI_API_KEY not set, summary fallback disabled")
	}

	orchestrator := pipeline.NewOrchestrator(extractor, transcriber, summarizer)
	handlers := api.NewHandlers(repo, orchestrator)

	r := gin.Default()
	r.Use(corsMiddleware())
	api.RegisterRoutes(r, handlers)

	log.Printf("clipnotes backend running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
