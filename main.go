package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bizscope/backend/analyzer"
	"github.com/bizscope/backend/config"
	"github.com/bizscope/backend/fetch"
	"github.com/bizscope/backend/insights"
	"github.com/bizscope/backend/logging"
	"github.com/bizscope/backend/middleware"
	"github.com/bizscope/backend/stats"
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func main() {
	// Load environment configuration
	loadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	gin.SetMode(cfg.GinMode)

	// Initialize services
	statsStorage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize stats storage: ", err)
	}

	orchestrator := fetch.NewOrchestrator(
		fetch.NewPageSpeedClient(cfg.PageSpeedURL, cfg.PageSpeedAPIKey, cfg.FetchTimeout),
		fetch.NewPageClient(cfg.FetchTimeout),
		cfg.FetchTimeout,
	)
	producer := insights.NewProducer(cfg.OpenAIAPIKey, cfg.FetchTimeout)
	siteAnalyzer := analyzer.New(orchestrator, producer, statsStorage)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Initialize usage statistics
	usage := logging.Initialize()

	// Initialize Gin router
	r := gin.Default()

	// Add middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Usage tracking middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()

		usage.TrackVisitor(c.ClientIP())

		c.Next()

		// Only track analysis requests
		if c.Request.URL.Path == "/api/analyze" && c.Request.Method == "POST" {
			latency := float64(time.Since(start).Milliseconds())
			usage.TrackAnalysis(c.GetString("analyzed_url"), c.GetString("analyzed_industry"), latency, c.Writer.Status() >= 400)
		}

		// Periodically save statistics
		if usage.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go usage.Save()
		}
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Website analysis endpoint
		api.POST("/analyze", analyzeHandler(siteAnalyzer))

		// Statistics endpoint
		api.GET("/statistics", func(c *gin.Context) {
			result := usage.GetStatistics()
			result["cache"] = siteAnalyzer.GetCacheStats()
			c.JSON(http.StatusOK, result)
		})
	}

	log.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func analyzeHandler(siteAnalyzer *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Analyze request received from: %s\n", c.ClientIP())

		var request analyzer.Request
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "url, companyName, industry, and city are all required",
			})
			return
		}

		c.Set("analyzed_url", request.URL)
		c.Set("analyzed_industry", request.Industry)

		response, err := siteAnalyzer.Analyze(c.Request.Context(), request)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to analyze website: " + err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, response)
	}
}
