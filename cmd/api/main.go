package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stock-insight/internal/api/handlers"
	"stock-insight/internal/api/middleware"
	"stock-insight/internal/config"
	"stock-insight/internal/ratelimit"
	"stock-insight/internal/session"
)

func main() {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	var logger *zap.Logger
	var err error
	if os.Getenv("API_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			logger.Fatal("failed to load config", zap.String("path", path), zap.Error(err))
		}
	}
	if raw := os.Getenv("API_PORT"); raw != "" {
		if port, ok := parsePort(raw); ok {
			cfg.Server.Port = port
		} else {
			logger.Warn("ignoring invalid API_PORT", zap.String("value", raw))
		}
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	// Sessions are transient; sweep expired ones in the background.
	store := session.NewStore(time.Duration(cfg.Server.SessionTTLMinutes) * time.Minute)
	go func() {
		for range time.Tick(5 * time.Minute) {
			if n := store.Sweep(); n > 0 {
				logger.Info("swept expired sessions", zap.Int("removed", n))
			}
		}
	}()

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(cfg)
	optionsHandler := handlers.NewOptionsHandler(cfg, store)
	simulationHandler := handlers.NewSimulationHandler(cfg, store)
	portfolioHandler := handlers.NewPortfolioHandler()
	backtestHandler := handlers.NewBacktestHandler(cfg, store)
	sessionHandler := handlers.NewSessionHandler(cfg, store)

	simulateLimiter := ratelimit.NewLimiter("simulate", cfg.Server.SimulatePerMinute)
	uploadLimiter := ratelimit.NewLimiter("upload", cfg.Server.UploadPerMinute)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/symbols", analysisHandler.ListSymbols)
		api.GET("/analyze/:symbol", analysisHandler.Analyze)
		api.GET("/rank", analysisHandler.Rank)

		api.POST("/options/price", optionsHandler.PriceOption)
		api.POST("/simulate", middleware.RateLimit(simulateLimiter), simulationHandler.Simulate)

		api.GET("/portfolio/sharpe", portfolioHandler.Sharpe)
		api.POST("/portfolio/views", portfolioHandler.Views)

		api.POST("/backtest", backtestHandler.RunBacktest)

		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.POST("/sessions/:id/symbol", sessionHandler.ChangeSymbol)
		api.POST("/upload", middleware.RateLimit(uploadLimiter), sessionHandler.Upload)
		api.GET("/report/:id", sessionHandler.Report)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		logger.Info("serving static files", zap.String("dir", staticDir))
	} else {
		logger.Info("static directory not found, skipping static file serving", zap.String("dir", staticDir))
	}

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// parsePort validates an env-provided TCP port.
func parsePort(raw string) (int, bool) {
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		return 0, false
	}
	return port, true
}
