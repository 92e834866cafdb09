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

	"github.com/labstack/echo/v4"

	"chainscale/config"
	"chainscale/handlers"
	"chainscale/middleware"
	"chainscale/services"
)

func main() {
	// 1. Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("=== Configuration ===")
	log.Printf("Server: %s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Redis: %s (enabled: %v)", cfg.Redis.Address, cfg.Redis.Enabled)
	log.Printf("Monitor interval: %s", cfg.MonitorIntervalDuration())

	// 2. Core Services - Initialize
	metricsService := services.NewMetricsService()
	if err := metricsService.Validate(); err != nil {
		// A malformed dataset is a build problem, never a request problem.
		log.Fatalf("Reference metrics dataset invalid: %v", err)
	}

	calculatorService := services.NewCalculatorService(cfg.Calculator)
	comparisonService := services.NewComparisonService(cfg.Calculator, calculatorService)
	cache := services.NewCacheService(cfg, metricsService)
	monitorService := services.NewMonitorService(cfg, cache)

	// 3. Start Background Services
	log.Println("=== Starting Services ===")

	cache.StartCacheWarmer()
	log.Println("✓ Cache Service started")
	log.Printf("   Mode: %s", cache.GetCacheMode())

	monitorService.Start()
	log.Println("✓ Performance Monitor started")

	// 4. Web Server Setup
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.LoggerMiddleware())
	e.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Recovered from panic: %v", r)
					c.Error(fmt.Errorf("internal server error"))
				}
			}()
			return next(c)
		}
	})

	// 5. Handlers
	h := handlers.NewHandler(cache, monitorService)
	metricsHandlers := handlers.NewMetricsHandlers(metricsService, cache)
	calculatorHandlers := handlers.NewCalculatorHandlers(calculatorService, comparisonService)
	monitorHandlers := handlers.NewMonitorHandlers(monitorService)
	cacheHandlers := handlers.NewCacheHandlers(cache)

	// 6. Routes
	e.GET("/health", h.GetHealth)
	e.GET("/cache/status", cacheHandlers.GetCacheStatus)
	e.POST("/cache/clear", cacheHandlers.ClearCache)

	api := e.Group("/api")

	api.GET("/status", h.GetStatus)

	metrics := api.Group("/metrics")
	metrics.GET("/all", metricsHandlers.GetAllMetrics)
	metrics.GET("/base", metricsHandlers.GetBaseMetrics)
	metrics.GET("/layer2", metricsHandlers.GetLayer2Metrics)
	metrics.GET("/sharding", metricsHandlers.GetShardingMetrics)
	metrics.GET("/trilemma", metricsHandlers.GetTrilemma)
	metrics.GET("/comparison", metricsHandlers.GetComparisonSummary)
	metrics.GET("/security", metricsHandlers.GetSecurityVectors)

	calculate := api.Group("/calculate")
	calculate.POST("/layer2", calculatorHandlers.CalculateLayer2)
	calculate.POST("/sharding", calculatorHandlers.CalculateSharding)
	calculate.POST("/hybrid", calculatorHandlers.CalculateHybrid)
	calculate.POST("/compare", calculatorHandlers.CompareAll)
	calculate.POST("/trilemma", calculatorHandlers.CalculateTrilemma)

	monitor := api.Group("/monitor")
	monitor.GET("/current", monitorHandlers.GetCurrent)
	monitor.GET("/history", monitorHandlers.GetHistory)

	// 7. Start HTTP Server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		log.Printf("🚀 Server running on http://%s", serverAddr)
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("shutting down the server: %v", err)
		}
	}()

	// 8. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⏳ Graceful shutdown initiated...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Stopping services...")
	monitorService.Stop()
	cache.Stop()
	log.Println("✓ All services stopped")

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	log.Println("✓ Server exited cleanly")
}
