package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dchessher/stock-simulator/internal/api"
	"github.com/dchessher/stock-simulator/internal/chart"
	"github.com/dchessher/stock-simulator/internal/config"
	"github.com/dchessher/stock-simulator/internal/data"
	"github.com/dchessher/stock-simulator/internal/models"
	"github.com/dchessher/stock-simulator/internal/position"
	"github.com/dchessher/stock-simulator/internal/render"
	"github.com/dchessher/stock-simulator/internal/series"
	"github.com/dchessher/stock-simulator/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting chart service",
		logger.Int("port", cfg.Server.Port),
		logger.Int("health_port", cfg.Server.HealthCheckPort),
		logger.String("ticker", cfg.Data.Ticker),
	)

	// Load the bar series: from file when configured, otherwise the
	// deterministic mock history
	var s *models.Series
	if cfg.Data.File != "" {
		s, err = data.LoadFile(cfg.Data.File, cfg.Data.Ticker)
		if err != nil {
			logger.Fatal("Failed to load series file",
				logger.ErrorField(err),
				logger.String("file", cfg.Data.File),
			)
		}
		logger.Info("Loaded series from file",
			logger.String("file", cfg.Data.File),
			logger.Int("bars", len(s.Bars)),
		)
	} else {
		s = data.MockSeries(cfg.Data.Ticker, cfg.Data.MockDays, time.Now())
		logger.Info("Using generated mock series",
			logger.Int("bars", len(s.Bars)),
		)
	}
	logger.SeriesBarsLoaded.Set(float64(len(s.Bars)))

	// Build the widget
	widget := render.NewWidget(render.Options{
		Table: series.DefaultRangeTable(),
		Canvas: chart.Canvas{
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
			Inset:  cfg.Chart.Inset,
		},
		Holding: position.Holding{
			Shares:    cfg.Position.Shares,
			CostBasis: cfg.Position.CostBasis,
		},
		TooltipWidth:  cfg.Chart.TooltipWidth,
		TooltipHeight: cfg.Chart.TooltipHeight,
		InitialRange:  series.RangeKey(cfg.Chart.DefaultRange),
	})
	widget.SetSeries(s)

	// Set up router
	chartHandler := api.NewChartHandler(widget)
	router := mux.NewRouter()

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/chart", chartHandler.GetChart).Methods("GET")
	v1.HandleFunc("/chart/{range}", chartHandler.SelectRange).Methods("GET")
	v1.HandleFunc("/chart/{range}/hover", chartHandler.Hover).Methods("GET")
	v1.HandleFunc("/ranges", chartHandler.ListRanges).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Apply middleware
	middlewares := api.ChainMiddleware(
		api.CORSMiddleware(),
		api.LoggingMiddleware(),
		api.RecoveryMiddleware(),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      middlewares(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting HTTP server",
			logger.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server",
				logger.ErrorField(err),
			)
		}
	}()

	// Health check server on its own port
	healthRouter := mux.NewRouter()
	healthRouter.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	healthRouter.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if widget.Snapshot().Projection.HasData {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
	})

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HealthCheckPort),
		Handler: healthRouter,
	}

	go func() {
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Health server stopped",
				logger.ErrorField(err),
			)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info("Shutting down chart service")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down HTTP server",
			logger.ErrorField(err),
		)
	}
	if err := healthServer.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down health server",
			logger.ErrorField(err),
		)
	}

	logger.Info("Chart service stopped")
}
