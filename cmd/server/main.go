package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ocureg/internal/graph"
	"ocureg/internal/metrics"
	"ocureg/internal/record"
	"ocureg/internal/server"
	"ocureg/pkg/config"
	apperrors "ocureg/pkg/errors"
	"ocureg/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting GraphQL API server...")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize dependencies
	store := record.NewStore(record.Seed())
	resolver := graph.NewResolver(store, log)
	schema := graphql.MustParseSchema(graph.Schema, resolver, graphql.UseStringDescriptions())

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}
	metrics.SetRecordCount(store.Len())

	router := server.NewRouter(schema, log)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.Handler(),
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server",
				zap.Error(apperrors.NewStartup("could not bind port "+cfg.Port, err)))
		}
	}()

	log.Info("Server started",
		zap.String("port", cfg.Port),
		zap.Int("seed_records", store.Len()))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
