package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/fittracker/internal/api"
	"alcyxob/fittracker/internal/config"
	"alcyxob/fittracker/internal/repository/kv"
	"alcyxob/fittracker/internal/service"
	"alcyxob/fittracker/internal/store"
	mongostore "alcyxob/fittracker/internal/store/mongo"
	sqlitestore "alcyxob/fittracker/internal/store/sqlite"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting FitTracker server...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	kvStore, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatalf("could not open %s storage: %s", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := kvStore.Close(); err != nil {
			log.Errorf("close storage: %s", err)
		}
	}()
	log.Infof("Storage ready (driver: %s).", cfg.Storage.Driver)

	templateRepo := kv.NewTemplateRepository(kvStore)
	sessionRepo := kv.NewSessionRepository(kvStore)
	preferenceRepo := kv.NewPreferenceRepository(kvStore)

	// Templates load (or seed) first; session migration resolves legacy
	// day labels against them.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	state, err := service.LoadState(loadCtx, templateRepo, sessionRepo)
	loadCancel()
	if err != nil {
		log.Fatalf("could not load application state: %s", err)
	}
	log.Infof("State loaded: %d templates, %d sessions.", len(state.Templates()), len(state.Sessions()))

	templateService := service.NewTemplateService(state, templateRepo)
	sessionService := service.NewSessionService(state, sessionRepo)
	statsService := service.NewStatsService(state)
	preferenceService := service.NewPreferenceService(preferenceRepo)

	router := gin.Default() // includes Logger and Recovery middleware
	api.SetupRoutes(router, templateService, sessionService, statsService, preferenceService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %s", err)
	}

	log.Info("Server exiting.")
}

func openStore(cfg config.StorageConfig) (store.KV, error) {
	switch cfg.Driver {
	case "sqlite":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return sqlitestore.New(ctx, cfg.SQLite.Path)
	case "mongo":
		return mongostore.New(cfg.Mongo.URI, cfg.Mongo.Name)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
