package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"duty-roster-backend/internal/api/routes"
	"duty-roster-backend/internal/config"
	"duty-roster-backend/internal/database"
	"duty-roster-backend/internal/docstore"
	"duty-roster-backend/internal/logger"
	"duty-roster-backend/internal/repository"
	"duty-roster-backend/internal/roster"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "duty-roster-backend/docs" // This is needed for swag
)

const subscribeRetryInterval = 5 * time.Second

//	@title			Duty Roster Backend API
//	@version		1.0
//	@description	Backend API for the departmental duty roster: monthly duty cycles, staff directory, annotations, statistics and the editing lock.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Snapshot fan-out: Redis when configured, in process otherwise
	var redisClient *redis.Client
	var notifier docstore.Notifier = docstore.NewLocalNotifier()
	if cfg.UsesRedis() {
		redisClient, err = database.InitializeRedis(ctx, database.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logrus.Fatal("Failed to connect to Redis: ", err)
		}
		defer redisClient.Close()
		notifier = docstore.NewRedisNotifier(redisClient, "")
	}

	store := docstore.NewStore(repository.NewRosterDocumentRepository(db), notifier)
	coordinator := roster.NewCoordinator(store, cfg.RosterKey, roster.WithSettleDelay(cfg.SaveSettleDelay))
	if err := coordinator.Start(ctx); err != nil {
		// edits are refused and readiness fails until a retry loads the stored roster
		logrus.WithError(err).Error("Roster synchronisation did not start")
		go func() {
			if err := coordinator.StartWithRetry(ctx, subscribeRetryInterval); err != nil {
				logrus.WithError(err).Warn("Gave up starting roster synchronisation")
				return
			}
			logrus.Info("Roster synchronisation started")
		}()
	}
	defer coordinator.Stop()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, redisClient, coordinator, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}
