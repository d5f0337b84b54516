package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openpitch/field-booking/internal/config"
	"github.com/openpitch/field-booking/internal/db"
	"github.com/openpitch/field-booking/internal/events"
	"github.com/openpitch/field-booking/internal/middleware"
	"github.com/openpitch/field-booking/internal/routes"
	"github.com/openpitch/field-booking/internal/storage"
	"github.com/openpitch/field-booking/internal/validators"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	database := db.NewDB(cfg, logger)
	rdb := db.NewRedis(cfg, logger)
	pictures := storage.NewPictureStore(context.Background(), cfg, logger)
	publisher := events.NewPublisher(cfg.AMQPUrl, logger)

	validators.RegisterBindingValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:       database,
		Redis:    rdb,
		Pictures: pictures,
		Events:   publisher,
		Log:      logger,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
