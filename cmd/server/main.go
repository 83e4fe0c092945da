package main

// @title           Shelfshare Authors API
// @version         1.0
// @description     API for querying and maintaining authors in Shelfshare.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/db"
	docs "github.com/snnyvrz/shelfshare/apps/authors-api/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/migrations"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const appVersion = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.GinMode, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.EnvFile != "" {
		log.Info("loaded env file", zap.String("path", cfg.EnvFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	e := gin.New()
	e.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Tenant(),
		middleware.AccessLog(log),
		middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler(),
	)

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/api"

	database, err := db.ConnectWithRetry(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		applied, err := migrations.Up(ctx, sqlDB, cfg.DBDriver)
		if err != nil {
			return err
		}
		log.Info("migrations applied", zap.Int64s("versions", applied))
	}

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		authorService := service.NewAuthorService(repository.NewAuthorRepository(database))
		authorHandler := handler.NewAuthorHandler(authorService)
		authorHandler.RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("driver", cfg.DBDriver),
			zap.String("version", appVersion),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
