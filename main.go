package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"vincent-gallery/pkg/api"
	"vincent-gallery/pkg/catalog"
	"vincent-gallery/pkg/config"
	"vincent-gallery/pkg/logger"
	"vincent-gallery/pkg/services"
	"vincent-gallery/pkg/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zlog, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		DevMode: cfg.DevMode,
	})
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zlog.Sync()

	gallery := catalog.Default()
	if cfg.CatalogFile != "" {
		gallery, err = catalog.Load(cfg.CatalogFile)
		if err != nil {
			zlog.Fatal("Error loading catalog", zap.Error(err))
		}
	}

	site, err := web.NewSite(cfg.StaticDir)
	if err != nil {
		zlog.Fatal("Error loading pages", zap.Error(err), zap.String("dir", cfg.StaticDir))
	}

	submissionService := services.NewSubmissionService(zlog, cfg.SubmissionDelay)
	handlers := api.NewHandlers(submissionService, gallery, zlog, cfg.ServiceName, cfg.ServiceVersion)

	gin.SetMode(cfg.GinMode)
	router, err := api.NewRouter(cfg, zlog, handlers, site)
	if err != nil {
		zlog.Fatal("Error building router", zap.Error(err))
	}

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		zlog.Info("Server starting",
			zap.String("addr", cfg.Addr()),
			zap.Int("paintings", gallery.Len()),
			zap.Duration("submission_delay", cfg.SubmissionDelay),
			zap.Bool("metrics", cfg.MetricsEnabled),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server", zap.Duration("timeout", cfg.ShutdownTimeout))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("Error during shutdown", zap.Error(err))
	}
}
