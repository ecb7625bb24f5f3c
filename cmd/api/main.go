package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"egramseva-backend/internal/app"
	"egramseva-backend/internal/config"
	"egramseva-backend/pkg/logger"
	"egramseva-backend/pkg/validator"
)

func main() {
	logger.Init()
	defer logger.Close()
	logger.Info("Starting e-GramSeva content service", nil)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables", nil)
	}

	cfg := config.New()
	validator.Init()

	application, err := app.New(cfg, app.Options{})
	if err != nil {
		logger.Error(err, "Failed to initialise application", nil)
		log.Fatal(err)
	}

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "Failed to start server", nil)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		logger.Error(err, "Server forced to shutdown", nil)
		log.Fatal(err)
	}

	logger.Info("Server exited gracefully", nil)
}
