package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz-solver/internal/di"
	"quiz-solver/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	cfg := di.Config{
		Email:  envService.MustGet("STUDENT_EMAIL"),
		Secret: envService.MustGet("SECRET_STRING"),
		Port:   envService.GetInt("PORT", 8000),

		LLMProvider:      envService.GetDefault("LLM_PROVIDER", "gemini"),
		OpenRouterAPIKey: envService.Get("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.Get("OPENROUTER_MODEL_NAME"),
		GeminiAPIKey:     envService.Get("GEMINI_API_KEY"),
		GeminiModel:      envService.Get("GEMINI_MODEL_NAME"),

		BrowserHeadless: envService.GetBool("BROWSER_HEADLESS", true),
		Development:     envService.GetBool("DEV_LOGGING", false),
	}

	ctx := context.Background()
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: container.Server.Router(),
	}

	go func() {
		container.Logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	container.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Shutdown error", "error", err)
	}
}
