package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/newsboard/app/api"
	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/newsapi"
	"github.com/lysyi3m/newsboard/app/render"
	"golang.org/x/time/rate"
)

func main() {
	appConfig, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown
		return
	}

	level := slog.LevelInfo
	if appConfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting Newsboard server", "version", appConfig.Version, "api", appConfig.APIBaseURL)

	labels := appConfig.Labels

	httpClient := &http.Client{Timeout: appConfig.GetAPITimeout()}
	client := newsapi.NewClient(appConfig.APIBaseURL, httpClient, appConfig.UserAgent)

	dates := render.NewDateFormatter(appConfig.Locale, time.Local, labels.UnknownDate)
	formatter := render.NewFormatter(labels, dates)
	renderer := render.NewRenderer(client, formatter, labels, appConfig.Locale)
	actions := render.NewActions(client, renderer, labels, appConfig.GetStatsHideAfter())

	apiHandler := api.NewHandler(client, client, renderer, actions, labels, appConfig.Version)
	server := api.NewServer(apiHandler, rate.Limit(appConfig.ClearRateRPS), appConfig.ClearRateBurst)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening",
			"port", appConfig.Port,
			"page", fmt.Sprintf("http://localhost:%s/", appConfig.Port),
			"feed", fmt.Sprintf("http://localhost:%s/feed.xml", appConfig.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Newsboard server shutdown complete")
}
