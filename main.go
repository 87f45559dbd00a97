package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tabstat/internal"
	"tabstat/internal/analysis"
	"tabstat/internal/api"
	"tabstat/internal/config"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger.SetLevel(appConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer := analysis.NewAnalyzer(appConfig)
	server := api.NewServer(appConfig, analyzer)

	if err := server.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
