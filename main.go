// main.go
package main

import (
	"context"
	"log"

	"artisanverse/cmd"
	"artisanverse/internal/ai"
	"artisanverse/internal/data/store"
	"artisanverse/internal/wire"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("environment", config.App.Environment),
		zap.Bool("debug", config.App.Debug),
	)

	// File-backed stores
	st := store.NewStore(config.Data.Dir, logger)

	// Generation client
	gen, err := ai.NewGeminiGenerator(context.Background(), config.AI.APIKey, config.AI.Model, config.AI.TimeoutSeconds, logger)
	if err != nil {
		logger.Fatal("Failed to create generation client", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(st, gen, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
