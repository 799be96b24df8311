// main.go
package main

import (
	"log"

	"booking-api/cmd"
	"booking-api/internal/data/repository"
	"booking-api/internal/usecase"
	"booking-api/internal/wire"
	"booking-api/pkg/authorizer"
	"booking-api/pkg/database"
	"booking-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config; missing identity-provider settings abort startup here.
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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// External identity provider client
	verifier, err := authorizer.NewClient(config.Authorizer, logger)
	if err != nil {
		logger.Fatal("Failed to configure identity provider client", zap.Error(err))
	}

	// Repositories and services
	repos := repository.NewRepository(db, logger)
	service := usecase.NewService(repos, config, logger)

	// Wire the HTTP surface
	app := wire.Wiring(service, verifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
