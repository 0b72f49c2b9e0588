package main

import (
	"context"
	"log"
	"time"

	"pricing-cms/cmd"
	"pricing-cms/internal/data/catalog"
	"pricing-cms/internal/data/repository"
	"pricing-cms/internal/wire"
	"pricing-cms/pkg/database"
	"pricing-cms/pkg/mailer"
	"pricing-cms/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Pricing catalog is compiled in, a broken document is a build defect
	pricing, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load pricing catalog", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = database.Migrate(migrateCtx, db)
	cancel()
	if err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	mail := mailer.NewSMTPMailer(config.Email, logger)

	if config.Admin.TokenHash == "" {
		logger.Warn("ADMIN_TOKEN_HASH not set, admin routes will reject every request")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, mail, pricing, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
