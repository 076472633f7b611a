package main

import (
	"context"
	"log"
	"time"

	"page-quiz/internal/config"
	"page-quiz/internal/database"
	"page-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
