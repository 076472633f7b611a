package repository

import (
	"context"
	"fmt"

	"page-quiz/internal/cache"
	"page-quiz/internal/config"
	"page-quiz/internal/database"
	"page-quiz/internal/domain"
	"page-quiz/internal/logger"

	"go.uber.org/zap"
)

// NewQuizStore opens the store selected by cfg.Storage.Driver. The returned close
// function releases any connection the store holds.
func NewQuizStore(ctx context.Context, cfg *config.Config) (domain.QuizRepository, func() error, error) {
	l := logger.Get()
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		l.Info("Using in-memory quiz store")
		return NewMemoryQuizStore(), noop, nil

	case config.StorageRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Storage.Redis)
		if err != nil {
			return nil, nil, err
		}
		l.Info("Using Redis quiz store",
			zap.String("address", cfg.Storage.Redis.Address),
			zap.Duration("ttl", cfg.Storage.Redis.TTL))
		return NewRedisQuizStore(client, cfg.Storage.Redis.TTL), client.Close, nil

	case config.StorageOracle:
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			return nil, nil, err
		}
		l.Info("Using Oracle quiz store", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.DBName))
		return NewOracleQuizStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
	}
}
