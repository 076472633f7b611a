package database

import (
	"context"
	"fmt"

	"page-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
)

// DriverName is the database/sql name go-ora registers itself under.
const DriverName = "oracle"

// NewSQLXOracleDB opens an Oracle connection pool and verifies it with a ping.
func NewSQLXOracleDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}
