package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"page-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// oracleNameInUse is raised by CREATE statements for objects that already exist.
const oracleNameInUse = "ORA-00955"

// RunMigrations executes every embedded *.up.sql file in lexical order. Each file
// holds a single statement. Objects that already exist are skipped, so the command
// can be re-run against a migrated schema.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	l := logger.Get()

	names, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if strings.Contains(err.Error(), oracleNameInUse) {
				l.Info("Migration already applied", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}

		l.Info("Executed migration", zap.String("file", name))
	}

	l.Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}
