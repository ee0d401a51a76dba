package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// SchemaVersionTable records which bootstrap files have been applied.
const SchemaVersionTable = "taskhub_schema_version"

//go:embed migrations/*.sql
var schemaFS embed.FS

// EnsureSchema creates the tasks table if it does not exist. The bootstrap
// statements use IF NOT EXISTS, so a database whose table was created by an
// earlier deployment is accepted unchanged.
func EnsureSchema(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	goose.SetBaseFS(schemaFS)
	goose.SetTableName(SchemaVersionTable)
	goose.SetLogger(&gooseLogger{logger: logger.With(slog.String("component", "schema"))})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set schema dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info("database schema ready", slog.Int64("version", version))
	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
