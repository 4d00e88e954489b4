package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/migrations"
)

const (
	maxRetries     = 3
	retryBaseDelay = 50 * time.Millisecond
)

// DB is a SQL connection together with the dialect-specific pieces the
// repositories need: the goose dialect, a squirrel builder with the right
// placeholder format and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded gallery schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// retry runs op until it succeeds, fails with an error that is not
// [Retryable], or maxRetries extra attempts have been spent.
func (db *DB) retry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if db.classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("dialect", db.dialect).Msg("retryable database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// wrapError maps a missing-table failure to [ErrDatasetNotMigrated].
func (db *DB) wrapError(err error) error {
	if err == nil {
		return nil
	}
	if db.classify(err) == UndefinedObject {
		return fmt.Errorf("%w: %w", ErrDatasetNotMigrated, err)
	}
	return err
}
