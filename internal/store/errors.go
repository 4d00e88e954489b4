package store

import "errors"

// Sentinel errors returned by dataset sources. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDatasetNotMigrated is returned when the gallery tables are missing
	// from the SQL store.
	ErrDatasetNotMigrated = errors.New("dataset tables do not exist")

	// ErrDatasetFileNotFound is returned when one of users.json, albums.json
	// or photos.json is absent from the dataset directory.
	ErrDatasetFileNotFound = errors.New("dataset file not found")

	// ErrDecodingDataset is returned when a dataset file is not a JSON array
	// of the expected records.
	ErrDecodingDataset = errors.New("error decoding dataset file")

	// ErrUnsupportedDSN is returned when a DSN cannot be mapped to a driver.
	ErrUnsupportedDSN = errors.New("unsupported dsn")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to iterate rows")
)
