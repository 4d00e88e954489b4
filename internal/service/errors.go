package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the parent of every error caused by a caller
	// asking for something the current state cannot satisfy.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPhotoNotFound is returned by a reorder whose photo id is not in
	// the working list.
	ErrPhotoNotFound = fmt.Errorf("%w: photo not found", ErrInvalidArgument)

	// ErrInvalidDirection is returned by a reorder with a direction other
	// than up or down.
	ErrInvalidDirection = fmt.Errorf("%w: invalid move direction", ErrInvalidArgument)
)

var (
	ErrLoadingDataset     = errors.New("error loading dataset")
	ErrImportingDataset   = errors.New("error importing dataset")
	ErrImportNotSupported = errors.New("dataset source is read-only")
)
