package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicate             = errors.New("duplicate key")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrUnableToAllocateID    = errors.New("unable to allocate id")
)

// StorageErrorKind classifies object storage failures.
type StorageErrorKind string

const (
	StorageErrBucketNotFound     StorageErrorKind = "bucket_not_found"
	StorageErrCredentialsInvalid StorageErrorKind = "credentials_invalid"
	StorageErrRegionMismatch     StorageErrorKind = "region_mismatch"
	StorageErrNetwork            StorageErrorKind = "network_unreachable"
	StorageErrGeneric            StorageErrorKind = "generic"
)

// StorageError wraps a provider error with its classification.
type StorageError struct {
	Kind StorageErrorKind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Reason returns a human-readable description safe to show to callers.
func (e *StorageError) Reason() string {
	switch e.Kind {
	case StorageErrBucketNotFound:
		return "Storage bucket not found."
	case StorageErrCredentialsInvalid:
		return "Storage credentials are invalid."
	case StorageErrRegionMismatch:
		return "Storage region mismatch."
	case StorageErrNetwork:
		return "Storage service is unreachable."
	default:
		return "Failed to store file."
	}
}
