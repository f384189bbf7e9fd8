package errors

// Package errors provides sentinel errors for document discovery operations.
// These enable consistent classification while keeping user-facing messages
// descriptive via wrapping.

import "errors"

var (
	// ErrInputDirNotFound indicates the configured input directory does not exist.
	ErrInputDirNotFound = errors.New("input directory not found")

	// ErrInputDirWalkFailed indicates filesystem traversal of the input directory failed.
	ErrInputDirWalkFailed = errors.New("input directory walk failed")

	// ErrFileReadFailed indicates reading content from a discovered document failed.
	ErrFileReadFailed = errors.New("document read failed")
)
