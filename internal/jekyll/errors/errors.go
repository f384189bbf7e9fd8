// Package errors defines sentinel errors for site generation failures.
package errors

import "errors"

var (
	// ErrOutputDirCreateFailed indicates the output root could not be created.
	ErrOutputDirCreateFailed = errors.New("failed to create output directory")

	// ErrScaffoldFailed indicates the site directory scaffold could not be written.
	ErrScaffoldFailed = errors.New("failed to scaffold site structure")

	// ErrConfigWriteFailed indicates the site _config.yml could not be written.
	ErrConfigWriteFailed = errors.New("failed to write site config")

	// ErrIndexWriteFailed indicates an index page could not be rendered or written.
	ErrIndexWriteFailed = errors.New("failed to write index page")

	// ErrDocumentWriteFailed indicates a converted document could not be written.
	ErrDocumentWriteFailed = errors.New("failed to write document")
)
