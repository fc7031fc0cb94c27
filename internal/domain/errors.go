package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Pattern errors
	ErrMsgInvalidPattern  = "invalid pattern"
	ErrMsgUnclosedTag     = "unclosed tag bracket"
	ErrMsgEmptyPattern    = "pattern is empty"
	ErrMsgAbsolutePattern = "pattern must not start with an absolute path"
	ErrMsgUnknownToken    = "unknown pattern token"

	// Settings errors
	ErrMsgInvalidSettings = "invalid rename settings"

	// Preview errors
	ErrMsgDecodeFailed = "decode failed"

	// Metadata errors
	ErrMsgNoMetadata  = "no metadata available"
	ErrMsgTagNotFound = "tag not found"

	// Catalog errors
	ErrMsgEntryNotFound = "catalog entry not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Pattern errors
	ErrInvalidPattern  = errors.New(ErrMsgInvalidPattern)
	ErrUnclosedTag     = errors.New(ErrMsgUnclosedTag)
	ErrEmptyPattern    = errors.New(ErrMsgEmptyPattern)
	ErrAbsolutePattern = errors.New(ErrMsgAbsolutePattern)
	ErrUnknownToken    = errors.New(ErrMsgUnknownToken)

	// Settings errors
	ErrInvalidSettings = errors.New(ErrMsgInvalidSettings)

	// Preview errors
	ErrDecodeFailed = errors.New(ErrMsgDecodeFailed)

	// Metadata errors
	ErrNoMetadata  = errors.New(ErrMsgNoMetadata)
	ErrTagNotFound = errors.New(ErrMsgTagNotFound)

	// Catalog errors
	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)
)
