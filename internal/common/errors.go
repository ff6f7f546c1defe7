// Package common defines shared constants and sentinel errors used across
// the Genia Studio CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session/account errors.
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrInvalidEmail = errors.New("invalid email")

	// Licensing errors.
	ErrQuotaExhausted = errors.New("quota exhausted")
	ErrCodeMismatch   = errors.New("activation code mismatch")

	// Pipeline errors.
	ErrPipelineBusy  = errors.New("generation already in progress")
	ErrEmptySubject  = errors.New("empty subject")
	ErrStageFailure  = errors.New("generation stage failed")
	ErrExportFailure = errors.New("document export failed")
)
