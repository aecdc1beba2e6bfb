package domain

import "errors"

var (
	// ErrNotFound marks a missing profile, plan, recipe or task.
	ErrNotFound = errors.New("not found")

	// ErrGenerationFailed marks a planning run that could not fill its
	// slots (empty eligible set or no selectable candidate). Callers map
	// it to 422 so the user sees an actionable message instead of a
	// generic failure.
	ErrGenerationFailed = errors.New("plan generation failed")

	// ErrValidation marks malformed input rejected before any work begins.
	ErrValidation = errors.New("validation error")

	// ErrImportUnavailable marks catalog import requests made while no
	// spreadsheet credentials are configured.
	ErrImportUnavailable = errors.New("catalog import unavailable")
)
