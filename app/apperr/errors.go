// Package apperr defines the error types the service layer surfaces to
// HTTP callers, distinguishing configuration problems (the caller
// asked for something the deployment doesn't have) from detection
// invariant violations (the engine itself is broken). Cache-tier
// failures have no error type here: the service layer logs them and
// serves the request without the cache.
package apperr

import (
	"errors"
	"fmt"

	"github.com/textplane/langdetect/app/config"
	"github.com/textplane/langdetect/internal/detect"
	"github.com/textplane/langdetect/internal/profile"
)

// ConfigurationError wraps a missing-language-profile failure with a
// human-facing suggestion, computed from the requested code's
// similarity to what's actually on disk.
type ConfigurationError struct {
	Missing    []string
	Suggestion string
	err        error
}

func (e *ConfigurationError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no profile for language(s) %v (did you mean %q?)", e.Missing, e.Suggestion)
	}
	return fmt.Sprintf("no profile for language(s) %v", e.Missing)
}

func (e *ConfigurationError) Unwrap() error { return e.err }

// WrapProfileError converts a *profile.MissingLanguageError into a
// *ConfigurationError carrying a suggestion for the first missing
// code. It returns err unchanged if it isn't a missing-language error.
func WrapProfileError(err error) error {
	var missing *profile.MissingLanguageError
	if !errors.As(err, &missing) {
		return err
	}
	suggestion := ""
	if len(missing.Missing) > 0 {
		suggestion = config.SuggestLanguage(missing.Missing[0], missing.Available)
	}
	return &ConfigurationError{Missing: missing.Missing, Suggestion: suggestion, err: err}
}

// DetectionError is a re-export of the core's own invariant-violation
// type, so callers outside internal/detect can match on it with
// errors.As without importing an internal package directly.
type DetectionError = detect.InvariantError

// IsConfigurationError reports whether err is, or wraps, a
// *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsDetectionError reports whether err is, or wraps, a DetectionError.
func IsDetectionError(err error) bool {
	var de *DetectionError
	return errors.As(err, &de)
}
