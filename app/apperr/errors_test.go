package apperr

import (
	"errors"
	"testing"

	"github.com/textplane/langdetect/internal/profile"
)

func TestWrapProfileErrorAddsSuggestion(t *testing.T) {
	original := &profile.MissingLanguageError{
		Missing:   []string{"eng"},
		Available: []string{"en", "fr", "vi"},
	}
	wrapped := WrapProfileError(original)

	var ce *ConfigurationError
	if !errors.As(wrapped, &ce) {
		t.Fatalf("expected a *ConfigurationError, got %T", wrapped)
	}
	if ce.Suggestion != "en" {
		t.Errorf("suggestion = %q, want %q", ce.Suggestion, "en")
	}
	if !IsConfigurationError(wrapped) {
		t.Error("IsConfigurationError returned false for a ConfigurationError")
	}
}

func TestWrapProfileErrorPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	if got := WrapProfileError(plain); got != plain {
		t.Errorf("expected the original error to pass through unchanged, got %v", got)
	}
}
