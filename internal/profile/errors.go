package profile

import "fmt"

// MissingLanguageError reports that one or more requested language
// codes have no profile under the loader's active variant directory.
// The service layer wraps this with a suggestion (see app/apperr)
// before surfacing it as a configuration error.
type MissingLanguageError struct {
	Missing   []string
	Available []string
}

func (e *MissingLanguageError) Error() string {
	return fmt.Sprintf("langdetect: no profile found for language(s) %v", e.Missing)
}
