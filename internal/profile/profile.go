// Package profile holds the frequency-table input type and the
// aggregated, read-only store built from it once at startup.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// LangProfile is the on-disk frequency-table contract for a single
// language: how many 1/2/3-grams were observed in the training corpus
// (NWords, indexed by order-1) and the raw occurrence count for every
// n-gram that survived pruning.
type LangProfile struct {
	Name   string           `json:"name"`
	NWords [3]int64         `json:"n_words"`
	Freq   map[string]int64 `json:"freq"`
}

// Validate checks the structural invariants a LangProfile must satisfy
// before it can be folded into a ProfileStore: every key is 1-3 runes
// long and every count is non-negative. It does not require the sum of
// per-order counts to equal NWords exactly, since profiles are
// pruned after training.
func (p *LangProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("langdetect: profile has empty name")
	}
	for _, n := range p.NWords {
		if n < 0 {
			return fmt.Errorf("langdetect: profile %q has negative n_words", p.Name)
		}
	}
	for ng, c := range p.Freq {
		order := utf8.RuneCountInString(ng)
		if order < 1 || order > 3 {
			return fmt.Errorf("langdetect: profile %q has n-gram %q of invalid order %d", p.Name, ng, order)
		}
		if c < 0 {
			return fmt.Errorf("langdetect: profile %q has negative count for %q", p.Name, ng)
		}
	}
	return nil
}

// LoadFile reads a single LangProfile from its on-disk JSON form.
func LoadFile(path string) (LangProfile, error) {
	var p LangProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("langdetect: reading profile %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("langdetect: parsing profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// LoadDir reads one LangProfile per requested language from dir,
// expecting a file named "<language>.json" per code. It returns a
// *MissingLanguageError (listing every requested code that had no
// matching file, alongside every code that does exist in dir) if any
// requested language is absent, so the caller can decide how to
// surface the failure.
func LoadDir(dir string, languages []string) ([]LangProfile, error) {
	available, err := listAvailable(dir)
	if err != nil {
		return nil, err
	}
	availableSet := make(map[string]bool, len(available))
	for _, code := range available {
		availableSet[code] = true
	}

	var profiles []LangProfile
	var missing []string
	for _, lang := range languages {
		if !availableSet[lang] {
			missing = append(missing, lang)
			continue
		}
		p, err := LoadFile(filepath.Join(dir, lang+".json"))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if len(missing) > 0 {
		return nil, &MissingLanguageError{Missing: missing, Available: available}
	}
	return profiles, nil
}

func listAvailable(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("langdetect: reading profile directory %s: %w", dir, err)
	}
	var codes []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		codes = append(codes, name[:len(name)-len(".json")])
	}
	return codes, nil
}
