package profile

import "unicode/utf8"

// ProfileStore is the aggregated, read-only view the detector runs
// against: for every n-gram seen across the loaded languages, the
// per-language relative frequency (occurrence count divided by the
// total n-grams of that order observed for that language). It is built
// once, at startup, and never mutated afterward, so it needs no
// synchronization to be shared across concurrent detection calls.
type ProfileStore struct {
	langs     []string
	ngramProb map[string][]float64
}

// NewProfileStore aggregates a set of validated LangProfiles into a
// ProfileStore. The language order given here becomes the index order
// every probability vector is keyed by, and is the order Detector
// results are computed against before sorting.
func NewProfileStore(profiles []LangProfile) (*ProfileStore, error) {
	if len(profiles) == 0 {
		return nil, &MissingLanguageError{}
	}
	langs := make([]string, len(profiles))
	ngramProb := make(map[string][]float64)

	for i, p := range profiles {
		langs[i] = p.Name
		for ng, count := range p.Freq {
			order := utf8.RuneCountInString(ng)
			if order < 1 || order > 3 {
				continue
			}
			total := p.NWords[order-1]
			if total <= 0 {
				continue
			}
			vec, ok := ngramProb[ng]
			if !ok {
				vec = make([]float64, len(profiles))
				ngramProb[ng] = vec
			}
			vec[i] = float64(count) / float64(total)
		}
	}

	return &ProfileStore{langs: langs, ngramProb: ngramProb}, nil
}

// Languages returns the store's languages in index order.
func (s *ProfileStore) Languages() []string {
	out := make([]string, len(s.langs))
	copy(out, s.langs)
	return out
}

// Len is the number of languages the store was built with.
func (s *ProfileStore) Len() int {
	return len(s.langs)
}

// Lookup returns the per-language probability vector for an n-gram,
// indexed in the same order as Languages(). The returned slice must
// not be mutated by callers; it is the store's own backing array.
func (s *ProfileStore) Lookup(ngram string) ([]float64, bool) {
	v, ok := s.ngramProb[ngram]
	return v, ok
}

// LanguageIndex returns the index of code within Languages(), or false
// if the store has no profile for it.
func (s *ProfileStore) LanguageIndex(code string) (int, bool) {
	for i, l := range s.langs {
		if l == code {
			return i, true
		}
	}
	return -1, false
}
