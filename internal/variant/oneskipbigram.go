package variant

import (
	"unicode"

	"github.com/textplane/langdetect/internal/charnorm"
	"github.com/textplane/langdetect/internal/detect"
)

// OneSkipBigramDetector extracts 2-grams formed from every other
// folded code point (positions i and i+2) instead of adjacent pairs,
// an experimental gram-extraction strategy for languages where
// meaningful pairs are frequently interrupted by a single connecting
// character. It reuses the base Detector's own trial and finalize
// logic, so its output shape and thresholding match DetectAll exactly
// — only the n-gram extraction differs.
type OneSkipBigramDetector struct {
	base *detect.Detector
}

func NewOneSkipBigramDetector(base *detect.Detector) *OneSkipBigramDetector {
	return &OneSkipBigramDetector{base: base}
}

func (o *OneSkipBigramDetector) DetectAll(text string) ([]detect.LanguageResult, error) {
	normalized, admitted := o.base.Normalize(text)
	if !admitted {
		return nil, nil
	}

	grams := o.extractSkipGrams(normalized)
	if len(grams) == 0 {
		return nil, nil
	}

	overall, err := o.base.RunTrials(grams)
	if err != nil {
		return nil, err
	}
	return o.base.Finalize(overall), nil
}

func (o *OneSkipBigramDetector) extractSkipGrams(text string) []string {
	store := o.base.Store()

	folded := make([]rune, 0, len(text))
	for _, r := range text {
		if !isWordRune(r) {
			r = ' '
		}
		folded = append(folded, charnorm.Fold(r))
	}

	var grams []string
	for i := 0; i+2 < len(folded); i++ {
		if folded[i] == charnorm.Marker && folded[i+2] == charnorm.Marker {
			continue
		}
		g := string([]rune{folded[i], folded[i+2]})
		if _, ok := store.Lookup(g); ok {
			grams = append(grams, g)
		}
	}
	return grams
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
