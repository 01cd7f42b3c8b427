// Package variant holds compositional wrappers around a base
// *detect.Detector. None of them modify the core inference loop; each
// layers a different preprocessing or aggregation strategy on top of
// it, composing instead of rewriting either tier.
package variant

import "github.com/textplane/langdetect/internal/detect"

// Detector is the shape every wrapper in this package, and
// *detect.Detector itself, satisfies.
type Detector interface {
	DetectAll(text string) ([]detect.LanguageResult, error)
}
