package variant

import (
	"github.com/mozillazg/go-unidecode"

	"github.com/textplane/langdetect/internal/detect"
)

// ASCIIFoldedDetector transliterates text to its nearest ASCII
// spelling before handing it to the base detector. It exists for
// profile sets trained on unaccented text, where an accented input
// would otherwise miss every n-gram the profile actually carries.
type ASCIIFoldedDetector struct {
	base Detector
}

func NewASCIIFoldedDetector(base Detector) *ASCIIFoldedDetector {
	return &ASCIIFoldedDetector{base: base}
}

func (a *ASCIIFoldedDetector) DetectAll(text string) ([]detect.LanguageResult, error) {
	return a.base.DetectAll(unidecode.Unidecode(text))
}
