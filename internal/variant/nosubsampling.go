package variant

import "github.com/textplane/langdetect/internal/detect"

// NoSubsamplingDetector runs a single deterministic pass over the
// extracted n-grams in text order (stopping early on convergence)
// instead of the usual random sampling with replacement across
// several trials. It trades the base
// Detector's averaging-over-randomness for a cheaper, fully
// deterministic single pass — useful for short inputs where repeated
// trials add little beyond the first.
type NoSubsamplingDetector struct {
	base *detect.Detector
}

func NewNoSubsamplingDetector(base *detect.Detector) *NoSubsamplingDetector {
	return &NoSubsamplingDetector{base: base}
}

func (n *NoSubsamplingDetector) DetectAll(text string) ([]detect.LanguageResult, error) {
	normalized, admitted := n.base.Normalize(text)
	if !admitted {
		return nil, nil
	}

	grams := n.base.ExtractGrams(normalized)
	if len(grams) == 0 {
		return nil, nil
	}

	overall, err := n.base.RunOrdered(grams)
	if err != nil {
		return nil, err
	}
	return n.base.Finalize(overall), nil
}
