package variant

import (
	"sort"

	"github.com/textplane/langdetect/internal/detect"
)

// EnsembleDetector blends the results of several member detectors —
// typically the same Detector pointed at different profile variants,
// e.g. a "default" profile set and a "merged-average" one — the same
// way the cache layer blends an L1 and an L2 tier behind one
// interface. A language's averaged probability is the sum of what each
// member reported for it, divided by the member count; a member that
// didn't surface the language at all contributes zero.
type EnsembleDetector struct {
	members       []Detector
	probThreshold float64
}

// NewEnsembleDetector builds an EnsembleDetector over members,
// filtering the blended result to codes whose averaged probability
// exceeds probThreshold.
func NewEnsembleDetector(probThreshold float64, members ...Detector) *EnsembleDetector {
	return &EnsembleDetector{members: members, probThreshold: probThreshold}
}

func (e *EnsembleDetector) DetectAll(text string) ([]detect.LanguageResult, error) {
	if len(e.members) == 0 {
		return nil, nil
	}

	totals := make(map[string]float64)
	var order []string
	for _, m := range e.members {
		results, err := m.DetectAll(text)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			if _, seen := totals[r.Code]; !seen {
				order = append(order, r.Code)
			}
			totals[r.Code] += r.Probability
		}
	}

	n := float64(len(e.members))
	out := make([]detect.LanguageResult, 0, len(order))
	for _, code := range order {
		if avg := totals[code] / n; avg > e.probThreshold {
			out = append(out, detect.LanguageResult{Code: code, Probability: avg})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out, nil
}
