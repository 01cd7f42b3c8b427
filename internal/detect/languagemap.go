package detect

// applyLanguageMap rewrites each result's code through m, leaving codes
// with no entry unchanged. It runs once, on the thresholded list,
// before the final sort — so a language map can only relabel
// candidates that already cleared ProbThreshold, never resurrect ones
// that didn't.
func applyLanguageMap(results []LanguageResult, m map[string]string) []LanguageResult {
	if len(m) == 0 {
		return results
	}
	out := make([]LanguageResult, len(results))
	for i, r := range results {
		code := r.Code
		if mapped, ok := m[code]; ok {
			code = mapped
		}
		out[i] = LanguageResult{Code: code, Probability: r.Probability}
	}
	return out
}
