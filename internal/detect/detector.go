// Package detect implements the Monte-Carlo naive-Bayes inference loop
// that turns a profile store and a piece of text into a ranked list of
// candidate languages.
package detect

import (
	"math/rand"
	"regexp"
	"sort"

	"github.com/textplane/langdetect/internal/charnorm"
	"github.com/textplane/langdetect/internal/ngram"
	"github.com/textplane/langdetect/internal/profile"
)

// Settings configures a Detector. Every field has the documented
// default applied by DefaultSettings; callers normally start there and
// override only what they need.
type Settings struct {
	NumberOfTrials int
	Alpha          float64
	AlphaWidth     float64
	IterationLimit int
	ProbThreshold  float64
	ConvThreshold  float64
	BaseFreq       float64
	Pattern        *regexp.Regexp
	Max            int
	LanguageMap    map[string]string
}

// DefaultSettings returns the reference configuration.
func DefaultSettings() Settings {
	return Settings{
		NumberOfTrials: 7,
		Alpha:          0.5,
		AlphaWidth:     0.05,
		IterationLimit: 10000,
		ProbThreshold:  0.1,
		ConvThreshold:  0.99999,
		BaseFreq:       10000,
	}
}

// LanguageResult is one entry of a detection outcome: a language code
// and the probability mass Detector assigned to it.
type LanguageResult struct {
	Code        string
	Probability float64
}

// Detector runs the inference loop against a fixed ProfileStore.
// A Detector is safe for concurrent use: it holds no mutable state of
// its own, and each DetectAll call uses its own RNG seeded the same
// way, so repeated calls with the same text always return the same
// result regardless of how many other calls run concurrently.
type Detector struct {
	store    *profile.ProfileStore
	settings Settings
	seed     int64
}

// New returns a Detector over store using settings. seed fixes the RNG
// so results are reproducible; production callers pass a constant.
func New(store *profile.ProfileStore, settings Settings, seed int64) *Detector {
	return &Detector{store: store, settings: settings, seed: seed}
}

// DetectAll normalizes text, extracts its n-grams, and runs the
// configured number of Monte-Carlo trials, returning every language
// whose averaged probability exceeds ProbThreshold, sorted by
// descending probability and capped at Max (0 means unlimited).
//
// It returns (nil, nil) when the admission pattern rejects the text or
// no recognizable n-gram is found — that is not an error, it means the
// input carries no detectable signal.
func (d *Detector) DetectAll(text string) ([]LanguageResult, error) {
	normalized, admitted := d.Normalize(text)
	if !admitted {
		return nil, nil
	}

	grams := d.ExtractGrams(normalized)
	if len(grams) == 0 {
		return nil, nil
	}

	overall, err := d.RunTrials(grams)
	if err != nil {
		return nil, err
	}
	return d.Finalize(overall), nil
}

// RunTrials runs the configured number of Monte-Carlo trials over an
// arbitrary n-gram list and averages them, using the Detector's own
// seed and settings. It is the piece of DetectAll that a variant with
// its own gram-extraction strategy reuses, so every variant's
// inference still goes through the same sampling and convergence rule
// as the base Detector.
func (d *Detector) RunTrials(grams []string) ([]float64, error) {
	l := d.store.Len()
	if l == 0 {
		return nil, &InvariantError{Message: "profile store has no languages"}
	}

	trials := d.settings.NumberOfTrials
	if trials <= 0 {
		trials = 1
	}

	rng := rand.New(rand.NewSource(d.seed))
	overall := make([]float64, l)
	for t := 0; t < trials; t++ {
		pi, err := d.runTrial(rng, grams, l)
		if err != nil {
			return nil, err
		}
		for j := range overall {
			overall[j] += pi[j] / float64(trials)
		}
	}
	return overall, nil
}

// Store returns the ProfileStore the Detector was built with.
func (d *Detector) Store() *profile.ProfileStore {
	return d.store
}

// Settings returns the Detector's configuration.
func (d *Detector) Settings() Settings {
	return d.settings
}

// Normalize runs the Vietnamese composition pre-pass and the admission
// pattern check a variant needs before extracting its own n-grams. The
// second return value is false when the admission pattern rejects the
// normalized text.
func (d *Detector) Normalize(text string) (string, bool) {
	normalized := charnorm.NormalizeVietnamese(text)
	if d.settings.Pattern != nil && !d.settings.Pattern.MatchString(normalized) {
		return normalized, false
	}
	return normalized, true
}

// Finalize applies the threshold filter, the language map, the
// descending sort, and the Max cap to a raw per-language probability
// vector in store-index order, turning it into the public result
// shape. Variants that compute their own probability vector by a
// different inference strategy still finish through Finalize so they
// stay consistent with DetectAll's output contract.
func (d *Detector) Finalize(overall []float64) []LanguageResult {
	results := make([]LanguageResult, 0, len(overall))
	for j, code := range d.store.Languages() {
		if p := overall[j]; p > d.settings.ProbThreshold {
			results = append(results, LanguageResult{Code: code, Probability: p})
		}
	}
	results = applyLanguageMap(results, d.settings.LanguageMap)

	sort.SliceStable(results, func(i, k int) bool {
		return results[i].Probability > results[k].Probability
	})
	if d.settings.Max > 0 && len(results) > d.settings.Max {
		results = results[:d.settings.Max]
	}
	return results
}

// ExtractGrams replaces every non-word code point with a space, pushes
// the result through an n-gram generator, and keeps every 1/2/3-gram
// the profile store actually recognizes. Callers are expected to have
// already run Normalize.
func (d *Detector) ExtractGrams(text string) []string {
	gen := ngram.New()
	var grams []string
	for _, r := range text {
		if !isWordRune(r) {
			r = ' '
		}
		gen.Push(r)
		for n := 1; n <= 3; n++ {
			g := gen.Get(n)
			if g == ngram.NullToken {
				continue
			}
			if _, ok := d.store.Lookup(g); ok {
				grams = append(grams, g)
			}
		}
	}
	return grams
}

func isWordRune(r rune) bool {
	return isLetterDigitOrMark(r) || r == '_'
}

// runTrial executes a single sampling pass: repeatedly draw a random
// n-gram from grams, multiply every language's running weight by
// (alpha/baseFreq + that language's probability for the n-gram), and
// renormalize every 5 iterations so the weights stay bounded. The
// trial stops once the leading candidate's probability exceeds
// ConvThreshold or IterationLimit is reached.
func (d *Detector) runTrial(rng *rand.Rand, grams []string, l int) ([]float64, error) {
	pi := make([]float64, l)
	for j := range pi {
		pi[j] = 1.0 / float64(l)
	}

	alpha := rng.NormFloat64()*d.settings.AlphaWidth + d.settings.Alpha
	weight := alpha / d.settings.BaseFreq

	limit := d.settings.IterationLimit
	if limit <= 0 {
		limit = 1
	}

	for i := 0; i < limit; i++ {
		g := grams[rng.Intn(len(grams))]
		vec, ok := d.store.Lookup(g)
		if !ok {
			return nil, &InvariantError{Message: "sampled n-gram missing from profile store: " + g}
		}
		if len(vec) != l {
			return nil, &InvariantError{Message: "profile vector length mismatch for n-gram " + g}
		}
		for j := 0; j < l; j++ {
			pi[j] *= weight + vec[j]
		}

		if (i+1)%5 == 0 {
			renormalize(pi)
			if maxOf(pi) > d.settings.ConvThreshold {
				return pi, nil
			}
		}
	}
	renormalize(pi)
	return pi, nil
}

// RunOrdered runs a single deterministic inference pass over grams in
// the order given, rather than the usual random sampling with
// replacement: each n-gram contributes at most once, and the pass
// stops early once the leading candidate exceeds ConvThreshold at a
// renormalization step. It shares the renormalization rule with the
// Monte-Carlo trial loop but weights with the mean Alpha (no Gaussian
// draw), and there is no averaging over repeated trials.
func (d *Detector) RunOrdered(grams []string) ([]float64, error) {
	l := d.store.Len()
	if l == 0 {
		return nil, &InvariantError{Message: "profile store has no languages"}
	}
	pi := make([]float64, l)
	for j := range pi {
		pi[j] = 1.0 / float64(l)
	}

	weight := d.settings.Alpha / d.settings.BaseFreq
	for i, g := range grams {
		vec, ok := d.store.Lookup(g)
		if !ok {
			return nil, &InvariantError{Message: "n-gram missing from profile store: " + g}
		}
		if len(vec) != l {
			return nil, &InvariantError{Message: "profile vector length mismatch for n-gram " + g}
		}
		for j := 0; j < l; j++ {
			pi[j] *= weight + vec[j]
		}
		if (i+1)%5 == 0 {
			renormalize(pi)
			if maxOf(pi) > d.settings.ConvThreshold {
				return pi, nil
			}
		}
	}
	renormalize(pi)
	return pi, nil
}

func renormalize(pi []float64) {
	sum := 0.0
	for _, v := range pi {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for j := range pi {
		pi[j] /= sum
	}
}

func maxOf(pi []float64) float64 {
	m := 0.0
	for _, v := range pi {
		if v > m {
			m = v
		}
	}
	return m
}
