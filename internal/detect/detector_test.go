package detect

import (
	"sync"
	"testing"

	"github.com/textplane/langdetect/internal/profile"
)

func buildTestStore(t *testing.T) *profile.ProfileStore {
	t.Helper()
	en := profile.LangProfile{
		Name:   "en",
		NWords: [3]int64{1000, 0, 0},
		Freq:   map[string]int64{"e": 130, "t": 90, "a": 80, "o": 75, "n": 70, " ": 120},
	}
	zz := profile.LangProfile{
		Name:   "zz",
		NWords: [3]int64{1000, 0, 0},
		Freq:   map[string]int64{"z": 130, "q": 90, "x": 80, "k": 75, "w": 70, " ": 60},
	}
	store, err := profile.NewProfileStore([]profile.LangProfile{en, zz})
	if err != nil {
		t.Fatalf("unexpected error building store: %v", err)
	}
	return store
}

func TestDetectAllFavorsMatchingLanguage(t *testing.T) {
	store := buildTestStore(t)
	settings := DefaultSettings()
	settings.ProbThreshold = 0.05
	d := New(store, settings, 42)

	results, err := d.DetectAll("eat a toe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Code != "en" {
		t.Errorf("top result = %q, want %q", results[0].Code, "en")
	}
}

func TestDetectAllIsDeterministic(t *testing.T) {
	store := buildTestStore(t)
	d := New(store, DefaultSettings(), 42)

	first, err := d.DetectAll("eat a toe near a zoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := d.DetectAll("eat a toe near a zoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDetectAllConcurrentCallsStayDeterministic(t *testing.T) {
	store := buildTestStore(t)
	d := New(store, DefaultSettings(), 42)

	const workers = 8
	var wg sync.WaitGroup
	results := make([][]LanguageResult, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			r, err := d.DetectAll("eat a toe near a zoo")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[idx] = r
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if len(results[i]) != len(results[0]) {
			t.Fatalf("worker %d result length differs", i)
		}
		for j := range results[0] {
			if results[i][j] != results[0][j] {
				t.Errorf("worker %d result %d differs: %+v vs %+v", i, j, results[i][j], results[0][j])
			}
		}
	}
}

func TestDetectAllEmptyTextYieldsNoResult(t *testing.T) {
	store := buildTestStore(t)
	d := New(store, DefaultSettings(), 42)

	results, err := d.DetectAll("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for empty text, got %+v", results)
	}
}

func TestDetectAllOutOfVocabularyTextYieldsNoResult(t *testing.T) {
	store := buildTestStore(t)
	d := New(store, DefaultSettings(), 42)

	results, err := d.DetectAll("!@#$%^&*()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for a text with no recognizable n-grams, got %+v", results)
	}
}

func TestDetectAllRespectsMax(t *testing.T) {
	store := buildTestStore(t)
	settings := DefaultSettings()
	settings.ProbThreshold = 0.0
	settings.Max = 1
	d := New(store, settings, 42)

	results, err := d.DetectAll("eat a toe near a zoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) > 1 {
		t.Errorf("expected at most 1 result, got %d", len(results))
	}
}

func TestDetectAllAppliesLanguageMap(t *testing.T) {
	store := buildTestStore(t)
	settings := DefaultSettings()
	settings.ProbThreshold = 0.05
	settings.LanguageMap = map[string]string{"en": "eng"}
	d := New(store, settings, 42)

	results, err := d.DetectAll("eat a toe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Code != "eng" {
		t.Errorf("top result code = %q, want remapped %q", results[0].Code, "eng")
	}
}

func TestResultsAreSortedDescending(t *testing.T) {
	store := buildTestStore(t)
	settings := DefaultSettings()
	settings.ProbThreshold = 0.0
	d := New(store, settings, 42)

	results, err := d.DetectAll("eat a toe near a zoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Probability < results[i].Probability {
			t.Errorf("results not sorted descending at index %d: %+v", i, results)
		}
	}
}
