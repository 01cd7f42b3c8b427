package detect

import (
	"testing"

	"github.com/textplane/langdetect/internal/profile"
)

func buildDefaultProfileStore(t *testing.T) *profile.ProfileStore {
	t.Helper()
	languages := []string{"en", "vi", "ja", "ru", "zh-cn", "zh-tw"}
	profiles, err := profile.LoadDir("../../data/profiles/default", languages)
	if err != nil {
		t.Fatalf("loading default profile set: %v", err)
	}
	store, err := profile.NewProfileStore(profiles)
	if err != nil {
		t.Fatalf("building profile store: %v", err)
	}
	return store
}

func indexOf(results []LanguageResult, code string) int {
	for i, r := range results {
		if r.Code == code {
			return i
		}
	}
	return -1
}

func TestGoldenScenarioEnglishGreeting(t *testing.T) {
	d := New(buildDefaultProfileStore(t), DefaultSettings(), 0)

	results, err := d.DetectAll("Hello, world!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Code != "en" {
		t.Fatalf("top result = %q, want %q", results[0].Code, "en")
	}
	if results[0].Probability < 0.99 {
		t.Errorf("en probability = %v, want >= 0.99", results[0].Probability)
	}
}

func TestGoldenScenarioJapaneseOutranksChineseVariants(t *testing.T) {
	d := New(buildDefaultProfileStore(t), DefaultSettings(), 0)

	results, err := d.DetectAll("これは日本語です")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Code != "ja" {
		t.Fatalf("top result = %q, want %q", results[0].Code, "ja")
	}
	jaIdx := indexOf(results, "ja")
	for _, competitor := range []string{"zh-cn", "zh-tw"} {
		if cIdx := indexOf(results, competitor); cIdx != -1 && cIdx < jaIdx {
			t.Errorf("%s outranked ja: %+v", competitor, results)
		}
	}
}

func TestGoldenScenarioRussianText(t *testing.T) {
	d := New(buildDefaultProfileStore(t), DefaultSettings(), 0)

	results, err := d.DetectAll("Это русский текст для проверки.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Code != "ru" {
		t.Fatalf("top result = %q, want %q", results[0].Code, "ru")
	}
}

func TestGoldenScenarioEmptyTextYieldsNoResult(t *testing.T) {
	d := New(buildDefaultProfileStore(t), DefaultSettings(), 0)

	results, err := d.DetectAll("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for empty text, got %+v", results)
	}
}

func TestGoldenScenarioDigitsAndPunctuationYieldNoResult(t *testing.T) {
	d := New(buildDefaultProfileStore(t), DefaultSettings(), 0)

	results, err := d.DetectAll("1234567890 ,.,.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for a text with no in-vocabulary n-grams, got %+v", results)
	}
}

func TestGoldenScenarioConcurrentCallsReturnByteIdenticalResults(t *testing.T) {
	d := New(buildDefaultProfileStore(t), DefaultSettings(), 0)

	const calls = 8
	results := make([][]LanguageResult, calls)
	done := make(chan int, calls)
	for i := 0; i < calls; i++ {
		go func(idx int) {
			r, err := d.DetectAll("Это русский текст для проверки.")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[idx] = r
			done <- idx
		}(i)
	}
	for i := 0; i < calls; i++ {
		<-done
	}

	for i := 1; i < calls; i++ {
		if len(results[i]) != len(results[0]) {
			t.Fatalf("call %d result length differs", i)
		}
		for j := range results[0] {
			if results[i][j] != results[0][j] {
				t.Errorf("call %d result %d differs: %+v vs %+v", i, j, results[i][j], results[0][j])
			}
		}
	}
}
