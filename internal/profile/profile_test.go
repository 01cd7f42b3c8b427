package profile

import "testing"

func TestValidateRejectsOversizedNGram(t *testing.T) {
	p := LangProfile{
		Name:   "en",
		NWords: [3]int64{10, 10, 10},
		Freq:   map[string]int64{"abcd": 1},
	}
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for a 4-rune n-gram key")
	}
}

func TestValidateRejectsNegativeCount(t *testing.T) {
	p := LangProfile{
		Name:   "en",
		NWords: [3]int64{10, 10, 10},
		Freq:   map[string]int64{"a": -1},
	}
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for a negative count")
	}
}

func TestValidateAcceptsPrunedProfile(t *testing.T) {
	// NWords need not equal the sum of Freq counts: pruning during
	// training routinely drops low-frequency n-grams.
	p := LangProfile{
		Name:   "en",
		NWords: [3]int64{1000, 1000, 1000},
		Freq:   map[string]int64{"a": 1, "th": 5, "the": 3},
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
