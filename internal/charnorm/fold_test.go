package charnorm

import "testing"

func TestFoldBasicLatin(t *testing.T) {
	cases := []struct {
		in   rune
		want rune
	}{
		{'A', 'a'},
		{'z', 'z'},
		{'5', Marker},
		{' ', Marker},
		{'!', Marker},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldHighSignalScripts(t *testing.T) {
	cases := []rune{'日', '本', '語', '한', '글'}
	for _, r := range cases {
		if got := Fold(r); got != r {
			t.Errorf("Fold(%q) = %q, want unchanged", r, got)
		}
	}
}

func TestFoldSingleLanguageScriptPunctuation(t *testing.T) {
	if got := Fold('،'); got != Marker { // Arabic comma, a Po punctuation rune
		t.Errorf("Fold(Arabic comma) = %q, want Marker", got)
	}
	if got := Fold('ب'); got != 'ب' { // ARABIC LETTER BEH, kept as-is
		t.Errorf("Fold(beh) = %q, want unchanged", got)
	}
}

func TestFoldUnassignedCollapsesToMarker(t *testing.T) {
	if got := Fold('￿'); got != Marker { // U+FFFF noncharacter
		t.Errorf("Fold(noncharacter) = %q, want Marker", got)
	}
}

func TestFoldIsTotal(t *testing.T) {
	for r := rune(0); r < 0x10000; r += 37 {
		_ = Fold(r)
	}
}

func TestNormalizeVietnameseComposesCombiningMarks(t *testing.T) {
	decomposed := "té" // "te" + combining acute accent
	composed := NormalizeVietnamese(decomposed)
	want := "té" // "t" + precomposed "é"
	if composed != want {
		t.Errorf("NormalizeVietnamese(%q) = %q, want %q", decomposed, composed, want)
	}
	if len([]rune(composed)) != len([]rune(decomposed))-1 {
		t.Errorf("expected composition to merge the combining mark: %q -> %q", decomposed, composed)
	}
}

func TestNormalizeVietnameseIdempotent(t *testing.T) {
	decomposed := "Viẹt Nam"
	once := NormalizeVietnamese(decomposed)
	twice := NormalizeVietnamese(once)
	if once != twice {
		t.Errorf("NormalizeVietnamese not idempotent: %q != %q", once, twice)
	}
}
