// Package charnorm implements the character-level normalization the
// detector runs before n-grams are extracted: block-based folding and
// Vietnamese diacritic reassembly. Both operations are pure and total.
package charnorm

import "unicode"

// Marker is the sentinel rune substituted for characters that carry no
// language signal (punctuation, digits, control characters, unassigned
// code points). It also represents the word-boundary marker inserted
// at text edges by the n-gram generator.
const Marker = ' '

type action int

const (
	actionBasicLatin action = iota
	actionLatin1Supplement
	actionKeep       // high-signal blocks kept unconditionally (CJK, Hangul)
	actionKeepScript // single-language scripts: kept except punctuation/symbol subranges
)

// Basic Latin and Latin-1 Supplement are Unicode *blocks*, not scripts,
// so they are not exposed as unicode.RangeTable values by the standard
// library the way Arabic, Cyrillic etc. are (those double as scripts).
// The two block tables are declared literally from the Unicode block
// boundaries.
var basicLatin = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0000, Hi: 0x007F, Stride: 1}},
}

var latin1Supplement = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0080, Hi: 0x00FF, Stride: 1}},
}

// highSignalScripts are kept as-is with no exception: every code point
// in them carries language signal.
var highSignalScripts = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hangul,
}

// singleLanguageScripts are each associated with one dominant language;
// kept as-is except for punctuation/symbol/control sub-ranges, which
// fold to Marker like any other decorative code point.
var singleLanguageScripts = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Devanagari,
	unicode.Thai,
	unicode.Hebrew,
	unicode.Greek,
	unicode.Cyrillic,
	unicode.Armenian,
	unicode.Tamil,
	unicode.Telugu,
	unicode.Kannada,
	unicode.Malayalam,
}

type blockRule struct {
	table  *unicode.RangeTable
	action action
}

// blockTable is the canonical code-point-range → action reference: the
// fold decision is always a table lookup, never a per-character branch.
var blockTable = buildBlockTable()

func buildBlockTable() []blockRule {
	rules := []blockRule{
		{basicLatin, actionBasicLatin},
		{latin1Supplement, actionLatin1Supplement},
	}
	for _, t := range highSignalScripts {
		rules = append(rules, blockRule{t, actionKeep})
	}
	for _, t := range singleLanguageScripts {
		rules = append(rules, blockRule{t, actionKeepScript})
	}
	return rules
}

// Fold maps a raw code point to its canonical form: a replacement rune
// or Marker. Everything outside the reference table above — unassigned
// code points, general punctuation/symbol blocks, anything not
// explicitly named — collapses to Marker.
func Fold(r rune) rune {
	for _, rule := range blockTable {
		if !unicode.Is(rule.table, r) {
			continue
		}
		switch rule.action {
		case actionBasicLatin:
			return foldBasicLatin(r)
		case actionLatin1Supplement:
			if isDecorative(r) {
				return Marker
			}
			return r
		case actionKeep:
			return r
		case actionKeepScript:
			if isDecorative(r) {
				return Marker
			}
			return r
		}
	}
	return Marker
}

func foldBasicLatin(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r >= 'a' && r <= 'z':
		return r
	default:
		return Marker
	}
}

func isDecorative(r rune) bool {
	return unicode.IsControl(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}
