package charnorm

import (
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeVietnamese reassembles decomposed combining-mark sequences
// (e.g. base vowel + tone mark typed as two runes) into their canonical
// precomposed form. It is a pre-pass run before block folding, so that
// a letter and its diacritics reach Fold as a single code point. Fold
// keeps that code point only when it lies in Latin-1 Supplement (e.g.
// é, ã); Vietnamese letters from the Latin Extended blocks (e.g. ư, ơ,
// ệ) fold to Marker.
//
// NFC is idempotent, so repeated application is a no-op past the first
// pass.
func NormalizeVietnamese(s string) string {
	out, _, err := transform.String(norm.NFC, s)
	if err != nil {
		return s
	}
	return out
}
