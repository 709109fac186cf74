package foldmap

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a candidate key to its canonical form. All equality and
// lookup decisions inside a Map are made on the canonical form, never on the
// spelling the caller supplied.
//
// Implementations must be pure: deterministic, total over strings, and free
// of side effects on their input. They must also be idempotent, so that
// Normalize(Normalize(k)) == Normalize(k) for every k; Map relies on this to
// merge already-canonical entries without re-deriving their keys.
type Normalizer interface {
	// Normalize returns the canonical form of key.
	Normalize(key string) string
}

// NormalizerFunc adapts a plain function to the Normalizer interface.
type NormalizerFunc func(key string) string

// Normalize calls f(key).
func (f NormalizerFunc) Normalize(key string) string { return f(key) }

// Fold is the default policy: simple lowercasing via strings.ToLower.
// It handles ASCII and single-rune Unicode case mappings, which covers
// typical header, config, and identifier keys.
var Fold Normalizer = NormalizerFunc(strings.ToLower)

// Exact is the identity policy. A Map built with Exact behaves as an
// ordinary ordered map with case-sensitive keys.
var Exact Normalizer = NormalizerFunc(func(key string) string { return key })

// UnicodeFold applies full Unicode case folding, including multi-rune
// expansions that plain lowercasing misses (e.g. "Straße" and "STRASSE"
// fold to the same canonical key).
var UnicodeFold Normalizer = NormalizerFunc(func(key string) string {
	return cases.Fold().String(key)
})

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCIIFold lowercases and strips combining accents, so "Élodie" and
// "elodie" address the same entry. Input that fails to transform falls back
// to plain lowercasing.
var ASCIIFold Normalizer = NormalizerFunc(func(key string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(key))
	if err != nil {
		return strings.ToLower(key)
	}
	return folded
})
