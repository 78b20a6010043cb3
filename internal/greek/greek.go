// Package greek implements text folding for Greek user input.
//
// Expense descriptions and match rule patterns are typed by hand, sometimes
// with accents ("ΔΕΗ Νοέμβριος"), sometimes without, sometimes in the wrong
// case. Fold maps all of these to one canonical form so matching does not
// depend on how carefully the text was typed.
package greek

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes the text and removes all combining marks, turning
// "Νοέμβριος" into "Νοεμβριος".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the text lowercased and with all diacritics removed.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8. If it does, match
		// on the raw text instead of dropping the input.
		folded = s
	}

	// Lowercasing "Σ" yields the medial sigma, so fold the final form to the
	// medial one as well to make "ΟΔΟΣ" and "οδός" compare equal.
	return strings.ReplaceAll(strings.ToLower(folded), "ς", "σ")
}

// Contains reports whether substr occurs in s, ignoring case and diacritics.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
