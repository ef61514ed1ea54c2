package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accent folding chain: decompose, drop combining marks, case fold. Mirrors
// NFKD + ascii-ignore normalization so heuristic keyword tables keep matching.
var foldChain = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	cases.Fold(),
)

// Normalize collapses every whitespace run (newlines and tabs included) to a
// single space and trims the ends. All classification and hashing operates on
// this canonical form.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// FoldAccents lowercases text and strips accents and any remaining non-ASCII
// runes ("Saudações" -> "saudacoes"). Used only for keyword matching.
func FoldAccents(text string) string {
	folded, _, err := transform.String(foldChain, text)
	if err != nil {
		folded = strings.ToLower(text)
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
