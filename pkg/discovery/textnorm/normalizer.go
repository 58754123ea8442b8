package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Spanish stopwords plus a few filler verbs that add no signal to catalog
// matching. The set is fixed: changing it invalidates every cached document
// vector, so additions must go together with an index rebuild.
var stopwords = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "las": {}, "el": {}, "los": {},
	"un": {}, "una": {}, "unos": {}, "unas": {}, "al": {}, "lo": {},
	"en": {}, "con": {}, "por": {}, "para": {}, "que": {}, "se": {},
	"su": {}, "sus": {}, "mi": {}, "mis": {}, "tu": {}, "tus": {},
	"es": {}, "son": {}, "hay": {}, "muy": {}, "mas": {}, "como": {},
	"quiero": {}, "quisiera": {}, "deseo": {}, "favor": {}, "hola": {},
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases the text, strips diacritics, splits on
// non-alphanumeric boundaries and drops short tokens and stopwords.
// It is pure: same input, same output, and it never fails — at worst it
// returns an empty slice.
func Normalize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	folded := strings.ToLower(text)
	if stripped, _, err := transform.String(stripAccents, folded); err == nil {
		folded = stripped
	}

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len([]rune(tok)) < 2 {
			return
		}
		if _, skip := stopwords[tok]; skip {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// TermFrequencies folds normalized tokens into a token -> count map.
func TermFrequencies(tokens []string) map[string]int {
	if len(tokens) == 0 {
		return map[string]int{}
	}
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}
