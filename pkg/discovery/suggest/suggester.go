package suggest

import (
	"sort"

	"rental-asistente-be/pkg/discovery/textnorm"
)

const maxCandidates = 5

// Suggestions returns spelling-tolerant corrections for a low-confidence
// token, ordered best first. A vocabulary term qualifies when its edit
// distance to the hint is small relative to the hint length, or when the two
// share a prefix of at least three runes. The result is deterministic for a
// given vocabulary and hint, and empty (never an error) when nothing is close.
func Suggestions(vocab []string, hint string) []string {
	norm := textnorm.Normalize(hint)
	if len(norm) == 0 {
		return nil
	}
	hint = norm[0]

	type candidate struct {
		term     string
		distance int
		prefix   int
	}

	budget := editBudget(hint)
	var candidates []candidate
	for _, term := range vocab {
		if term == hint {
			continue
		}
		d := levenshtein(hint, term)
		p := commonPrefix(hint, term)
		if d > budget && p < 3 {
			continue
		}
		candidates = append(candidates, candidate{term: term, distance: d, prefix: p})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		if candidates[i].prefix != candidates[j].prefix {
			return candidates[i].prefix > candidates[j].prefix
		}
		return candidates[i].term < candidates[j].term
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.term
	}
	return out
}

// ClosestToken picks the query token most recognizably close to the catalog
// vocabulary, or "" when no token is close enough to be worth correcting.
func ClosestToken(vocab []string, tokens []string) string {
	best := ""
	bestDistance := -1
	for _, tok := range tokens {
		for _, term := range vocab {
			d := levenshtein(tok, term)
			if d == 0 {
				// the token is already catalog vocabulary; nothing to correct
				continue
			}
			if d > editBudget(tok) && commonPrefix(tok, term) < 3 {
				continue
			}
			if bestDistance == -1 || d < bestDistance {
				best = tok
				bestDistance = d
			}
		}
	}
	return best
}

func editBudget(s string) int {
	b := len([]rune(s)) / 4
	if b < 1 {
		b = 1
	}
	return b
}

func commonPrefix(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
