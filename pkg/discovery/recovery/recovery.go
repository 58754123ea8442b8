package recovery

import (
	"context"
	"fmt"

	"rental-asistente-be/pkg/discovery/classifier"
	"rental-asistente-be/pkg/discovery/index"
	"rental-asistente-be/pkg/discovery/suggest"
	"rental-asistente-be/pkg/discovery/textnorm"
)

// Outcome is what a recovery attempt produced. Either the second
// classification pass matched, or there are spelling suggestions, or both
// are empty ("no match" — still a successful attempt).
type Outcome struct {
	Classification classifier.Result
	Suggestions    []string
}

// BestSuggestion returns the top candidate, or "" when there is none usable.
// An empty-string first candidate counts as "no usable suggestion" even when
// the list itself is non-empty.
func (o *Outcome) BestSuggestion() string {
	if o == nil || len(o.Suggestions) == 0 {
		return ""
	}
	return o.Suggestions[0]
}

// Attempt re-runs classification over the original message and, failing a
// match, generates corrections for the query token closest to the catalog
// vocabulary. A panic anywhere inside the attempt is returned as an error so
// the caller can tell "recovery errored" apart from "recovered to no match";
// both fall back to the generic catalog prompt at the dialogue layer.
func Attempt(ctx context.Context, cls *classifier.Classifier, cache *index.Cache, message string) (outcome *Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = nil
			err = fmt.Errorf("recovery: %v", r)
		}
	}()

	out := &Outcome{Classification: cls.Classify(ctx, message)}
	if out.Classification.Matched() {
		return out, nil
	}

	snap, err := cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}

	vocab := snap.Vocabulary()
	tokens := textnorm.Normalize(message)
	if hint := suggest.ClosestToken(vocab, tokens); hint != "" {
		out.Suggestions = suggest.Suggestions(vocab, hint)
	}
	return out, nil
}
