package classifier

import (
	"context"
	"fmt"
	"math"

	"rental-asistente-be/pkg/discovery/index"
	"rental-asistente-be/pkg/discovery/textnorm"
)

// acceptThreshold is the minimum cosine score a service must reach before the
// assistant treats the match as real instead of noise.
const acceptThreshold = 0.12

// Result is the outcome of classifying one user message.
type Result struct {
	Service string  `json:"service"`
	Score   float64 `json:"score"`
}

// Matched reports whether any service cleared the acceptance threshold.
func (r Result) Matched() bool {
	return r.Service != ""
}

// Classifier scores free-text messages against the catalog index.
type Classifier struct {
	cache *index.Cache
}

func New(cache *index.Cache) *Classifier {
	return &Classifier{cache: cache}
}

// Classify tokenizes the message and returns the best-matching service, or an
// empty Result when nothing clears the threshold. It never fails outward:
// index errors and panics inside scoring degrade to "no match".
func (c *Classifier) Classify(ctx context.Context, message string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
		}
	}()

	qtf := textnorm.TermFrequencies(textnorm.Normalize(message))
	if len(qtf) == 0 {
		return Result{}
	}

	snap, err := c.cache.Get(ctx)
	if err != nil || snap.TotalDocs == 0 {
		return Result{}
	}

	best := Result{}
	serviceScores := map[string]float64{}
	for _, doc := range snap.Docs {
		score := cosineScore(qtf, doc.TermFreq, snap)
		// a service is as good as its best sub-item
		if score > serviceScores[doc.Service] {
			serviceScores[doc.Service] = score
		}
	}
	for service, score := range serviceScores {
		if score > best.Score || (score == best.Score && best.Service != "" && service < best.Service) {
			best = Result{Service: service, Score: score}
		}
	}

	if best.Score < acceptThreshold {
		return Result{}
	}
	return best
}

// ScoreAgainst exposes the raw cosine score of a message against a single
// document vector. Used by tests to pin down the scoring properties.
func ScoreAgainst(message string, doc index.Document, snap *index.Snapshot) float64 {
	return cosineScore(textnorm.TermFrequencies(textnorm.Normalize(message)), doc.TermFreq, snap)
}

// cosineScore computes the idf-weighted cosine between the query term
// frequencies and one document vector. Terms absent from the catalog (df 0)
// contribute nothing to either side. A zero denominator yields 0.0.
func cosineScore(qtf map[string]int, tf map[string]int, snap *index.Snapshot) float64 {
	var numerator, queryNormSq float64
	for term, qCount := range qtf {
		idf := inverseDocFreq(term, snap)
		if idf == 0 {
			continue
		}
		qw := float64(qCount) * idf
		queryNormSq += qw * qw
		if dCount, ok := tf[term]; ok {
			numerator += qw * float64(dCount) * idf
		}
	}

	var docNormSq float64
	for term, dCount := range tf {
		idf := inverseDocFreq(term, snap)
		if idf == 0 {
			continue
		}
		dw := float64(dCount) * idf
		docNormSq += dw * dw
	}

	denominator := math.Sqrt(queryNormSq * docNormSq)
	if denominator == 0 {
		return 0.0
	}
	return numerator / denominator
}

// inverseDocFreq returns 1 + ln(N/df), or 0 for unknown terms. The +1
// smoothing keeps terms present in every document (df == N) from collapsing
// to weight zero, which would make a one-item catalog unmatchable.
func inverseDocFreq(term string, snap *index.Snapshot) float64 {
	df := snap.DocFreq[term]
	if df <= 0 {
		return 0
	}
	if df > snap.TotalDocs {
		// cache inconsistency: df can never exceed the document count
		panic(fmt.Sprintf("index: df(%s)=%d exceeds %d documents", term, df, snap.TotalDocs))
	}
	return 1 + math.Log(float64(snap.TotalDocs)/float64(df))
}
