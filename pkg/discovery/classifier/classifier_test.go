package classifier

import (
	"context"
	"errors"
	"testing"

	"rental-asistente-be/pkg/discovery/index"
)

type stubSource struct {
	items []index.Item
	err   error
}

func (s *stubSource) ListItems(ctx context.Context) ([]index.Item, error) {
	return s.items, s.err
}

func newClassifier(items ...index.Item) *Classifier {
	return New(index.NewCache(&stubSource{items: items}))
}

func soundEquipment() index.Item {
	return index.Item{
		ID:          1,
		Service:     "Alquiler",
		Name:        "Equipo de Sonido",
		Description: "equipo completo de sonido profesional",
		Price:       150,
	}
}

func TestClassifySingleServiceScenario(t *testing.T) {
	c := newClassifier(soundEquipment())

	res := c.Classify(context.Background(), "necesito alquiler")
	if !res.Matched() {
		t.Fatal("expected a match for 'necesito alquiler'")
	}
	if res.Service != "Alquiler" {
		t.Errorf("Service = %q, want %q", res.Service, "Alquiler")
	}
	if res.Score < 0.12 {
		t.Errorf("Score = %f, want >= 0.12", res.Score)
	}
}

func TestClassifyNoSharedVocabulary(t *testing.T) {
	c := newClassifier(soundEquipment())

	res := c.Classify(context.Background(), "xyzabc123")
	if res.Matched() {
		t.Errorf("expected empty result, got %+v", res)
	}
	if res.Score != 0 {
		t.Errorf("Score = %f, want 0", res.Score)
	}
}

func TestClassifyEmptyMessage(t *testing.T) {
	c := newClassifier(soundEquipment())
	if res := c.Classify(context.Background(), "   "); res.Matched() {
		t.Errorf("expected empty result for blank message, got %+v", res)
	}
}

func TestClassifyPicksBestService(t *testing.T) {
	c := newClassifier(
		soundEquipment(),
		index.Item{ID: 2, Service: "Montaje", Name: "Tarima Modular", Description: "tarima para escenario y eventos"},
		index.Item{ID: 3, Service: "Montaje", Name: "Escenario Grande", Description: "escenario profesional con tarima"},
	)

	res := c.Classify(context.Background(), "tarima para escenario")
	if res.Service != "Montaje" {
		t.Errorf("Service = %q, want Montaje (score %f)", res.Service, res.Score)
	}
}

func TestScoresAreBounded(t *testing.T) {
	src := &stubSource{items: []index.Item{
		soundEquipment(),
		{ID: 2, Service: "Montaje", Name: "Tarima", Description: "tarima escenario"},
	}}
	snap, err := index.NewCache(src).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	queries := []string{
		"equipo de sonido profesional",
		"equipo completo de sonido profesional alquiler",
		"tarima",
		"sonido tarima escenario",
		"nada que ver con el catalogo",
	}
	for _, q := range queries {
		for _, doc := range snap.Docs {
			score := ScoreAgainst(q, doc, snap)
			if score < 0 || score > 1 {
				t.Errorf("score(%q, item %d) = %f, out of [0,1]", q, doc.ItemID, score)
			}
		}
	}
}

func TestScoringIsOrderIndependent(t *testing.T) {
	src := &stubSource{items: []index.Item{soundEquipment()}}
	snap, err := index.NewCache(src).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	doc := snap.Docs[0]
	a := ScoreAgainst("equipo sonido profesional", doc, snap)
	b := ScoreAgainst("profesional sonido equipo", doc, snap)
	if a != b {
		t.Errorf("token order changed the score: %f vs %f", a, b)
	}
}

func TestExactDocumentTextScoresHigh(t *testing.T) {
	src := &stubSource{items: []index.Item{soundEquipment()}}
	snap, err := index.NewCache(src).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	score := ScoreAgainst("alquiler equipo de sonido equipo completo de sonido profesional", doc0(snap), snap)
	if score < 0.99 || score > 1.0000001 {
		t.Errorf("self-similarity = %f, want ~1", score)
	}
}

func doc0(snap *index.Snapshot) index.Document { return snap.Docs[0] }

func TestClassifySwallowsIndexErrors(t *testing.T) {
	c := New(index.NewCache(&stubSource{err: errors.New("catalog unavailable")}))
	if res := c.Classify(context.Background(), "necesito alquiler"); res.Matched() {
		t.Errorf("expected empty result when the index cannot build, got %+v", res)
	}
}
