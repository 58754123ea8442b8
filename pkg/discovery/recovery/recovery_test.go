package recovery

import (
	"context"
	"errors"
	"testing"

	"rental-asistente-be/pkg/discovery/classifier"
	"rental-asistente-be/pkg/discovery/index"
)

type stubSource struct {
	items []index.Item
	err   error
}

func (s *stubSource) ListItems(ctx context.Context) ([]index.Item, error) {
	return s.items, s.err
}

func fixtureCache() *index.Cache {
	return index.NewCache(&stubSource{items: []index.Item{
		{ID: 1, Service: "Alquiler", Name: "Equipo de Sonido", Description: "equipo completo de sonido profesional"},
		{ID: 2, Service: "Montaje", Name: "Tarima Modular", Description: "tarima para escenario"},
	}})
}

func TestAttemptSuggestsForTypo(t *testing.T) {
	cache := fixtureCache()
	out, err := Attempt(context.Background(), classifier.New(cache), cache, "necesito soniido")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if out.BestSuggestion() != "sonido" {
		t.Errorf("BestSuggestion = %q, want %q (all: %v)", out.BestSuggestion(), "sonido", out.Suggestions)
	}
}

func TestAttemptMatchesOnSecondPass(t *testing.T) {
	cache := fixtureCache()
	out, err := Attempt(context.Background(), classifier.New(cache), cache, "tarima escenario")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if !out.Classification.Matched() || out.Classification.Service != "Montaje" {
		t.Errorf("Classification = %+v, want Montaje match", out.Classification)
	}
}

func TestAttemptNoMatchNoSuggestions(t *testing.T) {
	cache := fixtureCache()
	out, err := Attempt(context.Background(), classifier.New(cache), cache, "xyzabc123")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if out.Classification.Matched() {
		t.Errorf("unexpected match: %+v", out.Classification)
	}
	if len(out.Suggestions) != 0 {
		t.Errorf("unexpected suggestions: %v", out.Suggestions)
	}
	if out.BestSuggestion() != "" {
		t.Errorf("BestSuggestion = %q, want empty", out.BestSuggestion())
	}
}

func TestAttemptReportsIndexFailure(t *testing.T) {
	broken := index.NewCache(&stubSource{err: errors.New("catalog unavailable")})
	out, err := Attempt(context.Background(), classifier.New(broken), broken, "soniido")
	if err == nil {
		t.Fatal("expected error when the index cannot build")
	}
	if out != nil {
		t.Errorf("outcome should be nil on failure, got %+v", out)
	}
}

func TestNilOutcomeBestSuggestion(t *testing.T) {
	var out *Outcome
	if out.BestSuggestion() != "" {
		t.Error("nil outcome must yield no suggestion")
	}
}
