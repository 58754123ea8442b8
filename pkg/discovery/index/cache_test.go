package index

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type stubSource struct {
	items []Item
	err   error
	calls int
}

func (s *stubSource) ListItems(ctx context.Context) ([]Item, error) {
	s.calls++
	return s.items, s.err
}

func catalogFixture() []Item {
	return []Item{
		{ID: 1, Service: "Alquiler", Name: "Equipo de Sonido", Description: "equipo completo de sonido profesional", Price: 150},
		{ID: 2, Service: "Alquiler", Name: "Carpa 6x6", Description: "carpa blanca para eventos", Price: 80},
		{ID: 3, Service: "Montaje", Name: "Tarima Modular", Description: "tarima para escenario", Price: 120},
	}
}

func TestCacheBuildsLazily(t *testing.T) {
	src := &stubSource{items: catalogFixture()}
	cache := NewCache(src)

	snap, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.TotalDocs != 3 {
		t.Errorf("TotalDocs = %d, want 3", snap.TotalDocs)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}

	// Second Get must reuse the snapshot
	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times after cached Get, want 1", src.calls)
	}
}

func TestCacheInvalidateForcesRebuild(t *testing.T) {
	src := &stubSource{items: catalogFixture()}
	cache := NewCache(src)

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	src := &stubSource{items: catalogFixture()}
	cache := NewCache(src)

	first, err := cache.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	second, err := cache.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	if !reflect.DeepEqual(first.DocFreq, second.DocFreq) {
		t.Errorf("document frequencies differ between rebuilds:\n%v\n%v", first.DocFreq, second.DocFreq)
	}
	if !reflect.DeepEqual(first.Docs, second.Docs) {
		t.Errorf("documents differ between rebuilds")
	}
}

func TestDocFreqMatchesDocumentVocabularies(t *testing.T) {
	src := &stubSource{items: catalogFixture()}
	snap, err := NewCache(src).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	aggregate := map[string]int{}
	for _, doc := range snap.Docs {
		for term := range doc.TermFreq {
			aggregate[term]++
		}
	}
	if !reflect.DeepEqual(aggregate, snap.DocFreq) {
		t.Errorf("DocFreq is not the aggregate of document vocabularies:\n got %v\nwant %v", snap.DocFreq, aggregate)
	}
}

func TestDfCountsDocumentsNotOccurrences(t *testing.T) {
	src := &stubSource{items: []Item{
		{ID: 1, Service: "Alquiler", Name: "Equipo de Sonido", Description: "equipo completo de sonido profesional"},
	}}
	snap, err := NewCache(src).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// "equipo" and "sonido" appear twice in the document but df is per document
	if snap.DocFreq["equipo"] != 1 {
		t.Errorf("df(equipo) = %d, want 1", snap.DocFreq["equipo"])
	}
	if snap.Docs[0].TermFreq["sonido"] != 2 {
		t.Errorf("tf(sonido) = %d, want 2", snap.Docs[0].TermFreq["sonido"])
	}
}

func TestMissingDescriptionTreatedAsEmpty(t *testing.T) {
	src := &stubSource{items: []Item{{ID: 7, Service: "Montaje", Name: "Tarima"}}}
	snap, err := NewCache(src).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.TotalDocs != 1 {
		t.Fatalf("TotalDocs = %d, want 1", snap.TotalDocs)
	}
	if len(snap.Docs[0].TermFreq) == 0 {
		t.Errorf("document vector should carry name and service tokens")
	}
}

func TestGetPropagatesSourceError(t *testing.T) {
	src := &stubSource{err: errors.New("db down")}
	if _, err := NewCache(src).Get(context.Background()); err == nil {
		t.Fatal("expected error from source")
	}
}
