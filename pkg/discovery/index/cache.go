package index

import (
	"context"
	"sort"
	"strings"
	"sync"

	"rental-asistente-be/pkg/discovery/textnorm"
)

// Item is the slice of catalog data the index cares about. The catalog
// collaborator owns the records; the index only derives vectors from them.
type Item struct {
	ID          uint
	Service     string
	Name        string
	Description string
	Price       float64
}

// Source lists the sellable catalog items the index is built from.
type Source interface {
	ListItems(ctx context.Context) ([]Item, error)
}

// Document is the derived term-frequency record for one catalog item.
type Document struct {
	ItemID   uint
	Service  string
	TermFreq map[string]int
}

// Snapshot is one immutable build of the index. Readers share it freely;
// a rebuild swaps in a fresh snapshot instead of mutating this one.
type Snapshot struct {
	Docs      []Document
	DocFreq   map[string]int
	TotalDocs int
}

// Vocabulary returns the indexed terms in sorted order.
func (s *Snapshot) Vocabulary() []string {
	terms := make([]string, 0, len(s.DocFreq))
	for term := range s.DocFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Cache lazily builds and holds the TF-IDF snapshot for the whole catalog.
// Invalidation marks the snapshot stale; the next Get rebuilds wholesale.
// There is no incremental update path: rebuild is cheap at catalog scale and
// idempotent, so concurrent first-builds only waste work, never corrupt.
type Cache struct {
	mu     sync.RWMutex
	source Source
	snap   *Snapshot
}

func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Get returns the current snapshot, rebuilding it when empty or invalidated.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return c.Rebuild(ctx)
}

// Invalidate drops the cached snapshot. Catalog writers call this after
// every mutation; the engine never observes catalog changes on its own.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Rebuild constructs a fresh snapshot from the catalog source and installs it.
func (c *Cache) Rebuild(ctx context.Context) (*Snapshot, error) {
	items, err := c.source.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	snap := build(items)

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	return snap, nil
}

func build(items []Item) *Snapshot {
	snap := &Snapshot{
		Docs:    make([]Document, 0, len(items)),
		DocFreq: make(map[string]int),
	}

	for _, item := range items {
		// The parent service name is part of the document text: users name
		// the service ("alquiler") at least as often as the concrete item.
		text := strings.TrimSpace(item.Service + " " + item.Name + " " + item.Description)
		tf := textnorm.TermFrequencies(textnorm.Normalize(text))

		snap.Docs = append(snap.Docs, Document{
			ItemID:   item.ID,
			Service:  item.Service,
			TermFreq: tf,
		})
		snap.TotalDocs++

		// df counts documents containing the term, not occurrences
		for term := range tf {
			snap.DocFreq[term]++
		}
	}

	return snap
}
