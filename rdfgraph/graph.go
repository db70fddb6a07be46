package rdfgraph

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/knakk/rdf"
)

// Graph is a memory based triple store with set semantics: adding a
// triple that is already present is a no-op. There are no update or
// delete operations; the store is accumulate-then-dump.
type Graph struct {
	triples map[string]rdf.Triple
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		triples: map[string]rdf.Triple{},
	}
}

func key(t rdf.Triple) string {
	return t.Serialize(rdf.NTriples)
}

// Add inserts a triple into the store. It returns true if the triple
// was not already present.
func (g *Graph) Add(t rdf.Triple) bool {
	k := key(t)
	if _, ok := g.triples[k]; ok {
		return false
	}
	g.triples[k] = t
	return true
}

// AddAll inserts a batch of triples and returns the number that were
// newly added.
func (g *Graph) AddAll(triples []rdf.Triple) int {
	added := 0
	for _, t := range triples {
		if g.Add(t) {
			added++
		}
	}
	return added
}

// Has reports whether the triple is present in the store.
func (g *Graph) Has(t rdf.Triple) bool {
	_, ok := g.triples[key(t)]
	return ok
}

// Len returns the number of distinct triples in the store.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns all triples sorted by subject, predicate and object
// serialization. The order is stable across runs for identical
// contents.
func (g *Graph) Triples() []rdf.Triple {
	out := make([]rdf.Triple, 0, len(g.triples))
	for _, t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if s := a.Subj.String(); s != b.Subj.String() {
			return s < b.Subj.String()
		}
		if p := a.Pred.String(); p != b.Pred.String() {
			return p < b.Pred.String()
		}
		return a.Obj.Serialize(rdf.NTriples) < b.Obj.Serialize(rdf.NTriples)
	})
	return out
}

// Load reads a Turtle document into a new Graph.
func Load(r io.Reader) (*Graph, error) {
	g := New()
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding turtle: %w", err)
		}
		g.Add(t)
	}
	return g, nil
}

// LoadFile reads a Turtle file into a new Graph.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
