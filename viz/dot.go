// Package viz exports the entity graph as Graphviz DOT. The export
// mirrors the persisted graph minus typing and label triples: only
// entity-to-entity edges are drawn, with display labels pulled from
// the name and label literals.
package viz

import (
	"io"
	"os"
	"strings"

	"github.com/knakk/rdf"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/recipekg/recipekg/rdfgraph"
	"github.com/recipekg/recipekg/vocab"
)

// maxLabel is the rune cap on node display labels.
const maxLabel = 20

var kindColors = map[string]string{
	"meal":       "#FF6B6B",
	"category":   "#4ECDC4",
	"cuisine":    "#45B7D1",
	"ingredient": "#FFA07A",
}

type node struct {
	id    int64
	dotID string
	kind  string
	label string
}

func (n *node) ID() int64     { return n.id }
func (n *node) DOTID() string { return n.dotID }

func (n *node) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: `"` + kindColors[n.kind] + `"`},
	}
	switch n.kind {
	case "category", "cuisine":
		attrs = append(attrs, encoding.Attribute{Key: "label", Value: quote(n.label)})
	default:
		attrs = append(attrs,
			encoding.Attribute{Key: "label", Value: `""`},
			encoding.Attribute{Key: "shape", Value: "circle"},
			encoding.Attribute{Key: "width", Value: "0.15"},
		)
	}
	return attrs
}

type edge struct {
	simple.Edge
	label string
}

func (e edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: quote(e.label)}}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func kindOf(iri string) string {
	switch {
	case strings.HasPrefix(iri, vocab.NSMeal):
		return "meal"
	case strings.HasPrefix(iri, vocab.NSCategory):
		return "category"
	case strings.HasPrefix(iri, vocab.NSCuisine):
		return "cuisine"
	case strings.HasPrefix(iri, vocab.NSIngredient):
		return "ingredient"
	}
	return ""
}

// predLocal strips the namespace from a predicate IRI.
func predLocal(iri string) string {
	if i := strings.LastIndexAny(iri, "/#"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func dotID(iri, kind string) string {
	local := predLocal(iri)
	cleaned := []rune{}
	for _, c := range local {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			cleaned = append(cleaned, c)
		default:
			cleaned = append(cleaned, '_')
		}
	}
	return kind + "_" + string(cleaned)
}

type builder struct {
	dg     *simple.DirectedGraph
	nodes  map[string]*node
	labels map[string]string
	nextID int64
}

func (b *builder) node(iri, kind string) *node {
	if n, ok := b.nodes[iri]; ok {
		return n
	}
	label := b.labels[iri]
	if label == "" {
		label = truncate(predLocal(iri), 15)
	}
	n := &node{id: b.nextID, dotID: dotID(iri, kind), kind: kind, label: label}
	b.nextID++
	b.nodes[iri] = n
	b.dg.AddNode(n)
	return n
}

// Export writes the DOT rendering of g to w.
func Export(g *rdfgraph.Graph, w io.Writer) error {
	b := &builder{
		dg:     simple.NewDirectedGraph(),
		nodes:  map[string]*node{},
		labels: map[string]string{},
	}

	triples := g.Triples()

	// First pass: collect display labels from the literal triples.
	for _, t := range triples {
		if t.Obj.Type() != rdf.TermLiteral {
			continue
		}
		switch t.Pred.String() {
		case vocab.HasName, vocab.RDFSLabel, vocab.IngredientName:
			b.labels[t.Subj.String()] = truncate(t.Obj.String(), maxLabel)
		}
	}

	// Second pass: entity-to-entity edges. Typing and label triples
	// carry no graph structure and are skipped, as are edges touching
	// anything outside the four entity namespaces.
	for _, t := range triples {
		pred := t.Pred.String()
		if pred == vocab.RDFType || pred == vocab.RDFSLabel {
			continue
		}
		if t.Obj.Type() != rdf.TermIRI {
			continue
		}
		subjKind := kindOf(t.Subj.String())
		objKind := kindOf(t.Obj.String())
		if subjKind == "" || objKind == "" {
			continue
		}
		from := b.node(t.Subj.String(), subjKind)
		to := b.node(t.Obj.String(), objKind)
		if from.ID() == to.ID() {
			continue
		}
		b.dg.SetEdge(edge{
			Edge:  simple.Edge{F: from, T: to},
			label: predLocal(pred),
		})
	}

	out, err := dot.Marshal(b.dg, "recipes", "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// ExportFile writes the DOT rendering of g to path.
func ExportFile(g *rdfgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
