package rdfgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knakk/rdf"

	"github.com/recipekg/recipekg/vocab"
)

// pnLocal matches local names that are safe to emit as a prefixed name
// in Turtle. Percent escapes produced by the URI normalizer are legal
// PN_LOCAL characters.
var pnLocal = regexp.MustCompile(`^(?:[0-9A-Za-z_]|%[0-9A-Fa-f]{2})(?:[0-9A-Za-z_.\-]|%[0-9A-Fa-f]{2})*$`)

// compactIRI shortens an IRI to prefix:local when it falls under one of
// the bound namespaces and the local part is Turtle-safe; otherwise it
// returns the full <IRI> form.
func compactIRI(iri string) string {
	for _, p := range vocab.Prefixes() {
		if !strings.HasPrefix(iri, p.IRI) {
			continue
		}
		local := iri[len(p.IRI):]
		if local == "" || strings.HasSuffix(local, ".") || !pnLocal.MatchString(local) {
			break
		}
		return p.Name + ":" + local
	}
	return "<" + iri + ">"
}

func serializeTerm(t rdf.Term) string {
	if t.Type() == rdf.TermIRI {
		return compactIRI(t.String())
	}
	return t.Serialize(rdf.Turtle)
}

func serializePred(p rdf.Predicate) string {
	if p.String() == vocab.RDFType {
		return "a"
	}
	return compactIRI(p.String())
}

// Serialize writes the whole store as Turtle: the namespace prefix
// block followed by one triple per line in the deterministic Triples()
// order.
func (g *Graph) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range vocab.Prefixes() {
		if _, err := fmt.Fprintf(bw, "@prefix %s: <%s> .\n", p.Name, p.IRI); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	for _, t := range g.Triples() {
		_, err := fmt.Fprintf(bw, "%s %s %s .\n",
			serializeTerm(t.Subj), serializePred(t.Pred), serializeTerm(t.Obj))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SerializeFile writes the store as Turtle to path. The document is
// written to a temporary file in the same directory and renamed into
// place, so a failed write never leaves a half-written graph behind.
func (g *Graph) SerializeFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("creating temp graph file: %w", err)
	}
	if err := g.Serialize(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing graph: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing graph file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
