package build

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/recipekg/recipekg/rdfgraph"
	"github.com/recipekg/recipekg/recipe"
)

// scriptedSource replays a fixed sequence of records and errors.
type scriptedSource struct {
	records []recipe.Record
	errs    []error
	calls   int
}

func (s *scriptedSource) RandomMeal(ctx context.Context) (recipe.Record, error) {
	i := s.calls
	s.calls++
	if i >= len(s.records) {
		return nil, fmt.Errorf("no more records")
	}
	if s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.records[i], nil
}

func TestRunAccumulates(t *testing.T) {
	src := &scriptedSource{
		records: []recipe.Record{
			{"idMeal": "1", "strMeal": "One", "strCategory": "Beef"},
			{"idMeal": "2", "strMeal": "Two", "strCategory": "Beef"},
		},
		errs: []error{nil, nil},
	}
	g := rdfgraph.New()
	report, err := Run(context.Background(), src, g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if report.Fetched != 2 || report.Failed != 0 {
		t.Errorf("report = %+v", report)
	}
	if report.Triples != g.Len() {
		t.Errorf("report.Triples = %d, graph has %d", report.Triples, g.Len())
	}
	if g.Len() == 0 {
		t.Error("graph is empty after a successful run")
	}
}

func TestRunSkipsFailedFetches(t *testing.T) {
	boom := errors.New("network down")
	src := &scriptedSource{
		records: []recipe.Record{
			{"idMeal": "1", "strMeal": "One"},
			nil,
			{"idMeal": "3", "strMeal": "Three"},
		},
		errs: []error{nil, boom, nil},
	}
	g := rdfgraph.New()
	report, err := Run(context.Background(), src, g, 3)
	if err == nil {
		t.Fatal("expected accumulated error for the failed record")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error chain does not contain the fetch error: %v", err)
	}
	if report.Fetched != 2 || report.Failed != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestRunSkipsUnmappableRecords(t *testing.T) {
	src := &scriptedSource{
		records: []recipe.Record{
			{"strMeal": "No ID"},
			{"idMeal": "2", "strMeal": "Two"},
		},
		errs: []error{nil, nil},
	}
	g := rdfgraph.New()
	report, err := Run(context.Background(), src, g, 2)
	if !errors.Is(err, recipe.ErrMissingIdentifier) {
		t.Errorf("error chain missing ErrMissingIdentifier: %v", err)
	}
	if report.Fetched != 1 || report.Failed != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestRunDuplicateRecordsUnion(t *testing.T) {
	rec := recipe.Record{"idMeal": "1", "strMeal": "One", "strCategory": "Beef"}
	src := &scriptedSource{
		records: []recipe.Record{rec, rec},
		errs:    []error{nil, nil},
	}
	g := rdfgraph.New()
	report, err := Run(context.Background(), src, g, 2)
	if err != nil {
		t.Fatal(err)
	}
	once, err := recipe.MapRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if report.Triples != len(once) {
		t.Errorf("duplicate record changed the triple set: %d vs %d", report.Triples, len(once))
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &scriptedSource{
		records: []recipe.Record{{"idMeal": "1"}},
		errs:    []error{nil},
	}
	g := rdfgraph.New()
	report, err := Run(ctx, src, g, 1)
	if err == nil {
		t.Error("expected context error")
	}
	if report.Fetched != 0 {
		t.Errorf("fetched %d records after cancellation", report.Fetched)
	}
}
