package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/recipekg/recipekg/rdfgraph"
	"github.com/recipekg/recipekg/recipe"
)

func fixtureGraph(t *testing.T) *rdfgraph.Graph {
	t.Helper()
	triples, err := recipe.MapRecord(recipe.Record{
		"idMeal": "52874", "strMeal": "Beef Stew",
		"strCategory": "Beef", "strArea": "Italian",
		"strIngredient1": "Beef", "strMeasure1": "1kg",
	})
	if err != nil {
		t.Fatal(err)
	}
	g := rdfgraph.New()
	g.AddAll(triples)
	return g
}

func TestExport(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Export(fixtureGraph(t), buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "digraph recipes") {
		t.Error("output is not a digraph named recipes")
	}
	for _, want := range []string{
		"meal_52874",
		"category_Beef",
		"cuisine_Italian",
		"ingredient_52874_ingredient_1",
		"belongsToCategory",
		"belongsToCuisine",
		"hasIngredient",
		`"#FF6B6B"`,
		`"#4ECDC4"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Typing and label statements carry no edges, and meal nodes are
	// unlabeled dots; only category/cuisine carry display labels.
	for _, unwanted := range []string{"hasName", `label="Beef Stew"`} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output contains %q:\n%s", unwanted, out)
		}
	}
}

func TestExportLiteralsSkipped(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Export(fixtureGraph(t), buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "1kg") {
		t.Error("literal object leaked into the visualization")
	}
}

func TestExportEmptyGraph(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Export(rdfgraph.New(), buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "digraph") {
		t.Error("empty graph did not produce a digraph skeleton")
	}
}
