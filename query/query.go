// Package query runs the fixed read-only lookups against a previously
// serialized recipe graph. The five queries are plain pattern matches
// over the triple set; there is deliberately no query language here.
package query

import (
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/recipekg/recipekg/rdfgraph"
	"github.com/recipekg/recipekg/vocab"
)

// Ingredient is one ingredient of a meal. Measure is empty when the
// source slot carried none.
type Ingredient struct {
	Meal    string
	Name    string
	Measure string
}

// CategoryCount is one row of the grouped category count.
type CategoryCount struct {
	Label string
	Count int
}

// Queries indexes a loaded graph for the canned lookups.
type Queries struct {
	meals         []string            // meal IRIs, sorted
	mealName      map[string]string   // meal IRI -> recipe:hasName
	labels        map[string]string   // entity IRI -> rdfs:label
	categoryOf    map[string][]string // meal IRI -> category IRIs
	cuisineOf     map[string][]string // meal IRI -> cuisine IRIs
	ingredientsOf map[string][]string // meal IRI -> ingredient IRIs
	ingName       map[string]string
	ingMeasure    map[string]string
}

// New builds the index over g.
func New(g *rdfgraph.Graph) *Queries {
	q := &Queries{
		mealName:      map[string]string{},
		labels:        map[string]string{},
		categoryOf:    map[string][]string{},
		cuisineOf:     map[string][]string{},
		ingredientsOf: map[string][]string{},
		ingName:       map[string]string{},
		ingMeasure:    map[string]string{},
	}

	for _, t := range g.Triples() {
		subj := t.Subj.String()
		obj := t.Obj.String()
		switch t.Pred.String() {
		case vocab.RDFType:
			if obj == vocab.ClassMeal {
				q.meals = append(q.meals, subj)
			}
		case vocab.HasName:
			if t.Obj.Type() == rdf.TermLiteral {
				q.mealName[subj] = obj
			}
		case vocab.RDFSLabel:
			if t.Obj.Type() == rdf.TermLiteral {
				q.labels[subj] = obj
			}
		case vocab.BelongsToCategory:
			q.categoryOf[subj] = append(q.categoryOf[subj], obj)
		case vocab.BelongsToCuisine:
			q.cuisineOf[subj] = append(q.cuisineOf[subj], obj)
		case vocab.HasIngredient:
			q.ingredientsOf[subj] = append(q.ingredientsOf[subj], obj)
		case vocab.IngredientName:
			q.ingName[subj] = obj
		case vocab.IngredientMeasure:
			q.ingMeasure[subj] = obj
		}
	}

	// Triples() is sorted, so the per-meal slices come out ordered,
	// but the meal list is re-sorted for clarity.
	sort.Strings(q.meals)
	return q
}

// ListMeals returns the names of meals, sorted, at most limit entries.
// A non-positive limit returns everything.
func (q *Queries) ListMeals(limit int) []string {
	names := []string{}
	for _, m := range q.meals {
		if n, ok := q.mealName[m]; ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

// MealsByCuisine returns the names of meals whose cuisine label
// exactly matches label.
func (q *Queries) MealsByCuisine(label string) []string {
	names := []string{}
	for _, m := range q.meals {
		name, ok := q.mealName[m]
		if !ok {
			continue
		}
		for _, c := range q.cuisineOf[m] {
			if q.labels[c] == label {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// MealIngredients returns the ingredients of the named meal. An empty
// mealName returns ingredients across all meals; a positive limit caps
// the result.
func (q *Queries) MealIngredients(mealName string, limit int) []Ingredient {
	out := []Ingredient{}
	for _, m := range q.meals {
		name := q.mealName[m]
		if mealName != "" && name != mealName {
			continue
		}
		for _, ing := range q.ingredientsOf[m] {
			iname, ok := q.ingName[ing]
			if !ok {
				continue
			}
			out = append(out, Ingredient{
				Meal:    name,
				Name:    iname,
				Measure: q.ingMeasure[ing],
			})
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CountByCategory returns the number of meals per category label,
// ordered by descending count, ties broken by label.
func (q *Queries) CountByCategory() []CategoryCount {
	counts := map[string]int{}
	for _, m := range q.meals {
		for _, c := range q.categoryOf[m] {
			if label, ok := q.labels[c]; ok {
				counts[label]++
			}
		}
	}
	out := make([]CategoryCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, CategoryCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// MealsWithIngredient returns the distinct names of meals using an
// ingredient whose name contains substr, case-insensitively.
func (q *Queries) MealsWithIngredient(substr string) []string {
	substr = strings.ToLower(substr)
	seen := map[string]bool{}
	names := []string{}
	for _, m := range q.meals {
		name, ok := q.mealName[m]
		if !ok || seen[name] {
			continue
		}
		for _, ing := range q.ingredientsOf[m] {
			if strings.Contains(strings.ToLower(q.ingName[ing]), substr) {
				seen[name] = true
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}
