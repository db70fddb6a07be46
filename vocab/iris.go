package vocab

import (
	"fmt"

	"github.com/knakk/rdf"
)

// Base IRIs for the five recipe vocabularies plus the standard RDF
// namespaces used for typing and labels.
const (
	// NSRecipe holds the schema terms (classes and predicates).
	NSRecipe = "http://example.org/recipe/"

	// NSMeal is the namespace for meal instances, suffixed with the
	// source-assigned meal id.
	NSMeal = "http://example.org/meal/"

	// NSIngredient is the namespace for ingredient instances, scoped
	// to a (meal id, slot) pair.
	NSIngredient = "http://example.org/ingredient/"

	// NSCategory is the namespace for category instances.
	NSCategory = "http://example.org/category/"

	// NSCuisine is the namespace for cuisine (area) instances.
	NSCuisine = "http://example.org/cuisine/"

	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// Class IRIs in the recipe schema.
const (
	ClassMeal       = NSRecipe + "Meal"
	ClassCategory   = NSRecipe + "Category"
	ClassCuisine    = NSRecipe + "Cuisine"
	ClassIngredient = NSRecipe + "Ingredient"
)

// Predicate IRIs in the recipe schema.
const (
	// HasName is the display name of a meal.
	HasName = NSRecipe + "hasName"

	// HasInstructions is the free-text preparation instructions.
	HasInstructions = NSRecipe + "hasInstructions"

	// HasThumbnail is the meal thumbnail image URL.
	HasThumbnail = NSRecipe + "hasThumbnail"

	// HasYoutubeLink is the optional recipe video URL.
	HasYoutubeLink = NSRecipe + "hasYoutubeLink"

	// BelongsToCategory links a meal to its category entity.
	BelongsToCategory = NSRecipe + "belongsToCategory"

	// BelongsToCuisine links a meal to its cuisine entity.
	BelongsToCuisine = NSRecipe + "belongsToCuisine"

	// HasIngredient links a meal to one of its ingredient entities.
	HasIngredient = NSRecipe + "hasIngredient"

	// IngredientName is the trimmed ingredient display name.
	IngredientName = NSRecipe + "ingredientName"

	// IngredientMeasure is the trimmed measure, present only when the
	// source slot carried a non-empty measure.
	IngredientMeasure = NSRecipe + "ingredientMeasure"

	// RDFType is rdf:type.
	RDFType = NSRDF + "type"

	// RDFSLabel is rdfs:label, the display label of category and
	// cuisine entities.
	RDFSLabel = NSRDFS + "label"
)

// Prefix binds a short prefix to a namespace IRI for Turtle output.
type Prefix struct {
	Name string
	IRI  string
}

// Prefixes returns the namespace bindings written at the top of every
// serialized graph, in output order.
func Prefixes() []Prefix {
	return []Prefix{
		{"recipe", NSRecipe},
		{"meal", NSMeal},
		{"ingredient", NSIngredient},
		{"category", NSCategory},
		{"cuisine", NSCuisine},
		{"rdf", NSRDF},
		{"rdfs", NSRDFS},
	}
}

// IRI builds an rdf.IRI from a string known to be valid at compile
// time. It panics on malformed input, so it is only for schema
// constants; data-derived IRIs go through rdf.NewIRI directly.
func IRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic(fmt.Sprintf("vocab: invalid IRI %q: %v", s, err))
	}
	return iri
}
