package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knakk/rdf"
	"github.com/spf13/cast"

	"github.com/recipekg/recipekg/vocab"
)

// IngredientSlots is the number of ingredient slots in a source
// record. The upstream schema is flat: strIngredient1..strIngredient20
// paired with strMeasure1..strMeasure20.
const IngredientSlots = 20

// ErrMissingIdentifier is returned for records that carry no usable
// idMeal field.
var ErrMissingIdentifier = errors.New("record has no idMeal identifier")

// Record is one raw meal document as returned by the source API.
type Record map[string]interface{}

// Str returns the named field as a string, "" when absent or null.
func (r Record) Str(key string) string {
	return cast.ToString(r[key])
}

func literal(s string) rdf.Literal {
	l, _ := rdf.NewLiteral(s)
	return l
}

func typeTriple(subj rdf.IRI, class string) rdf.Triple {
	return rdf.Triple{Subj: subj, Pred: vocab.IRI(vocab.RDFType), Obj: vocab.IRI(class)}
}

// scalarFields maps the four optional meal scalars to their
// predicates. A field that is absent or empty emits nothing.
var scalarFields = []struct {
	field string
	pred  string
}{
	{"strMeal", vocab.HasName},
	{"strInstructions", vocab.HasInstructions},
	{"strMealThumb", vocab.HasThumbnail},
	{"strYoutube", vocab.HasYoutubeLink},
}

// entityTriples emits the type, label and meal-relation triples for a
// singleton label entity (category or cuisine). The entity identity
// comes from SafeLocal, so records sharing a label collapse onto one
// entity; the label literal keeps the raw field value.
func entityTriples(meal rdf.IRI, raw, ns, class, rel string) []rdf.Triple {
	local := SafeLocal(raw)
	if local == "" {
		return nil
	}
	ent := vocab.IRI(ns + local)
	return []rdf.Triple{
		typeTriple(ent, class),
		{Subj: ent, Pred: vocab.IRI(vocab.RDFSLabel), Obj: literal(raw)},
		{Subj: meal, Pred: vocab.IRI(rel), Obj: ent},
	}
}

// MapRecord maps one meal record into its full triple set. The triples
// come out in a reproducible order; the destination store is
// order-insensitive. MapRecord has no side effects and the same record
// always yields the same triples.
func MapRecord(rec Record) ([]rdf.Triple, error) {
	id := strings.TrimSpace(rec.Str("idMeal"))
	if id == "" {
		return nil, ErrMissingIdentifier
	}
	meal, err := rdf.NewIRI(vocab.NSMeal + id)
	if err != nil {
		return nil, fmt.Errorf("meal id %q: %w", id, err)
	}

	out := []rdf.Triple{typeTriple(meal, vocab.ClassMeal)}

	for _, s := range scalarFields {
		if v := rec.Str(s.field); v != "" {
			out = append(out, rdf.Triple{Subj: meal, Pred: vocab.IRI(s.pred), Obj: literal(v)})
		}
	}

	out = append(out, entityTriples(meal, rec.Str("strCategory"),
		vocab.NSCategory, vocab.ClassCategory, vocab.BelongsToCategory)...)
	out = append(out, entityTriples(meal, rec.Str("strArea"),
		vocab.NSCuisine, vocab.ClassCuisine, vocab.BelongsToCuisine)...)

	for i := 1; i <= IngredientSlots; i++ {
		name := strings.TrimSpace(rec.Str(fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		// Ingredient identity is meal-and-slot scoped, never shared
		// across meals or slots.
		ing := vocab.IRI(fmt.Sprintf("%s%s_ingredient_%d", vocab.NSIngredient, id, i))
		out = append(out,
			typeTriple(ing, vocab.ClassIngredient),
			rdf.Triple{Subj: ing, Pred: vocab.IRI(vocab.IngredientName), Obj: literal(name)},
		)
		if measure := strings.TrimSpace(rec.Str(fmt.Sprintf("strMeasure%d", i))); measure != "" {
			out = append(out, rdf.Triple{Subj: ing, Pred: vocab.IRI(vocab.IngredientMeasure), Obj: literal(measure)})
		}
		out = append(out, rdf.Triple{Subj: meal, Pred: vocab.IRI(vocab.HasIngredient), Obj: ing})
	}

	return out, nil
}
