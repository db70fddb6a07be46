// Package build runs the fetch-map-accumulate loop that turns meal
// records into the in-memory triple store.
package build

import (
	"context"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/recipekg/recipekg/log"
	"github.com/recipekg/recipekg/recipe"
	"github.com/recipekg/recipekg/rdfgraph"
)

// RecordSource produces one meal record per call.
type RecordSource interface {
	RandomMeal(ctx context.Context) (recipe.Record, error)
}

// Report summarizes one build run. Failed counts records that could
// not be fetched or mapped; the run itself still succeeds with the
// records that made it.
type Report struct {
	Requested int
	Fetched   int
	Failed    int
	Triples   int
}

// Run fetches count records from src, maps each into triples and
// unions them into g. Records are processed strictly in sequence, with
// at most one fetch attempt each; individual failures are logged,
// counted and skipped. The returned error is the accumulated
// per-record failure chain (nil when every record succeeded) — callers
// decide whether a partial result is acceptable.
func Run(ctx context.Context, src RecordSource, g *rdfgraph.Graph, count int) (Report, error) {
	report := Report{Requested: count}
	var merr *multierror.Error

	log.Infof("Fetching %d meals", count)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return report, multierror.Append(merr, err).ErrorOrNil()
		}

		rec, err := src.RandomMeal(ctx)
		if err != nil {
			log.WithFields(log.Fields{"error": err, "record": i + 1}).Error("fetch failed")
			merr = multierror.Append(merr, err)
			report.Failed++
			continue
		}

		triples, err := recipe.MapRecord(rec)
		if err != nil {
			log.WithFields(log.Fields{"error": err, "record": i + 1}).Error("mapping failed")
			merr = multierror.Append(merr, err)
			report.Failed++
			continue
		}

		g.AddAll(triples)
		report.Fetched++
		log.Infof("Fetched: %s (%d/%d)", rec.Str("strMeal"), i+1, count)
	}

	report.Triples = g.Len()
	return report, merr.ErrorOrNil()
}
