package generate

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/recipekg/recipekg/build"
	"github.com/recipekg/recipekg/config"
	"github.com/recipekg/recipekg/log"
	"github.com/recipekg/recipekg/mealdb"
	"github.com/recipekg/recipekg/rdfgraph"
	"github.com/recipekg/recipekg/viz"
)

var configFile string
var baseURL string
var mealCount int
var interval time.Duration
var output string
var withViz bool

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch meals and generate the recipe knowledge graph",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.DefaultConfig()
		if configFile != "" {
			if err := config.ParseConfigFile(configFile, conf); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("base-url") {
			conf.Source.BaseURL = baseURL
		}
		if cmd.Flags().Changed("count") {
			conf.Source.MealCount = mealCount
		}
		if cmd.Flags().Changed("interval") {
			conf.Source.FetchInterval = config.Duration(interval)
		}
		if cmd.Flags().Changed("output") {
			conf.Output.GraphFile = output
		}
		log.ConfigureLogger(conf.Logger)

		client := mealdb.NewClient(conf.Source.BaseURL, time.Duration(conf.Source.FetchInterval))
		g := rdfgraph.New()

		report, err := build.Run(context.Background(), client, g, conf.Source.MealCount)
		if err != nil {
			// Partial results are accepted; the failures were already
			// logged per record.
			log.WithFields(log.Fields{"failed": report.Failed}).Warning("some records were skipped")
		}
		log.WithFields(log.Fields{
			"requested": report.Requested,
			"fetched":   report.Fetched,
			"failed":    report.Failed,
			"triples":   report.Triples,
		}).Info("graph built")

		if err := g.SerializeFile(conf.Output.GraphFile); err != nil {
			return err
		}
		log.Infof("Knowledge graph written to %s (%d triples)", conf.Output.GraphFile, g.Len())

		if withViz {
			if err := viz.ExportFile(g, conf.Output.VizFile); err != nil {
				return err
			}
			log.Infof("Visualization written to %s", conf.Output.VizFile)
		}
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file")
	flags.StringVar(&baseURL, "base-url", mealdb.DefaultBaseURL, "Meal API base URL")
	flags.IntVar(&mealCount, "count", 50, "Number of random meals to fetch")
	flags.DurationVar(&interval, "interval", mealdb.DefaultFetchInterval, "Delay between fetches")
	flags.StringVarP(&output, "output", "o", "recipe_knowledge_graph.ttl", "Output Turtle file")
	flags.BoolVar(&withViz, "viz", false, "Also export a Graphviz DOT visualization")
}
