package viz

import (
	"github.com/spf13/cobra"

	"github.com/recipekg/recipekg/log"
	"github.com/recipekg/recipekg/rdfgraph"
	"github.com/recipekg/recipekg/viz"
)

var output string

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "viz <graph.ttl>",
	Short: "Export a Graphviz DOT visualization of a serialized graph",
	Long: `Export the entity graph as Graphviz DOT. Render it with e.g.:

    dot -Tpng recipe_kg_visualization.dot -o recipe_kg_visualization.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := rdfgraph.LoadFile(args[0])
		if err != nil {
			return err
		}
		log.Infof("Loaded graph with %d triples", g.Len())
		if err := viz.ExportFile(g, output); err != nil {
			return err
		}
		log.Infof("Visualization written to %s", output)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&output, "output", "o", "recipe_kg_visualization.dot", "Output DOT file")
}
