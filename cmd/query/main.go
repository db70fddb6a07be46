package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipekg/recipekg/log"
	"github.com/recipekg/recipekg/query"
	"github.com/recipekg/recipekg/rdfgraph"
)

var cuisine string
var ingredient string
var meal string
var limit int

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "query <graph.ttl>",
	Short: "Run the canned queries against a serialized recipe graph",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := rdfgraph.LoadFile(args[0])
		if err != nil {
			return err
		}
		log.Infof("Loaded graph with %d triples", g.Len())
		q := query.New(g)

		fmt.Println("=== Query 1: List of Meals ===")
		for _, name := range q.ListMeals(limit) {
			fmt.Printf("  %s\n", name)
		}

		fmt.Printf("\n=== Query 2: %s Meals ===\n", cuisine)
		for _, name := range q.MealsByCuisine(cuisine) {
			fmt.Printf("  %s\n", name)
		}

		fmt.Println("\n=== Query 3: Sample Ingredients ===")
		for _, ing := range q.MealIngredients(meal, 20) {
			if ing.Measure != "" {
				fmt.Printf("  %s: %s\n", ing.Name, ing.Measure)
			} else {
				fmt.Printf("  %s\n", ing.Name)
			}
		}

		fmt.Println("\n=== Query 4: Meals by Category ===")
		for _, row := range q.CountByCategory() {
			fmt.Printf("  %s: %d meals\n", row.Label, row.Count)
		}

		fmt.Printf("\n=== Query 5: Meals with %s ===\n", ingredient)
		for _, name := range q.MealsWithIngredient(ingredient) {
			fmt.Printf("  %s\n", name)
		}

		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVar(&cuisine, "cuisine", "Italian", "Cuisine label for the exact-match query")
	flags.StringVar(&ingredient, "ingredient", "chicken", "Ingredient substring for the filter query")
	flags.StringVar(&meal, "meal", "", "Meal name for the ingredient listing (all meals when empty)")
	flags.IntVar(&limit, "limit", 10, "Row limit for the meal listing")
}
