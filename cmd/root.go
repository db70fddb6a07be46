package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/recipekg/recipekg/cmd/generate"
	"github.com/recipekg/recipekg/cmd/query"
	"github.com/recipekg/recipekg/cmd/viz"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "recipekg",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(generate.Cmd)
	RootCmd.AddCommand(query.Cmd)
	RootCmd.AddCommand(viz.Cmd)
	RootCmd.AddCommand(genBashCompletionCmd)
}

var genBashCompletionCmd = &cobra.Command{
	Use: "bash",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(os.Stdout)
	},
}
