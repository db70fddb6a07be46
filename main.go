package main

import (
	"fmt"
	"os"

	"github.com/recipekg/recipekg/cmd"
	"github.com/recipekg/recipekg/log"
)

func main() {
	log.ConfigureLogger(log.DefaultLoggerConfig())
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Println("Error:", err.Error())
		os.Exit(1)
	}
}
