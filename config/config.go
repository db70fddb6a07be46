package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/recipekg/recipekg/log"
	"github.com/recipekg/recipekg/mealdb"
)

// SourceConfig describes the upstream meal API.
type SourceConfig struct {
	// BaseURL of the API, without a trailing slash.
	BaseURL string
	// MealCount is how many random meals one generate run requests.
	MealCount int
	// FetchInterval is the pause between fetch attempts, inserted to
	// respect the public rate limit.
	FetchInterval Duration
}

// OutputConfig describes the files a run writes.
type OutputConfig struct {
	// GraphFile is the serialized Turtle graph.
	GraphFile string
	// VizFile is the Graphviz DOT export of the entity graph.
	VizFile string
}

// Config describes the configuration for recipekg.
type Config struct {
	Source SourceConfig
	Output OutputConfig
	Logger log.Logger
}

// DefaultConfig returns an instance of the default configuration.
func DefaultConfig() *Config {
	c := &Config{}
	c.Source.BaseURL = mealdb.DefaultBaseURL
	c.Source.MealCount = 50
	c.Source.FetchInterval = Duration(mealdb.DefaultFetchInterval)
	c.Output.GraphFile = "recipe_knowledge_graph.ttl"
	c.Output.VizFile = "recipe_kg_visualization.dot"
	c.Logger = log.DefaultLoggerConfig()
	return c
}

// ParseConfig parses a YAML doc into the given Config instance.
func ParseConfig(raw []byte, conf *Config) error {
	return yaml.UnmarshalStrict(raw, conf)
}

// ParseConfigFile parses a config file, which is formatted in YAML,
// into a Config instance.
func ParseConfigFile(relpath string, conf *Config) error {
	if relpath == "" {
		return fmt.Errorf("config path is empty")
	}
	source, err := os.ReadFile(relpath)
	if err != nil {
		return fmt.Errorf("failed to read config at path %s: %v", relpath, err)
	}
	if err := ParseConfig(source, conf); err != nil {
		return fmt.Errorf("failed to parse config at path %s: %v", relpath, err)
	}
	return nil
}
