package main

import (
	"fmt"
	"os"

	"task-entry/internal/cli"
)

func main() {
	// Load configuration based on environment
	env := getEnvironment()
	factory := NewConfigFactory(env)

	cfg, err := factory.CreateConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The root command applies flag overrides, then builds the app and
	// dispatches to the matching handler
	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
