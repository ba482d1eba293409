package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/inferbench/approach/random"
	"github.com/viant/inferbench/corpus"
	"github.com/viant/inferbench/evaluator"
	"github.com/viant/inferbench/scoring"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var casesLocation string
	var configLocation string
	var strict bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inferbench",
		Short: "Evaluate type-inference approaches against ground-truth test cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), casesLocation, configLocation, strict, verbose)
		},
	}
	cmd.Flags().StringVar(&casesLocation, "cases", "testcases", "location of YAML test-case files")
	cmd.Flags().StringVar(&configLocation, "config", "", "optional YAML file mapping approach name to options")
	cmd.Flags().BoolVar(&strict, "strict", false, "count unmatched predictions against accuracy")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, casesLocation, configLocation string, strict, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cases, err := corpus.NewLoader().Load(ctx, casesLocation)
	if err != nil {
		return fmt.Errorf("failed to load test cases: %w", err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("no test cases found at %s", casesLocation)
	}

	configs, err := loadConfigs(ctx, configLocation)
	if err != nil {
		return err
	}

	options := []evaluator.Option{evaluator.WithLogger(logger)}
	if strict {
		options = append(options, evaluator.WithScorer(scoring.NewScorer(scoring.WithStrictUnmatched())))
	}
	eval := evaluator.New(options...)
	eval.Register(random.New(random.WithLogger(logger)))

	results := eval.EvaluateAll(ctx, cases, configs)
	renderSummary(os.Stdout, eval.CompareResults(results), len(cases))
	return nil
}

func loadConfigs(ctx context.Context, location string) (map[string]map[string]interface{}, error) {
	if location == "" {
		return nil, nil
	}
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", location, err)
	}
	var configs map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", location, err)
	}
	return configs, nil
}
