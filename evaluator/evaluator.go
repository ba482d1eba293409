// Package evaluator orchestrates approach lifecycles over test-case sets and
// aggregates their predictions into comparable metrics.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/inferbench/approach"
	"github.com/viant/inferbench/corpus"
	"github.com/viant/inferbench/predict"
	"github.com/viant/inferbench/scoring"
)

// ErrNotRegistered signals an evaluation request for an unknown approach name.
var ErrNotRegistered = errors.New("approach not registered")

// Evaluator runs registered approaches over test cases, one approach at a
// time and one test case at a time. No state is shared across approach
// boundaries; each approach owns its traversal state for the duration of one
// predict call.
type Evaluator struct {
	registry map[string]approach.Approach
	order    []string
	logger   *slog.Logger
	scorer   *scoring.Scorer
}

// New creates an evaluator with an empty registry.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		registry: make(map[string]approach.Approach),
		logger:   slog.Default(),
		scorer:   scoring.NewScorer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds an approach to the registry. Registering a name twice
// overwrites the prior entry; the original registration order slot is kept so
// tie-breaking stays stable.
func (e *Evaluator) Register(candidate approach.Approach) {
	name := candidate.Name()
	if _, exists := e.registry[name]; !exists {
		e.order = append(e.order, name)
	}
	e.registry[name] = candidate
}

// Registered returns approach names in registration order.
func (e *Evaluator) Registered() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Evaluate runs one approach over all test cases: initialize once, predict
// sequentially per case, score, dispose. Dispose runs on every exit path,
// including predict failures; a dispose failure is logged but does not re-fail
// an already failed evaluation. Evaluating an unregistered name fails with
// ErrNotRegistered and performs no side effects.
func (e *Evaluator) Evaluate(ctx context.Context, name string, cases []*corpus.TestCase, config map[string]interface{}) (result *EvaluationResult, err error) {
	candidate, ok := e.registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}

	e.logger.Info("evaluating approach", "approach", name, "testCases", len(cases))
	initErr := candidate.Initialize(ctx, config)
	defer func() {
		if disposeErr := candidate.Dispose(ctx); disposeErr != nil {
			e.logger.Error("failed to dispose approach", "approach", name, "error", disposeErr)
		}
	}()
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize %s: %w", name, initErr)
	}

	set := &scoring.MatchSet{}
	var allPredictions []predict.TypePrediction
	var allTruth []corpus.GroundTruth
	var elapsed time.Duration
	for _, testCase := range cases {
		started := time.Now()
		predictions, predictErr := candidate.Predict(ctx, testCase.Source, testCase.FilePath)
		elapsed += time.Since(started)
		if predictErr != nil {
			return nil, fmt.Errorf("failed to predict %s for %s: %w", testCase.Name, name, predictErr)
		}
		set.Merge(scoring.MatchPredictions(predictions, testCase.GroundTruth))
		allPredictions = append(allPredictions, predictions...)
		allTruth = append(allTruth, testCase.GroundTruth...)
	}

	metrics := e.scorer.Score(set, allTruth)
	result = &EvaluationResult{
		ApproachName:       name,
		Predictions:        allPredictions,
		Accuracy:           metrics.Accuracy,
		Precision:          metrics.Precision,
		Recall:             metrics.Recall,
		F1:                 metrics.F1,
		TotalPredictions:   metrics.Total,
		CorrectPredictions: metrics.Correct,
		ExecutionTime:      elapsed,
	}
	e.logger.Info("evaluated approach",
		"approach", name,
		"accuracy", result.Accuracy,
		"matched", result.TotalPredictions,
		"correct", result.CorrectPredictions,
		"executionTime", result.ExecutionTime)
	return result, nil
}

// EvaluateAll evaluates every registered approach independently, in
// registration order. A failing approach is logged and excluded from the
// result mapping; its siblings still run. Zero registered approaches yield an
// empty mapping.
func (e *Evaluator) EvaluateAll(ctx context.Context, cases []*corpus.TestCase, configs map[string]map[string]interface{}) map[string]*EvaluationResult {
	results := make(map[string]*EvaluationResult)
	for _, name := range e.order {
		result, err := e.Evaluate(ctx, name, cases, configs[name])
		if err != nil {
			e.logger.Error("approach evaluation failed, excluding from results", "approach", name, "error", err)
			continue
		}
		results[name] = result
	}
	return results
}
