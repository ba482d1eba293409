package evaluator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/inferbench/approach/random"
	"github.com/viant/inferbench/corpus"
	"github.com/viant/inferbench/evaluator"
)

// End-to-end: real baseline over real source, deterministic config.
func TestEvaluator_WithRandomBaseline(t *testing.T) {
	testCase := &corpus.TestCase{
		Name:     "single declaration",
		FilePath: "case.js",
		Source:   "const count = 5;",
		GroundTruth: []corpus.GroundTruth{
			{
				Identifier: "count",
				Type:       "number",
				Position:   corpus.Position{Line: 1, Column: 6},
				ScopePath:  "global",
			},
		},
	}

	eval := evaluator.New()
	eval.Register(random.New())
	configs := map[string]map[string]interface{}{
		"random": {
			"availableTypes":        []interface{}{"number"},
			"randomTypeProbability": 1,
			"seed":                  7,
		},
	}

	results := eval.EvaluateAll(context.Background(), []*corpus.TestCase{testCase}, configs)
	require.Contains(t, results, "random")

	result := results["random"]
	assert.Equal(t, 1.0, result.Accuracy)
	assert.Equal(t, 1, result.TotalPredictions)
	assert.Equal(t, 1, result.CorrectPredictions)
	require.NotEmpty(t, result.Predictions)
	assert.Equal(t, "variable-declaration", result.Predictions[0].Context.Syntactic)

	summary := eval.CompareResults(results)
	assert.Equal(t, "random", summary.BestApproach)
	assert.Equal(t, 1, summary.TotalTestCases)
}
