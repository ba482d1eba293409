// Package approach defines the pluggable prediction-producer contract.
// Any strategy exposing the initialize/predict/dispose lifecycle can be
// registered with the evaluator; there is no base implementation to inherit.
package approach

import (
	"context"

	"github.com/viant/inferbench/predict"
)

// Approach produces type predictions for source code. Initialize is called
// once before each evaluation run and must be idempotent; Predict performs one
// traversal per source unit; Dispose releases resources and a no-op is valid.
//
// Predict must not fail on malformed source: traversal problems are reported
// as diagnostics and whatever predictions were collected are returned, so one
// bad test case never stalls an evaluation.
type Approach interface {
	Name() string
	Description() string
	Initialize(ctx context.Context, config map[string]interface{}) error
	Predict(ctx context.Context, sourceCode string, filePath string) ([]predict.TypePrediction, error)
	Dispose(ctx context.Context) error
}
