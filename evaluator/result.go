package evaluator

import (
	"time"

	"github.com/viant/inferbench/predict"
)

// EvaluationResult captures one approach's performance over a test-case set.
// Constructed once per evaluation and immutable afterwards.
type EvaluationResult struct {
	ApproachName string
	Predictions  []predict.TypePrediction // every emitted prediction, matched or not
	Accuracy     float64
	Precision    map[string]float64 // keyed by predicted type
	Recall       map[string]float64 // keyed by actual type
	F1           map[string]float64

	// TotalPredictions counts matched predictions, not raw emissions.
	TotalPredictions   int
	CorrectPredictions int

	// ExecutionTime covers the predict phase only, excluding initialize
	// and dispose.
	ExecutionTime time.Duration

	Extra map[string]interface{}
}
