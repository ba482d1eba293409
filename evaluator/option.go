package evaluator

import (
	"log/slog"

	"github.com/viant/inferbench/scoring"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the diagnostic logger used for lifecycle and failure
// reporting. The logger is an injected collaborator so orchestration stays
// testable without capturing process output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithScorer overrides the scoring policy, e.g. to penalize unmatched
// predictions via scoring.WithStrictUnmatched.
func WithScorer(scorer *scoring.Scorer) Option {
	return func(e *Evaluator) {
		e.scorer = scorer
	}
}
