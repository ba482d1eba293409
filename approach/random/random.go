// Package random implements the uniform-random baseline approach: it walks
// source the same way any real strategy would, but assigns types drawn
// uniformly from a configured set. It exists to anchor the bottom of the
// accuracy scale.
package random

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/viant/inferbench/approach"
	"github.com/viant/inferbench/predict"
)

// DefaultTypes is the type-label pool used when availableTypes is not configured.
var DefaultTypes = []string{"number", "string", "boolean", "object", "array", "function", "undefined"}

// DefaultProbability gates per-occurrence emission when randomTypeProbability
// is not configured.
const DefaultProbability = 0.3

// Option configures an Approach.
type Option func(*Approach)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Approach) {
		a.logger = logger
	}
}

// Approach selects types uniformly at random. Recognized config keys:
// availableTypes (list of type labels), randomTypeProbability (number in
// [0,1]), seed (integer, for reproducible runs). Unrecognized keys are
// ignored; missing keys keep prior values.
type Approach struct {
	availableTypes []string
	probability    float64
	seed           int64
	rng            *rand.Rand
	logger         *slog.Logger
}

// New creates the baseline with default configuration.
func New(opts ...Option) *Approach {
	a := &Approach{
		availableTypes: DefaultTypes,
		probability:    DefaultProbability,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Approach) Name() string {
	return "random"
}

func (a *Approach) Description() string {
	return "uniform random type selection baseline"
}

// Initialize applies recognized config keys and reseeds the generator. Safe to
// call before every evaluation run.
func (a *Approach) Initialize(ctx context.Context, config map[string]interface{}) error {
	if types, ok := approach.StringSlice(config, "availableTypes"); ok && len(types) > 0 {
		a.availableTypes = types
	}
	if probability, ok := approach.Float(config, "randomTypeProbability"); ok {
		if probability < 0 {
			probability = 0
		}
		if probability > 1 {
			probability = 1
		}
		a.probability = probability
	}
	if seed, ok := approach.Int64(config, "seed"); ok {
		a.seed = seed
	}
	seed := a.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.rng = rand.New(rand.NewSource(seed))
	return nil
}

// Predict walks sourceCode once and emits a prediction for each value-bearing
// identifier occurrence that passes an independent Bernoulli draw. Malformed
// source yields partial or empty predictions, never an error.
func (a *Approach) Predict(ctx context.Context, sourceCode string, filePath string) ([]predict.TypePrediction, error) {
	if a.rng == nil {
		if err := a.Initialize(ctx, nil); err != nil {
			return nil, err
		}
	}
	if filePath == "" {
		filePath = "source.js"
	}
	src := []byte(sourceCode)
	tree, err := predict.Parse(ctx, src, filePath)
	if err != nil {
		a.logger.Warn("failed to parse source, returning no predictions",
			"approach", a.Name(), "filePath", filePath, "error", err)
		return nil, nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		a.logger.Debug("source contains syntax errors, predictions may be partial",
			"approach", a.Name(), "filePath", filePath)
	}

	var predictions []predict.TypePrediction
	predict.Walk(root, src, func(occ predict.Occurrence) {
		if len(a.availableTypes) == 0 || a.rng.Float64() >= a.probability {
			return
		}
		typeLabel := a.availableTypes[a.rng.Intn(len(a.availableTypes))]
		predictions = append(predictions, predict.TypePrediction{
			Identifier: occ.Name,
			Type:       typeLabel,
			Line:       occ.Line,
			Column:     occ.Column,
			Context: predict.Context{
				ScopePath:     occ.ScopePath,
				Syntactic:     predict.SyntacticContext(occ.Node),
				SemanticHints: predict.SemanticHints(occ.Name),
				UsagePatterns: predict.UsagePatterns(root, src, occ.Name),
			},
		})
	})
	return predictions, nil
}

// Dispose releases the generator; the approach can be re-initialized afterwards.
func (a *Approach) Dispose(ctx context.Context) error {
	a.rng = nil
	return nil
}
