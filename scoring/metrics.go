package scoring

import (
	"github.com/viant/inferbench/corpus"
)

// Metrics aggregates a match set into overall accuracy and per-type scores.
// Zero denominators resolve to 0, never a division error.
type Metrics struct {
	Accuracy  float64
	Precision map[string]float64 // keyed by predicted type
	Recall    map[string]float64 // keyed by actual type
	F1        map[string]float64 // union of precision and recall keys
	Total     int                // matched predictions
	Correct   int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithStrictUnmatched counts unmatched predictions against accuracy. The
// default policy excludes them from every total, which never penalizes
// predictions at positions without ground truth; strict mode treats each as
// an incorrect prediction in the accuracy denominator.
func WithStrictUnmatched() Option {
	return func(s *Scorer) {
		s.strictUnmatched = true
	}
}

// Scorer computes metrics from a match set under a fixed policy.
type Scorer struct {
	strictUnmatched bool
}

// NewScorer creates a scorer with the default lenient policy.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes accuracy over the match set and precision/recall/F1 per type
// label. Recall denominators use the full ground-truth population per type,
// independent of whether any prediction existed for an instance.
func (s *Scorer) Score(set *MatchSet, truth []corpus.GroundTruth) Metrics {
	total := len(set.Matches)
	correct := 0
	predictedTotal := map[string]int{}
	predictedCorrect := map[string]int{}
	actualCorrect := map[string]int{}
	for _, match := range set.Matches {
		predictedTotal[match.Prediction.Type]++
		if match.Correct {
			correct++
			predictedCorrect[match.Prediction.Type]++
			actualCorrect[match.Truth.Type]++
		}
	}

	truthTotal := map[string]int{}
	for _, gt := range truth {
		truthTotal[gt.Type]++
	}

	metrics := Metrics{
		Precision: make(map[string]float64),
		Recall:    make(map[string]float64),
		F1:        make(map[string]float64),
		Total:     total,
		Correct:   correct,
	}

	denominator := total
	if s.strictUnmatched {
		denominator += len(set.Unmatched)
	}
	if denominator > 0 {
		metrics.Accuracy = float64(correct) / float64(denominator)
	}

	for typeLabel, count := range predictedTotal {
		metrics.Precision[typeLabel] = float64(predictedCorrect[typeLabel]) / float64(count)
	}
	for typeLabel, count := range truthTotal {
		metrics.Recall[typeLabel] = float64(actualCorrect[typeLabel]) / float64(count)
	}

	for typeLabel := range metrics.Precision {
		metrics.F1[typeLabel] = f1(metrics.Precision[typeLabel], metrics.Recall[typeLabel])
	}
	for typeLabel := range metrics.Recall {
		if _, done := metrics.F1[typeLabel]; !done {
			metrics.F1[typeLabel] = f1(metrics.Precision[typeLabel], metrics.Recall[typeLabel])
		}
	}
	return metrics
}

func f1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}
