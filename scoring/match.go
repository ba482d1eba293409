// Package scoring pairs predictions with ground truth and aggregates the
// pairs into accuracy and per-type precision/recall/F1.
package scoring

import (
	"github.com/viant/inferbench/corpus"
	"github.com/viant/inferbench/predict"
)

// Match pairs one prediction with the ground-truth entry sharing the same
// identifier name and source position.
type Match struct {
	Prediction predict.TypePrediction
	Truth      corpus.GroundTruth
	Correct    bool
}

// MatchSet holds the outcome of pairing one prediction list against one
// ground-truth sequence. Unmatched predictions are kept as a diagnostic; under
// the default scoring policy they affect no total.
type MatchSet struct {
	Matches   []Match
	Unmatched []predict.TypePrediction
}

// Merge appends another set's matches and unmatched predictions, so results
// accumulate across test cases.
func (s *MatchSet) Merge(other *MatchSet) {
	s.Matches = append(s.Matches, other.Matches...)
	s.Unmatched = append(s.Unmatched, other.Unmatched...)
}

// MatchPredictions pairs each prediction with the ground-truth entry having an
// identical identifier name, line, and column. Each ground-truth entry is
// consumed by at most one prediction; predictions with no positional match are
// recorded as unmatched. Ground-truth entries left unpaired surface only in
// recall denominators, never as matches.
func MatchPredictions(predictions []predict.TypePrediction, truth []corpus.GroundTruth) *MatchSet {
	set := &MatchSet{}
	used := make([]bool, len(truth))
	for _, prediction := range predictions {
		found := false
		for i, gt := range truth {
			if used[i] {
				continue
			}
			if gt.Identifier == prediction.Identifier &&
				gt.Position.Line == prediction.Line &&
				gt.Position.Column == prediction.Column {
				used[i] = true
				set.Matches = append(set.Matches, Match{
					Prediction: prediction,
					Truth:      gt,
					Correct:    prediction.Type == gt.Type,
				})
				found = true
				break
			}
		}
		if !found {
			set.Unmatched = append(set.Unmatched, prediction)
		}
	}
	return set
}
