package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/inferbench/corpus"
	"github.com/viant/inferbench/predict"
)

func TestScorer_PerfectPrediction(t *testing.T) {
	truth := []corpus.GroundTruth{truthEntry("count", "number", 1, 7)}
	set := MatchPredictions([]predict.TypePrediction{prediction("count", "number", 1, 7)}, truth)

	metrics := NewScorer().Score(set, truth)
	assert.Equal(t, 1.0, metrics.Accuracy)
	assert.Equal(t, 1, metrics.Total)
	assert.Equal(t, 1, metrics.Correct)
	assert.Equal(t, 1.0, metrics.Precision["number"])
	assert.Equal(t, 1.0, metrics.Recall["number"])
	assert.Equal(t, 1.0, metrics.F1["number"])
}

func TestScorer_WrongType(t *testing.T) {
	truth := []corpus.GroundTruth{truthEntry("count", "number", 1, 7)}
	set := MatchPredictions([]predict.TypePrediction{prediction("count", "string", 1, 7)}, truth)

	metrics := NewScorer().Score(set, truth)
	assert.Equal(t, 0.0, metrics.Accuracy)
	assert.Equal(t, 0.0, metrics.Precision["string"])
	assert.Equal(t, 0.0, metrics.Recall["number"])
	assert.Equal(t, 0.0, metrics.F1["string"])
	assert.Equal(t, 0.0, metrics.F1["number"])
}

func TestScorer_EmptyMatchSet(t *testing.T) {
	metrics := NewScorer().Score(&MatchSet{}, nil)
	assert.Equal(t, 0.0, metrics.Accuracy)
	assert.Empty(t, metrics.Precision)
	assert.Empty(t, metrics.Recall)
	assert.Empty(t, metrics.F1)
}

func TestScorer_RecallUsesFullGroundTruthPopulation(t *testing.T) {
	// two number entries in the ground truth, only one predicted
	truth := []corpus.GroundTruth{
		truthEntry("count", "number", 1, 7),
		truthEntry("total", "number", 2, 4),
	}
	set := MatchPredictions([]predict.TypePrediction{prediction("count", "number", 1, 7)}, truth)

	metrics := NewScorer().Score(set, truth)
	assert.Equal(t, 1.0, metrics.Precision["number"])
	assert.Equal(t, 0.5, metrics.Recall["number"])
}

func TestScorer_F1IsHarmonicNotArithmetic(t *testing.T) {
	truth := []corpus.GroundTruth{
		truthEntry("count", "number", 1, 7),
		truthEntry("total", "number", 2, 4),
	}
	set := MatchPredictions([]predict.TypePrediction{prediction("count", "number", 1, 7)}, truth)

	metrics := NewScorer().Score(set, truth)
	precision := metrics.Precision["number"]
	recall := metrics.Recall["number"]
	expected := 2 * precision * recall / (precision + recall)
	assert.InDelta(t, expected, metrics.F1["number"], 1e-9)
	assert.NotEqual(t, (precision+recall)/2, metrics.F1["number"])
}

func TestScorer_UnmatchedPredictionsExcludedByDefault(t *testing.T) {
	truth := []corpus.GroundTruth{truthEntry("count", "number", 1, 7)}
	set := MatchPredictions([]predict.TypePrediction{
		prediction("count", "number", 1, 7),
		prediction("ghost", "number", 9, 0),
	}, truth)

	metrics := NewScorer().Score(set, truth)
	assert.Equal(t, 1.0, metrics.Accuracy, "unmatched prediction must not affect scored totals")
	assert.Equal(t, 1, metrics.Total)
}

func TestScorer_StrictUnmatchedPolicy(t *testing.T) {
	truth := []corpus.GroundTruth{truthEntry("count", "number", 1, 7)}
	set := MatchPredictions([]predict.TypePrediction{
		prediction("count", "number", 1, 7),
		prediction("ghost", "number", 9, 0),
	}, truth)

	metrics := NewScorer(WithStrictUnmatched()).Score(set, truth)
	assert.Equal(t, 0.5, metrics.Accuracy)
}

func TestScorer_BoundsHold(t *testing.T) {
	truth := []corpus.GroundTruth{
		truthEntry("a", "number", 1, 0),
		truthEntry("b", "string", 2, 0),
		truthEntry("c", "boolean", 3, 0),
	}
	set := MatchPredictions([]predict.TypePrediction{
		prediction("a", "number", 1, 0),
		prediction("b", "number", 2, 0),
		prediction("c", "boolean", 3, 0),
	}, truth)

	metrics := NewScorer().Score(set, truth)
	assert.GreaterOrEqual(t, metrics.Accuracy, 0.0)
	assert.LessOrEqual(t, metrics.Accuracy, 1.0)
	for _, values := range []map[string]float64{metrics.Precision, metrics.Recall, metrics.F1} {
		for typeLabel, value := range values {
			assert.GreaterOrEqual(t, value, 0.0, typeLabel)
			assert.LessOrEqual(t, value, 1.0, typeLabel)
		}
	}
	// F1 keys cover the union of precision and recall keys
	for typeLabel := range metrics.Precision {
		assert.Contains(t, metrics.F1, typeLabel)
	}
	for typeLabel := range metrics.Recall {
		assert.Contains(t, metrics.F1, typeLabel)
	}
}
