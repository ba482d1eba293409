package evaluator

import (
	"sort"
	"time"
)

// ApproachComparison is one row of the per-approach comparison detail.
type ApproachComparison struct {
	Name               string
	Accuracy           float64
	ExecutionTime      time.Duration
	TotalPredictions   int
	CorrectPredictions int
}

// ComparisonSummary reports the best and fastest approaches across one
// evaluate-all run. Formatting the summary for any output stream is a caller
// concern.
type ComparisonSummary struct {
	BestApproach    string
	BestAccuracy    float64
	FastestApproach string
	FastestTime     time.Duration
	TotalTestCases  int
	Details         []ApproachComparison
}

// CompareResults selects the approach with the maximum accuracy (ties broken
// by registration order) and the one with the minimum execution time, and
// reports the match total of the first available result as TotalTestCases.
// Details are sorted by descending accuracy.
func (e *Evaluator) CompareResults(results map[string]*EvaluationResult) *ComparisonSummary {
	summary := &ComparisonSummary{}
	first := true
	for _, name := range e.order {
		result, ok := results[name]
		if !ok {
			continue
		}
		if first {
			summary.BestApproach = name
			summary.BestAccuracy = result.Accuracy
			summary.FastestApproach = name
			summary.FastestTime = result.ExecutionTime
			summary.TotalTestCases = result.TotalPredictions
			first = false
		} else {
			if result.Accuracy > summary.BestAccuracy {
				summary.BestApproach = name
				summary.BestAccuracy = result.Accuracy
			}
			if result.ExecutionTime < summary.FastestTime {
				summary.FastestApproach = name
				summary.FastestTime = result.ExecutionTime
			}
		}
		summary.Details = append(summary.Details, ApproachComparison{
			Name:               name,
			Accuracy:           result.Accuracy,
			ExecutionTime:      result.ExecutionTime,
			TotalPredictions:   result.TotalPredictions,
			CorrectPredictions: result.CorrectPredictions,
		})
	}
	sort.SliceStable(summary.Details, func(i, j int) bool {
		return summary.Details[i].Accuracy > summary.Details[j].Accuracy
	})
	return summary
}
