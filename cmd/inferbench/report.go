package main

import (
	"fmt"
	"io"

	"github.com/viant/inferbench/evaluator"
)

// renderSummary prints the comparison summary as plain text. Rendering lives
// in the CLI so the evaluator stays free of output formatting.
func renderSummary(w io.Writer, summary *evaluator.ComparisonSummary, caseCount int) {
	fmt.Fprintf(w, "Evaluated %d test case(s)\n", caseCount)
	if len(summary.Details) == 0 {
		fmt.Fprintln(w, "No approaches produced results")
		return
	}
	fmt.Fprintf(w, "Best accuracy:  %s (%.2f%%)\n", summary.BestApproach, summary.BestAccuracy*100)
	fmt.Fprintf(w, "Fastest:        %s (%s)\n", summary.FastestApproach, summary.FastestTime)
	fmt.Fprintf(w, "Matched total:  %d\n\n", summary.TotalTestCases)

	fmt.Fprintf(w, "%-20s %10s %10s %10s %12s\n", "APPROACH", "ACCURACY", "MATCHED", "CORRECT", "TIME")
	for _, detail := range summary.Details {
		fmt.Fprintf(w, "%-20s %9.2f%% %10d %10d %12s\n",
			detail.Name,
			detail.Accuracy*100,
			detail.TotalPredictions,
			detail.CorrectPredictions,
			detail.ExecutionTime)
	}
}
