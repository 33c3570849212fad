package consistency

import (
	"fmt"
	"strings"
)

// consistencyScore is an unweighted linear penalty model: 5 points per
// discrepancy, 10 per hidden-income indicator, clamped to [0, 100].
func (a *Analyzer) consistencyScore(result *Result) float64 {
	score := 100.0
	score -= float64(result.TotalDiscrepancies() * discrepancyPenalty)
	score -= float64(len(result.HiddenIncomeIndicators) * indicatorPenalty)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// investigationList derives one recommendation per discrepancy and per
// hidden-income indicator, appends the two conditional catch-alls, and
// truncates to the first ten entries.
func (a *Analyzer) investigationList(result *Result) []string {
	var investigations []string

	discrepancyGroups := [][]Discrepancy{
		result.IncomeComparison.Discrepancies,
		result.AssetComparison.Discrepancies,
		result.ExpenseAnalysis.Discrepancies,
	}
	for _, group := range discrepancyGroups {
		for _, d := range group {
			investigations = append(investigations,
				fmt.Sprintf("Investigate %s: %s", tagToPhrase(d.Type), d.Explanation))
		}
	}

	for _, indicator := range result.HiddenIncomeIndicators {
		investigations = append(investigations,
			fmt.Sprintf("Follow up on %s: %s", tagToPhrase(indicator.Type), indicator.Concern))
	}

	if len(result.LifestyleAnalysis.LuxurySpending) > 0 {
		investigations = append(investigations,
			"Conduct lifestyle analysis to compare reported income with actual spending")
	}

	if result.ConsistencyScore < forensicScoreFloor {
		investigations = append(investigations,
			"Consider forensic accounting due to significant inconsistencies")
	}

	if len(investigations) > maxInvestigations {
		investigations = investigations[:maxInvestigations]
	}
	return investigations
}

func tagToPhrase(tag string) string {
	return strings.ToLower(strings.ReplaceAll(tag, "_", " "))
}
