package consistency

import (
	"fmt"
	"strings"
	"testing"
)

func TestEmptyInputsScoreOneHundred(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	res := analyzer.CompareDocuments(sampleNetWorth(), nil, nil, nil)
	if res.ConsistencyScore != 100 {
		t.Errorf("Expected score 100 with no evidence, got %f", res.ConsistencyScore)
	}
	if res.TotalDiscrepancies() != 0 {
		t.Errorf("Expected no discrepancies, got %d", res.TotalDiscrepancies())
	}
	if len(res.HiddenIncomeIndicators) != 0 {
		t.Errorf("Expected no indicators, got %v", res.HiddenIncomeIndicators)
	}
	if len(res.RecommendedInvestigations) != 0 {
		t.Errorf("Expected no investigations, got %v", res.RecommendedInvestigations)
	}
}

func TestScoreClampedToZero(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	// 25 discrepancies and 4 indicators would score 100-125-40 = -65.
	res := &Result{}
	for i := 0; i < 25; i++ {
		res.ExpenseAnalysis.Discrepancies = append(res.ExpenseAnalysis.Discrepancies,
			Discrepancy{Type: "EXPENSE_VARIANCE", Explanation: fmt.Sprintf("case %d", i)})
	}
	for i := 0; i < 4; i++ {
		res.HiddenIncomeIndicators = append(res.HiddenIncomeIndicators,
			HiddenIncomeIndicator{Type: "LARGE_CASH_WITHDRAWALS"})
	}

	if score := analyzer.consistencyScore(res); score != 0 {
		t.Errorf("Expected score clamped to 0, got %f", score)
	}
}

func TestScorePenalties(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	res := &Result{
		IncomeComparison: IncomeComparison{
			Discrepancies: []Discrepancy{{Type: "WAGE_DISCREPANCY"}},
		},
		AssetComparison: AssetComparison{
			Discrepancies: []Discrepancy{{Type: "ASSET_UNDERSTATEMENT"}},
		},
		HiddenIncomeIndicators: []HiddenIncomeIndicator{
			{Type: "UNEXPLAINED_REGULAR_DEPOSITS"},
		},
	}

	// 100 - 2*5 - 1*10 = 80
	if score := analyzer.consistencyScore(res); score != 80 {
		t.Errorf("Expected score 80, got %f", score)
	}
}

func TestInvestigationListTruncatedToTen(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	res := &Result{}
	for i := 0; i < 12; i++ {
		res.ExpenseAnalysis.Discrepancies = append(res.ExpenseAnalysis.Discrepancies,
			Discrepancy{Type: "EXPENSE_VARIANCE", Explanation: fmt.Sprintf("case %d", i)})
	}
	res.ConsistencyScore = analyzer.consistencyScore(res)

	investigations := analyzer.investigationList(res)
	if len(investigations) != 10 {
		t.Errorf("Expected list capped at 10, got %d", len(investigations))
	}
}

func TestInvestigationCatchAlls(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	res := &Result{
		LifestyleAnalysis: LifestyleAnalysis{
			LuxurySpending: []LuxuryIndicator{{Category: "High End Retail", Amount: 1200}},
		},
		HiddenIncomeIndicators: []HiddenIncomeIndicator{
			{Type: "LARGE_CASH_WITHDRAWALS", Concern: "Could indicate cash business or hidden assets"},
			{Type: "TRANSFERS_TO_UNKNOWN_ACCOUNTS", Concern: "Could be hiding assets in other accounts"},
			{Type: "UNEXPLAINED_REGULAR_DEPOSITS", Concern: "Possible unreported income source"},
			{Type: "UNEXPLAINED_REGULAR_DEPOSITS", Concern: "Possible unreported income source"},
		},
	}
	res.ConsistencyScore = analyzer.consistencyScore(res) // 60, below the forensic floor

	investigations := analyzer.investigationList(res)

	if !containsString(investigations, "Conduct lifestyle analysis to compare reported income with actual spending") {
		t.Errorf("Expected lifestyle catch-all: %v", investigations)
	}
	if !containsString(investigations, "Consider forensic accounting due to significant inconsistencies") {
		t.Errorf("Expected forensic catch-all: %v", investigations)
	}
	if !strings.HasPrefix(investigations[0], "Follow up on large cash withdrawals:") {
		t.Errorf("Expected humanized indicator tag, got %s", investigations[0])
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
