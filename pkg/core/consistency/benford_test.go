package consistency

import (
	"fmt"
	"testing"

	"familylaw_toolkit/pkg/models"
)

func statementWithAmounts(amounts []float64) []models.BankStatement {
	stmt := models.BankStatement{AccountName: "Checking", AccountType: "checking"}
	for i, amt := range amounts {
		stmt.Transactions = append(stmt.Transactions, models.Transaction{
			Date:        "2024-06-01",
			Description: fmt.Sprintf("Transaction %d", i),
			Amount:      amt,
		})
	}
	return []models.BankStatement{stmt}
}

func TestDigitAnalysisInsufficientSample(t *testing.T) {
	amounts := []float64{120, 250, 380, 410, 95}
	if got := analyzeLeadingDigits(statementWithAmounts(amounts)); got != nil {
		t.Errorf("Expected nil below minimum sample, got %+v", got)
	}
}

func TestDigitAnalysisConformingDistribution(t *testing.T) {
	// Leading-digit counts close to the Benford frequencies.
	counts := []int{30, 18, 12, 10, 8, 7, 6, 5, 4}
	var amounts []float64
	for d, n := range counts {
		for i := 0; i < n; i++ {
			amounts = append(amounts, float64(d+1)*100+float64(i))
		}
	}

	result := analyzeLeadingDigits(statementWithAmounts(amounts))
	if result == nil {
		t.Fatal("Expected analysis for 100 transactions")
	}
	if result.SampleSize != 100 {
		t.Errorf("Expected sample size 100, got %d", result.SampleSize)
	}
	if result.Flagged {
		t.Errorf("Expected conforming sample unflagged, MAD %.4f", result.MeanAbsDeviation)
	}
	if result.Level != "Low Risk" {
		t.Errorf("Expected Low Risk, got %q", result.Level)
	}
}

func TestDigitAnalysisUniformDigitsFlagged(t *testing.T) {
	// Every amount leads with 9, far from the expected 4.6%.
	var amounts []float64
	for i := 0; i < 30; i++ {
		amounts = append(amounts, 900+float64(i))
	}

	result := analyzeLeadingDigits(statementWithAmounts(amounts))
	if result == nil {
		t.Fatal("Expected analysis for 30 transactions")
	}
	if !result.Flagged {
		t.Errorf("Expected flagged, MAD %.4f", result.MeanAbsDeviation)
	}
	if result.Level != "High Risk" {
		t.Errorf("Expected High Risk, got %q", result.Level)
	}
	if result.DigitCounts[9] != 30 {
		t.Errorf("Expected 30 leading nines, got %d", result.DigitCounts[9])
	}
}

func TestDigitAnalysisSkipsSmallAmounts(t *testing.T) {
	var amounts []float64
	for i := 0; i < 30; i++ {
		amounts = append(amounts, 150+float64(i))
	}
	amounts = append(amounts, 4.99, -2.50, 9.99)

	result := analyzeLeadingDigits(statementWithAmounts(amounts))
	if result == nil {
		t.Fatal("Expected analysis")
	}
	if result.SampleSize != 30 {
		t.Errorf("Expected amounts under $10 skipped, sample %d", result.SampleSize)
	}
}
