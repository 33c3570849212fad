package consistency

import (
	"fmt"
	"math"
	"strings"

	"familylaw_toolkit/pkg/core/money"
	"familylaw_toolkit/pkg/core/taxreturn"
	"familylaw_toolkit/pkg/models"
)

// Analyzer runs the cross-document consistency pipeline. It holds only
// read-only configuration; CompareDocuments is a single-pass, stateless
// computation safe to run concurrently across cases.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given thresholds and keyword
// dictionaries.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.SpendingCategories == nil {
		cfg = DefaultConfig()
	}
	return &Analyzer{cfg: cfg}
}

// CompareDocuments compares income, assets, and expenses across the net
// worth statement, tax return analysis, pay stubs, and bank statements,
// detects hidden-income indicators, and rolls everything into a consistency
// score with a prioritized investigation list. Missing or empty inputs
// produce empty result sections rather than errors.
func (a *Analyzer) CompareDocuments(
	netWorth *models.NetWorthStatement,
	taxAnalysis *taxreturn.Analysis,
	payStubs []models.PayStub,
	bankStatements []models.BankStatement,
) *Result {
	result := &Result{
		IncomeComparison:  a.compareIncomeSources(netWorth, taxAnalysis, payStubs),
		AssetComparison:   a.compareAssets(netWorth, bankStatements),
		ExpenseAnalysis:   a.analyzeExpenses(netWorth, bankStatements),
		LifestyleAnalysis: a.analyzeLifestyle(bankStatements),
	}
	result.HiddenIncomeIndicators = a.findHiddenIncomeIndicators(netWorth, bankStatements)
	result.DigitAnalysis = analyzeLeadingDigits(bankStatements)

	result.ConsistencyScore = a.consistencyScore(result)
	result.RecommendedInvestigations = a.investigationList(result)
	return result
}

// compareIncomeSources checks annualized pay-stub wages against the tax
// return and net-worth business income against tax business income. The wage
// check uses its own 10% threshold; the business check uses the shared 15%
// discrepancy threshold.
func (a *Analyzer) compareIncomeSources(
	netWorth *models.NetWorthStatement,
	taxAnalysis *taxreturn.Analysis,
	payStubs []models.PayStub,
) IncomeComparison {
	comparison := IncomeComparison{W2Income: map[string]float64{}}

	if len(payStubs) > 0 {
		annualized := AnnualizePayStubs(payStubs)
		comparison.W2Income["pay_stubs"] = annualized

		if taxAnalysis != nil && taxAnalysis.Wages != 0 {
			taxWages := taxAnalysis.Wages
			variance := math.Abs(annualized-taxWages) / math.Max(taxWages, 1)
			if variance > a.cfg.WageVarianceThreshold {
				comparison.Discrepancies = append(comparison.Discrepancies, Discrepancy{
					Type:        "WAGE_DISCREPANCY",
					Source1:     fmt.Sprintf("Pay stubs: %s", money.FormatUSD(annualized)),
					Source2:     fmt.Sprintf("Tax return: %s", money.FormatUSD(taxWages)),
					Variance:    formatVariance(variance),
					Explanation: "Reported wages differ significantly",
				})
			}
		}
	}

	if netWorth != nil && taxAnalysis != nil {
		bizNW := netWorth.IncomeSources["business"]
		bizTax := taxAnalysis.BusinessIncome
		if bizNW != 0 && bizTax != 0 {
			variance := math.Abs(bizNW-bizTax) / math.Max(bizTax, 1)
			if variance > a.cfg.DiscrepancyThreshold {
				comparison.Discrepancies = append(comparison.Discrepancies, Discrepancy{
					Type:        "BUSINESS_INCOME_DISCREPANCY",
					Source1:     fmt.Sprintf("Net Worth: %s", money.FormatUSD(bizNW)),
					Source2:     fmt.Sprintf("Tax return: %s", money.FormatUSD(bizTax)),
					Variance:    formatVariance(variance),
					Explanation: "Business income reported differently",
				})
			}
		}
	}

	return comparison
}

// compareAssets sums bank statement ending balances against net-worth asset
// entries whose label looks like a liquid account (substring match on
// checking/savings/cash/bank).
func (a *Analyzer) compareAssets(netWorth *models.NetWorthStatement, bankStatements []models.BankStatement) AssetComparison {
	comparison := AssetComparison{BankEvidence: map[string]float64{}}

	for _, stmt := range bankStatements {
		comparison.TotalBankAssets += stmt.EndingBalance
		name := stmt.AccountName
		if name == "" {
			name = "Unknown"
		}
		comparison.BankEvidence[name] = stmt.EndingBalance
	}

	if netWorth != nil {
		for key, value := range netWorth.Assets {
			lower := strings.ToLower(key)
			for _, word := range []string{"checking", "savings", "cash", "bank"} {
				if strings.Contains(lower, word) {
					comparison.ReportedLiquidAssets += value
					break
				}
			}
		}
	}

	variance := math.Abs(comparison.ReportedLiquidAssets-comparison.TotalBankAssets) / math.Max(comparison.TotalBankAssets, 1)
	if variance > a.cfg.DiscrepancyThreshold && comparison.TotalBankAssets > a.cfg.AssetEvidenceFloor {
		comparison.Discrepancies = append(comparison.Discrepancies, Discrepancy{
			Type:        "ASSET_UNDERSTATEMENT",
			Source1:     fmt.Sprintf("Reported: %s", money.FormatUSD(comparison.ReportedLiquidAssets)),
			Source2:     fmt.Sprintf("Bank evidence: %s", money.FormatUSD(comparison.TotalBankAssets)),
			Variance:    formatVariance(variance),
			Explanation: "Bank assets exceed reported liquid assets",
		})
	}

	return comparison
}

// analyzeExpenses buckets bank transactions into spending categories and
// compares each against the corresponding reported expense. Expense
// self-reporting is imprecise, so the looser 50% threshold applies, and only
// when both sides are positive.
func (a *Analyzer) analyzeExpenses(netWorth *models.NetWorthStatement, bankStatements []models.BankStatement) ExpenseAnalysis {
	analysis := ExpenseAnalysis{
		ReportedExpenses: map[string]float64{},
		ActualSpending:   map[string]float64{},
	}
	if netWorth != nil {
		analysis.ReportedExpenses = netWorth.Expenses
	}

	if len(bankStatements) == 0 {
		return analysis
	}

	analysis.ActualSpending = a.categorizeSpending(bankStatements)

	for category, reported := range analysis.ReportedExpenses {
		actual := analysis.ActualSpending[category]
		if reported <= 0 || actual <= 0 {
			continue
		}
		variance := math.Abs(reported-actual) / math.Max(reported, 1)
		if variance > a.cfg.ExpenseVarianceThreshold {
			analysis.Discrepancies = append(analysis.Discrepancies, Discrepancy{
				Type:        "EXPENSE_VARIANCE",
				Category:    category,
				Source1:     fmt.Sprintf("Reported: %s", money.FormatUSD(reported)),
				Source2:     fmt.Sprintf("Actual: %s", money.FormatUSD(actual)),
				Variance:    formatVariance(variance),
				Explanation: fmt.Sprintf("Reported %s expenses differ from actual spending", category),
			})
		}
	}

	return analysis
}

// categorizeSpending assigns each transaction's absolute amount to the first
// category with a matching keyword.
func (a *Analyzer) categorizeSpending(bankStatements []models.BankStatement) map[string]float64 {
	categories := map[string]float64{}
	for _, cat := range a.cfg.SpendingCategories {
		categories[cat.Name] = 0
	}

	for _, stmt := range bankStatements {
		for _, txn := range stmt.Transactions {
			description := strings.ToLower(txn.Description)
			amount := math.Abs(txn.Amount)

			for _, cat := range a.cfg.SpendingCategories {
				if containsAny(description, cat.Keywords) {
					categories[cat.Name] += amount
					break
				}
			}
		}
	}

	return categories
}

// analyzeLifestyle collects luxury-spend occurrences above the amount floor.
func (a *Analyzer) analyzeLifestyle(bankStatements []models.BankStatement) LifestyleAnalysis {
	lifestyle := LifestyleAnalysis{}

	for _, stmt := range bankStatements {
		for _, txn := range stmt.Transactions {
			description := strings.ToLower(txn.Description)
			amount := math.Abs(txn.Amount)
			if amount <= a.cfg.LuxuryAmountFloor {
				continue
			}

			for _, cat := range a.cfg.LuxuryCategories {
				if containsAny(description, cat.Keywords) {
					lifestyle.LuxurySpending = append(lifestyle.LuxurySpending, LuxuryIndicator{
						Category:    titleCase(cat.Name),
						Description: truncate(description, 50),
						Amount:      amount,
						Date:        txn.Date,
					})
				}
			}
		}
	}

	return lifestyle
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func formatVariance(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// titleCase converts an underscore tag to a display label,
// e.g. "high_end_retail" -> "High End Retail".
func titleCase(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// AnnualizePayStubs projects annual gross wages from the most recent pay
// stub by pay frequency. Unrecognized frequencies default to bi-weekly.
func AnnualizePayStubs(payStubs []models.PayStub) float64 {
	if len(payStubs) == 0 {
		return 0
	}

	latest := payStubs[0]
	for _, stub := range payStubs[1:] {
		if stub.PayDate.After(latest.PayDate) {
			latest = stub
		}
	}

	multiplier := 26.0
	switch strings.ToLower(latest.PayFrequency) {
	case "weekly":
		multiplier = 52
	case "bi-weekly":
		multiplier = 26
	case "semi-monthly":
		multiplier = 24
	case "monthly":
		multiplier = 12
	}

	return latest.GrossPay * multiplier
}
