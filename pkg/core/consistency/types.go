package consistency

// Discrepancy is a flagged numeric mismatch between two document sources.
// Source values are pre-formatted strings ready for report rendering.
type Discrepancy struct {
	Type        string `json:"type"`
	Category    string `json:"category,omitempty"` // set for expense discrepancies
	Source1     string `json:"source1"`
	Source2     string `json:"source2"`
	Variance    string `json:"variance"`
	Explanation string `json:"explanation"`
}

// HiddenIncomeIndicator is a heuristic signal of unreported income or
// concealed assets derived from bank transaction patterns.
type HiddenIncomeIndicator struct {
	Type                  string `json:"type"`
	Description           string `json:"description"`
	ReportedMonthlyIncome string `json:"reported_monthly_income,omitempty"`
	TotalAmount           string `json:"total_amount,omitempty"`
	Concern               string `json:"concern"`
}

// IncomeComparison holds the wage/business income cross-checks.
type IncomeComparison struct {
	W2Income      map[string]float64 `json:"w2_income"` // "pay_stubs" -> annualized gross
	Discrepancies []Discrepancy      `json:"discrepancies"`
}

// AssetComparison holds the reported-vs-bank liquid asset check.
type AssetComparison struct {
	BankEvidence         map[string]float64 `json:"bank_evidence"` // account name -> ending balance
	ReportedLiquidAssets float64            `json:"reported_liquid_assets"`
	TotalBankAssets      float64            `json:"total_bank_assets"`
	Discrepancies        []Discrepancy      `json:"discrepancies"`
}

// ExpenseAnalysis compares reported expense categories against actual
// bucketed spending from bank transactions.
type ExpenseAnalysis struct {
	ReportedExpenses map[string]float64 `json:"reported_expenses"`
	ActualSpending   map[string]float64 `json:"actual_spending"`
	Discrepancies    []Discrepancy      `json:"discrepancies"`
}

// LuxuryIndicator is one luxury-spend occurrence found in the transactions.
type LuxuryIndicator struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// LifestyleAnalysis is descriptive output only; it never feeds the
// discrepancy lists.
type LifestyleAnalysis struct {
	LuxurySpending []LuxuryIndicator `json:"luxury_spending"`
}

// Result is the full cross-document consistency analysis.
type Result struct {
	IncomeComparison          IncomeComparison        `json:"income_comparison"`
	AssetComparison           AssetComparison         `json:"asset_comparison"`
	ExpenseAnalysis           ExpenseAnalysis         `json:"expense_analysis"`
	LifestyleAnalysis         LifestyleAnalysis       `json:"lifestyle_analysis"`
	HiddenIncomeIndicators    []HiddenIncomeIndicator `json:"hidden_income_indicators"`
	DigitAnalysis             *DigitAnalysis          `json:"digit_analysis,omitempty"`
	ConsistencyScore          float64                 `json:"consistency_score"`
	RecommendedInvestigations []string                `json:"recommended_investigations"`
}

// TotalDiscrepancies counts flags across the three comparison categories.
func (r *Result) TotalDiscrepancies() int {
	return len(r.IncomeComparison.Discrepancies) +
		len(r.AssetComparison.Discrepancies) +
		len(r.ExpenseAnalysis.Discrepancies)
}
