package consistency

// SpendingCategory is one bucket of the transaction categorizer. Order
// matters: a transaction lands in the first category with a matching
// keyword, so the config slice preserves matching priority.
type SpendingCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Config carries the comparison thresholds and keyword dictionaries. The
// three variance thresholds are distinct per category: wage and
// asset/business reporting is held tighter than expense self-reporting.
// They must not be collapsed into one value.
type Config struct {
	// Variance threshold for the pay-stub vs tax-return wage check.
	WageVarianceThreshold float64 `yaml:"wage_variance_threshold"`

	// Variance threshold for business income and liquid asset checks.
	DiscrepancyThreshold float64 `yaml:"discrepancy_threshold"`

	// Variance threshold for reported vs actual expense categories.
	ExpenseVarianceThreshold float64 `yaml:"expense_variance_threshold"`

	// Minimum total bank balance before an asset discrepancy is flagged;
	// suppresses noise on near-zero accounts.
	AssetEvidenceFloor float64 `yaml:"asset_evidence_floor"`

	// Minimum transaction size for luxury and cash-withdrawal detection.
	LuxuryAmountFloor   float64 `yaml:"luxury_amount_floor"`
	CashWithdrawalFloor float64 `yaml:"cash_withdrawal_floor"`

	// Bank names treated as disclosed destinations by the unknown-transfer
	// check. Ideally derived from the net worth statement's accounts; kept
	// configurable until that wiring exists.
	KnownBanks []string `yaml:"known_banks"`

	SpendingCategories []SpendingCategory `yaml:"spending_categories"`
	LuxuryCategories   []SpendingCategory `yaml:"luxury_categories"`
}

// Deposit-pattern detection constants and the scoring model. Fixed by the
// analysis methodology rather than per-firm tuning.
const (
	depositPatternMinCount   = 3
	depositConsistencyMax    = 0.30
	incomeCoverageMultiplier = 1.2

	discrepancyPenalty = 5
	indicatorPenalty   = 10
	forensicScoreFloor = 70
	maxInvestigations  = 10
)

// DefaultConfig returns the standard thresholds and keyword dictionaries.
func DefaultConfig() Config {
	return Config{
		WageVarianceThreshold:    0.10,
		DiscrepancyThreshold:     0.15,
		ExpenseVarianceThreshold: 0.50,
		AssetEvidenceFloor:       1000,
		LuxuryAmountFloor:        500,
		CashWithdrawalFloor:      500,
		KnownBanks:               []string{"chase", "bank of america", "citibank", "wells fargo"},
		SpendingCategories: []SpendingCategory{
			{Name: "housing", Keywords: []string{"mortgage", "rent", "property tax", "hoa", "homeowner"}},
			{Name: "transportation", Keywords: []string{"gas", "auto", "car payment", "insurance", "repair"}},
			{Name: "food", Keywords: []string{"grocery", "restaurant", "dining", "supermarket"}},
			{Name: "entertainment", Keywords: []string{"netflix", "spotify", "movie", "concert", "golf"}},
			{Name: "luxury", Keywords: []string{"jewelry", "designer", "spa", "country club", "vacation"}},
			{Name: "utilities", Keywords: []string{"electric", "water", "gas company", "internet", "cable"}},
			{Name: "insurance", Keywords: []string{"health insurance", "life insurance", "disability"}},
			{Name: "medical", Keywords: []string{"doctor", "hospital", "pharmacy", "dental"}},
		},
		LuxuryCategories: []SpendingCategory{
			{Name: "high_end_retail", Keywords: []string{"tiffany", "cartier", "rolex", "louis vuitton", "gucci"}},
			{Name: "luxury_travel", Keywords: []string{"first class", "business class", "ritz-carlton", "four seasons"}},
			{Name: "fine_dining", Keywords: []string{"michelin", "steakhouse", "fine dining", "sommelier"}},
			{Name: "country_clubs", Keywords: []string{"country club", "golf club", "yacht club", "tennis club"}},
		},
	}
}
