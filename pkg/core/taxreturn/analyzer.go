package taxreturn

import (
	"fmt"
	"math"

	"familylaw_toolkit/pkg/core/money"
	"familylaw_toolkit/pkg/models"
)

// RedFlag is a heuristic issue spotted on a tax return.
type RedFlag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Concern     string `json:"concern"`
}

// Analysis is the categorized view of a Form 1040. IncomeSources holds the
// positive extracted line values keyed "Line N"; the named fields carry the
// raw (possibly negative) values for downstream comparison.
type Analysis struct {
	IncomeSources map[string]float64 `json:"income_sources"`

	Wages               float64 `json:"wages"`
	BusinessIncome      float64 `json:"business_income"`
	RentalIncome        float64 `json:"rental_income"`
	CapitalGains        float64 `json:"capital_gains"`
	OtherIncome         float64 `json:"other_income"`
	AdjustedGrossIncome float64 `json:"adjusted_gross_income"`
	TaxableIncome       float64 `json:"taxable_income"`

	RedFlags []RedFlag `json:"red_flags"`
}

// Thresholds are the red-flag cutoffs. Heuristic tuning values, not law;
// defaults match current behavior and should change deliberately.
type Thresholds struct {
	BusinessLossFloor  float64 `yaml:"business_loss_floor"`  // flag below (more negative than) this
	RentalLossFloor    float64 `yaml:"rental_loss_floor"`    // flag below this
	OtherIncomeCeiling float64 `yaml:"other_income_ceiling"` // flag above this
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BusinessLossFloor:  -10000,
		RentalLossFloor:    -5000,
		OtherIncomeCeiling: 5000,
	}
}

// Analyzer maps IRS Form 1040 lines to income categories and spots red-flag
// patterns. Stateless aside from its thresholds.
type Analyzer struct {
	TaxYear    int
	thresholds Thresholds
}

// NewAnalyzer creates an analyzer for the given tax year.
func NewAnalyzer(taxYear int, thresholds Thresholds) *Analyzer {
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}
	return &Analyzer{TaxYear: taxYear, thresholds: thresholds}
}

// 1040 line numbers per income category.
var lineMapping = []struct {
	category string
	lines    []string
}{
	{"wages", []string{"1", "7"}},
	{"business_income", []string{"12"}},  // Schedule C
	{"rental_income", []string{"17"}},    // Schedule E
	{"capital_gains", []string{"13"}},    // Schedule D
	{"other_income", []string{"21"}},
	{"adjusted_gross_income", []string{"37"}},
	{"taxable_income", []string{"43"}},
}

// Analyze1040 extracts income figures from a raw 1040 line mapping and runs
// the red-flag checks. Only positive values are recorded in IncomeSources.
func (a *Analyzer) Analyze1040(form models.TaxForm) *Analysis {
	analysis := &Analysis{
		IncomeSources: map[string]float64{},
	}

	for _, m := range lineMapping {
		for _, line := range m.lines {
			raw, ok := form[line]
			if !ok {
				continue
			}
			value := money.ParseAmount(raw)
			if value > 0 {
				analysis.IncomeSources[fmt.Sprintf("Line %s", line)] = value
			}
			a.assignCategory(analysis, m.category, value)
		}
	}

	a.checkRedFlags(form, analysis)
	return analysis
}

func (a *Analyzer) assignCategory(analysis *Analysis, category string, value float64) {
	switch category {
	case "wages":
		// Lines 1 and 7 carry the same wage figure under different form-year
		// conventions; the first populated line wins, never the sum.
		if analysis.Wages == 0 {
			analysis.Wages = value
		}
	case "business_income":
		analysis.BusinessIncome = value
	case "rental_income":
		analysis.RentalIncome = value
	case "capital_gains":
		analysis.CapitalGains = value
	case "other_income":
		analysis.OtherIncome = value
	case "adjusted_gross_income":
		analysis.AdjustedGrossIncome = value
	case "taxable_income":
		analysis.TaxableIncome = value
	}
}

// checkRedFlags runs the independent heuristics against whatever lines are
// present. The checks are not mutually exclusive.
func (a *Analyzer) checkRedFlags(form models.TaxForm, analysis *Analysis) {
	if raw, ok := form["12"]; ok {
		bizIncome := money.ParseAmount(raw)
		if bizIncome < a.thresholds.BusinessLossFloor {
			analysis.RedFlags = append(analysis.RedFlags, RedFlag{
				Type:        "LARGE_BUSINESS_LOSS",
				Description: fmt.Sprintf("Significant Schedule C loss: %s", money.FormatUSDWhole(math.Abs(bizIncome))),
				Concern:     "Potential income shifting or hobby loss",
			})
		}
	}

	if raw, ok := form["17"]; ok {
		rentalIncome := money.ParseAmount(raw)
		if rentalIncome < a.thresholds.RentalLossFloor {
			analysis.RedFlags = append(analysis.RedFlags, RedFlag{
				Type:        "RENTAL_LOSSES",
				Description: fmt.Sprintf("Rental property losses: %s", money.FormatUSDWhole(math.Abs(rentalIncome))),
				Concern:     "May indicate income sheltering",
			})
		}
	}

	if raw, ok := form["21"]; ok {
		otherIncome := money.ParseAmount(raw)
		if otherIncome > a.thresholds.OtherIncomeCeiling {
			analysis.RedFlags = append(analysis.RedFlags, RedFlag{
				Type:        "UNEXPLAINED_OTHER_INCOME",
				Description: fmt.Sprintf("Significant 'other income': %s", money.FormatUSDWhole(otherIncome)),
				Concern:     "Requires further investigation - source unknown",
			})
		}
	}
}
