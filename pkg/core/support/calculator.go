package support

import (
	"fmt"

	"familylaw_toolkit/pkg/core/money"
)

// Calculator computes child support and maintenance obligations per the NY
// Child Support Standards Act (DRL 240(1-b)) and the post-2016 Maintenance
// Guidelines (DRL 236). It holds only read-only configuration, so a single
// instance is safe to share across requests.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator with the given guideline constants.
func NewCalculator(cfg Config) *Calculator {
	if cfg.CSSAPercentages == nil {
		cfg = DefaultConfig()
	}
	return &Calculator{cfg: cfg}
}

// AddOns is the pro-rata add-on breakdown on top of basic support.
type AddOns struct {
	HealthInsurance float64 `json:"health_insurance"`
	Childcare       float64 `json:"childcare"`
	Education       float64 `json:"education"`
}

// ChildSupportResult is the CSSA calculation breakdown. All monetary fields
// are rounded to cents at the point of return.
type ChildSupportResult struct {
	BasicSupportAmount     float64 `json:"basic_support_amount"`
	PayerObligation        float64 `json:"payer_obligation"`
	PayeeObligation        float64 `json:"payee_obligation"`
	AddOns                 AddOns  `json:"add_ons"`
	TotalObligation        float64 `json:"total_obligation"`
	CombinedParentalIncome float64 `json:"combined_parental_income"`
	PayerIncomeShare       float64 `json:"payer_income_share"` // percent, 0-100
	CSSAPercentage         float64 `json:"cssa_percentage"`
	CalculationMethod      string  `json:"calculation_method"`
}

// ChildSupportParams are the inputs to the CSSA calculation. Incomes are
// annual gross figures; negative incomes are not validated here.
type ChildSupportParams struct {
	PayerIncome         float64 `json:"payer_income"`
	PayeeIncome         float64 `json:"payee_income"`
	NumChildren         int     `json:"num_children"`
	SpecialNeeds        bool    `json:"special_needs"`
	HealthInsuranceCost float64 `json:"health_insurance_cost"`
	ChildcareCost       float64 `json:"childcare_cost"`
	EducationCost       float64 `json:"education_cost"`
}

// CalculateChildSupport applies the CSSA formula. The full combined income is
// used uncapped; the statutory combined-income cap is applied only by the
// worksheet calculation (CalculateWorksheet). The special-needs increase
// applies to the total obligation only; the basic support amount and the
// payee's mirrored obligation are not re-adjusted.
func (c *Calculator) CalculateChildSupport(p ChildSupportParams) ChildSupportResult {
	percentage := c.cssaPercentage(p.NumChildren)

	combinedIncome := p.PayerIncome + p.PayeeIncome
	basicSupport := combinedIncome * percentage

	payerShare := 0.5
	if combinedIncome > 0 {
		payerShare = p.PayerIncome / combinedIncome
	}

	payerObligation := basicSupport * payerShare

	addOns := AddOns{
		HealthInsurance: p.HealthInsuranceCost * payerShare,
		Childcare:       p.ChildcareCost * payerShare,
		Education:       p.EducationCost * payerShare,
	}
	totalAddOns := addOns.HealthInsurance + addOns.Childcare + addOns.Education

	totalObligation := payerObligation + totalAddOns
	if p.SpecialNeeds {
		totalObligation *= c.cfg.SpecialNeedsMultiplier
	}

	return ChildSupportResult{
		BasicSupportAmount: money.Round2(basicSupport),
		PayerObligation:    money.Round2(payerObligation),
		PayeeObligation:    money.Round2(basicSupport - payerObligation),
		AddOns: AddOns{
			HealthInsurance: money.Round2(addOns.HealthInsurance),
			Childcare:       money.Round2(addOns.Childcare),
			Education:       money.Round2(addOns.Education),
		},
		TotalObligation:        money.Round2(totalObligation),
		CombinedParentalIncome: money.Round2(combinedIncome),
		PayerIncomeShare:       money.Round1(payerShare * 100),
		CSSAPercentage:         percentage,
		CalculationMethod:      "NY CSSA",
	}
}

func (c *Calculator) cssaPercentage(numChildren int) float64 {
	if numChildren >= 5 {
		return c.cfg.CSSAPercentages[5]
	}
	if pct, ok := c.cfg.CSSAPercentages[numChildren]; ok {
		return pct
	}
	return c.cfg.CSSAPercentages[1]
}

// MaintenanceResult is the maintenance guideline calculation breakdown.
type MaintenanceResult struct {
	MaintenanceAmount float64 `json:"maintenance_amount"`
	Duration          string  `json:"duration"`
	PayerIncomeUsed   float64 `json:"payer_income_used"`
	PayeeIncomeUsed   float64 `json:"payee_income_used"`
	CalculationMethod string  `json:"calculation_method"`
	IncomeCapApplied  bool    `json:"income_cap_applied"`
	FormulaUsed       string  `json:"formula_used"`
}

// MaintenanceParams are the inputs to the maintenance calculation.
// DurationYears is the length of the marriage in whole years.
type MaintenanceParams struct {
	PayerIncome   float64 `json:"payer_income"`
	PayeeIncome   float64 `json:"payee_income"`
	DurationYears int     `json:"duration_years"`
	PendenteLite  bool    `json:"pendente_lite"`
}

// CalculateMaintenance applies the post-2016 maintenance guideline formula:
// 30% of the payer's capped income minus 40% of the payee's capped income,
// floored at zero and limited so that maintenance plus payee income does not
// exceed 40% of combined capped income. Pendente lite awards run for the
// case duration rather than a fixed term.
func (c *Calculator) CalculateMaintenance(p MaintenanceParams) MaintenanceResult {
	payerCapped := minFloat(p.PayerIncome, c.cfg.MaintenanceCap)
	payeeCapped := minFloat(p.PayeeIncome, c.cfg.MaintenanceCap)

	amount := payerCapped*c.cfg.MaintenancePayerRate - payeeCapped*c.cfg.MaintenancePayeeRate
	if amount < 0 {
		amount = 0
	}

	combinedCapped := payerCapped + payeeCapped
	fortyPercentCap := combinedCapped * 0.40
	if amount+payeeCapped > fortyPercentCap {
		amount = fortyPercentCap - payeeCapped
		if amount < 0 {
			amount = 0
		}
	}

	duration := "Case duration"
	if !p.PendenteLite {
		duration = fmt.Sprintf("%d months", c.maintenanceDurationMonths(p.DurationYears))
	}

	return MaintenanceResult{
		MaintenanceAmount: money.Round2(amount),
		Duration:          duration,
		PayerIncomeUsed:   money.Round2(payerCapped),
		PayeeIncomeUsed:   money.Round2(payeeCapped),
		CalculationMethod: "NY Maintenance Guidelines",
		IncomeCapApplied:  p.PayerIncome > c.cfg.MaintenanceCap,
		FormulaUsed:       fmt.Sprintf("(%.2f * 30%%) - (%.2f * 40%%)", payerCapped, payeeCapped),
	}
}

// maintenanceDurationMonths applies the marriage-length duration bands.
// The <=15-year band maps years 1:1 to months capped at 180; the longer
// bands use fractional multipliers, truncated to whole months.
func (c *Calculator) maintenanceDurationMonths(marriageYears int) int {
	switch {
	case marriageYears <= 15:
		return minInt(15, marriageYears) * 12
	case marriageYears <= 20:
		return int(float64(marriageYears) * 0.30 * 12)
	case marriageYears <= 30:
		return int(float64(marriageYears) * 0.40 * 12)
	default:
		return int(float64(marriageYears) * 0.50 * 12)
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
