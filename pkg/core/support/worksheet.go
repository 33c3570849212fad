package support

import (
	"familylaw_toolkit/pkg/core/money"
)

// WorksheetParams are the inputs to the CSSA worksheet calculation, stated
// from the custodial parent's perspective (the worksheet form's orientation).
type WorksheetParams struct {
	CustodialIncome    float64 `json:"custodial_income"`
	NonCustodialIncome float64 `json:"non_custodial_income"`
	NumChildren        int     `json:"num_children"`
	ChildcareCost      float64 `json:"childcare_cost"`
	HealthInsurance    float64 `json:"health_insurance"`
	EducationCost      float64 `json:"education_cost"`
}

// WorksheetResult carries the line items of the CSSA worksheet
// (DRL 240(1-b); FCA 413).
type WorksheetResult struct {
	CombinedIncome    float64 `json:"combined_income"`
	IncomeCap         float64 `json:"income_cap"`
	IncomeForCalc     float64 `json:"income_for_calc"` // lesser of combined income or cap
	CSSAPercentage    float64 `json:"cssa_percentage"`
	BasicSupport      float64 `json:"basic_support"`
	CustodialShare    float64 `json:"custodial_share"`     // percent, 0-100
	NonCustodialShare float64 `json:"non_custodial_share"` // percent, 0-100
	NCPBasicSupport   float64 `json:"ncp_basic_support"`
	TotalAddOns       float64 `json:"total_add_ons"`
	NCPAddOns         float64 `json:"ncp_add_ons"`
	TotalSupport      float64 `json:"total_support"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	BiWeeklyPayment   float64 `json:"bi_weekly_payment"`
	WeeklyPayment     float64 `json:"weekly_payment"`
	AboveCapIncome    float64 `json:"above_cap_income"`
}

// CalculateWorksheet computes the capped CSSA worksheet figures. Unlike
// CalculateChildSupport, the combined parental income subject to the
// percentage is capped at the statutory worksheet cap; income above the cap
// is reported separately for the court's discretion.
func (c *Calculator) CalculateWorksheet(p WorksheetParams) WorksheetResult {
	pct, ok := c.cfg.CSSAPercentages[p.NumChildren]
	if !ok || p.NumChildren >= 5 {
		pct = c.cfg.CSSAPercentages[5]
	}

	combined := p.CustodialIncome + p.NonCustodialIncome

	custodialShare := 0.5
	ncpShare := 0.5
	if combined > 0 {
		custodialShare = p.CustodialIncome / combined
		ncpShare = p.NonCustodialIncome / combined
	}

	incomeForCalc := minFloat(combined, c.cfg.WorksheetIncomeCap)
	basicSupport := incomeForCalc * pct
	ncpBasic := basicSupport * ncpShare

	totalAddOns := p.ChildcareCost + p.HealthInsurance + p.EducationCost
	ncpAddOns := totalAddOns * ncpShare

	totalSupport := ncpBasic + ncpAddOns

	aboveCap := combined - c.cfg.WorksheetIncomeCap
	if aboveCap < 0 {
		aboveCap = 0
	}

	return WorksheetResult{
		CombinedIncome:    money.Round2(combined),
		IncomeCap:         c.cfg.WorksheetIncomeCap,
		IncomeForCalc:     money.Round2(incomeForCalc),
		CSSAPercentage:    pct,
		BasicSupport:      money.Round2(basicSupport),
		CustodialShare:    money.Round1(custodialShare * 100),
		NonCustodialShare: money.Round1(ncpShare * 100),
		NCPBasicSupport:   money.Round2(ncpBasic),
		TotalAddOns:       money.Round2(totalAddOns),
		NCPAddOns:         money.Round2(ncpAddOns),
		TotalSupport:      money.Round2(totalSupport),
		MonthlyPayment:    money.Round2(totalSupport / 12),
		BiWeeklyPayment:   money.Round2(totalSupport / 26),
		WeeklyPayment:     money.Round2(totalSupport / 52),
		AboveCapIncome:    money.Round2(aboveCap),
	}
}
