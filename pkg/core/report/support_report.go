package report

import (
	"strings"

	"familylaw_toolkit/pkg/core/money"
	"familylaw_toolkit/pkg/core/support"
)

// SupportReportParams carry the case and party context for the support
// calculation report. The calculation results are passed in already computed.
type SupportReportParams struct {
	CaseID     string
	ClientName string

	PayerName   string
	PayerIncome float64
	PayerBonus  float64
	PayeeName   string
	PayeeIncome float64

	NumChildren   int
	SpecialNeeds  bool
	MarriageYears int

	ChildSupport support.ChildSupportResult
	Maintenance  support.MaintenanceResult
}

// SupportReport renders the attorney work product analysis of child support
// and maintenance obligations under DRL 240 and DRL 236.
func (a *Assembler) SupportReport(p SupportReportParams) string {
	var b reportBuilder

	rule := strings.Repeat("=", 70)
	dash := strings.Repeat("-", 70)
	reportDate := a.now().Format("January 2, 2006")

	csMonthly := p.ChildSupport.TotalObligation / 12
	mMonthly := p.Maintenance.MaintenanceAmount / 12
	combinedAnnual := p.ChildSupport.TotalObligation + p.Maintenance.MaintenanceAmount
	payerTotal := p.PayerIncome + p.PayerBonus

	b.line(rule)
	b.line("                    CONFIDENTIAL - ATTORNEY WORK PRODUCT")
	b.line(rule)
	b.line("")
	b.line("                    CHILD SUPPORT & MAINTENANCE ANALYSIS")
	b.line("")
	b.linef("Prepared by: %s", a.firmName)
	b.linef("Date: %s", reportDate)
	b.linef("Case: %s", orNA(p.CaseID))
	b.linef("Client: %s", orNA(p.ClientName))
	b.line("")
	b.line(rule)
	b.line("")

	b.line("1. EXECUTIVE SUMMARY")
	b.line(dash)
	b.line("")
	b.line("This analysis provides calculations for child support and spousal")
	b.line("maintenance obligations under New York Domestic Relations Law.")
	b.line("")
	b.line("Key Findings:")
	b.linef("• Recommended Monthly Child Support: %s", money.FormatUSD(csMonthly))
	b.linef("• Recommended Monthly Maintenance: %s", money.FormatUSD(mMonthly))
	b.linef("• Combined Monthly Obligation: %s", money.FormatUSD(combinedAnnual/12))
	b.line("")
	b.line(rule)
	b.line("")

	b.line("2. PARTY INFORMATION")
	b.line(dash)
	b.line("")
	b.line("PAYER:")
	b.linef("  Name: %s", orNA(p.PayerName))
	b.linef("  Annual Income: %s", money.FormatUSD(p.PayerIncome))
	b.linef("  Additional Income: %s", money.FormatUSD(p.PayerBonus))
	b.linef("  Total Income: %s", money.FormatUSD(payerTotal))
	b.line("")
	b.line("PAYEE:")
	b.linef("  Name: %s", orNA(p.PayeeName))
	b.linef("  Annual Income: %s", money.FormatUSD(p.PayeeIncome))
	b.line("")
	b.line("CHILDREN:")
	b.linef("  Number of Children: %d", p.NumChildren)
	b.linef("  Special Needs: %s", yesNo(p.SpecialNeeds))
	b.line("")
	b.line(rule)
	b.line("")

	b.line("3. CHILD SUPPORT CALCULATION (DRL §240)")
	b.line(dash)
	b.line("")
	b.line("Under the Child Support Standards Act (CSSA), child support is")
	b.line("calculated as follows:")
	b.line("")
	b.line("INCOME ANALYSIS:")
	b.linef("  Payer Gross Income:      %s", money.FormatUSD(payerTotal))
	b.linef("  Payee Gross Income:      %s", money.FormatUSD(p.PayeeIncome))
	b.linef("  Combined Parental Income: %s", money.FormatUSD(p.ChildSupport.CombinedParentalIncome))
	b.line("")
	b.line("CSSA CALCULATION:")
	b.linef("  Number of Children: %d", p.NumChildren)
	b.linef("  CSSA Percentage: %.1f%%", p.ChildSupport.CSSAPercentage*100)
	b.linef("  Payer's Pro Rata Share: %.1f%%", p.ChildSupport.PayerIncomeShare)
	b.line("")
	b.linef("  Basic Support Amount: %s", money.FormatUSD(p.ChildSupport.BasicSupportAmount))
	b.line("")
	b.line("ADD-ON EXPENSES (Pro Rata Share):")
	if p.ChildSupport.AddOns.HealthInsurance > 0 {
		b.linef("  Health Insurance: %s", money.FormatUSD(p.ChildSupport.AddOns.HealthInsurance))
	}
	if p.ChildSupport.AddOns.Childcare > 0 {
		b.linef("  Childcare: %s", money.FormatUSD(p.ChildSupport.AddOns.Childcare))
	}
	if p.ChildSupport.AddOns.Education > 0 {
		b.linef("  Education: %s", money.FormatUSD(p.ChildSupport.AddOns.Education))
	}
	b.line("")
	b.linef("TOTAL ANNUAL CHILD SUPPORT: %s", money.FormatUSD(p.ChildSupport.TotalObligation))
	b.linef("MONTHLY CHILD SUPPORT: %s", money.FormatUSD(csMonthly))
	b.line("")
	b.line(rule)
	b.line("")

	b.line("4. SPOUSAL MAINTENANCE CALCULATION (DRL §236)")
	b.line(dash)
	b.line("")
	b.line("Under the 2015 Maintenance Guidelines:")
	b.line("")
	b.linef("CALCULATION METHOD: %s", orNA(p.Maintenance.CalculationMethod))
	b.linef("FORMULA USED: %s", orNA(p.Maintenance.FormulaUsed))
	b.line("")
	b.linef("Duration of Marriage: %d years", p.MarriageYears)
	b.linef("Income Cap Applied: %s", yesNo(p.Maintenance.IncomeCapApplied))
	b.line("")
	b.line("MAINTENANCE AMOUNT:")
	b.linef("  Annual Maintenance: %s", money.FormatUSD(p.Maintenance.MaintenanceAmount))
	b.linef("  Monthly Maintenance: %s", money.FormatUSD(mMonthly))
	b.line("")
	b.linef("DURATION: %s", orNA(p.Maintenance.Duration))
	b.line("")
	b.line(rule)
	b.line("")

	b.line("5. COMBINED OBLIGATIONS")
	b.line(dash)
	b.line("")
	b.line("                          MONTHLY        ANNUAL")
	b.linef("Child Support:           %s   %s", padUSD(csMonthly, 10), padUSD(p.ChildSupport.TotalObligation, 12))
	b.linef("Maintenance:             %s   %s", padUSD(mMonthly, 10), padUSD(p.Maintenance.MaintenanceAmount, 12))
	b.linef("                         %s   %s", strings.Repeat("-", 10), strings.Repeat("-", 12))
	b.linef("TOTAL:                   %s   %s", padUSD(combinedAnnual/12, 10), padUSD(combinedAnnual, 12))
	b.line("")
	b.line(rule)
	b.line("")

	b.line("6. DEVIATION FACTORS TO CONSIDER")
	b.line(dash)
	b.line("")
	b.line("The court may deviate from guideline calculations based on:")
	b.line("")
	b.line("Child Support (DRL §240(1-b)(f)):")
	b.line("  □ Financial resources of parents and child")
	b.line("  □ Physical and emotional health of child")
	b.line("  □ Standard of living child would have enjoyed")
	b.line("  □ Tax consequences")
	b.line("  □ Non-monetary contributions of parents")
	b.line("  □ Educational needs of parents")
	b.line("  □ Disparity in parental incomes")
	b.line("  □ Other children supported by non-custodial parent")
	b.line("  □ Extraordinary expenses for visitation")
	b.line("")
	b.line("Maintenance (DRL §236(B)(6)(a)):")
	b.line("  □ Age and health of parties")
	b.line("  □ Present and future earning capacity")
	b.line("  □ Need for training or education")
	b.line("  □ Wasteful dissipation of marital property")
	b.line("  □ Transfer of assets made in contemplation of divorce")
	b.line("  □ Any other factor the court expressly finds just and proper")
	b.line("")
	b.line(rule)
	b.line("")

	b.line("7. LEGAL REFERENCES")
	b.line(dash)
	b.line("")
	b.line("• DRL §240(1-b): Child Support Standards Act")
	b.line("• DRL §236(B)(6): Spousal Maintenance")
	b.line("• 22 NYCRR §202.16(b): Net Worth Statement Requirements")
	b.line("• CSSA Cap (2024): $183,000 combined parental income")
	b.line("")
	b.line(rule)
	b.line("")

	b.line("                         DISCLAIMER")
	b.line(dash)
	b.line("")
	b.line("This analysis is provided for informational purposes and does not")
	b.line("constitute legal advice. Actual support obligations may vary based")
	b.line("on judicial discretion, complete financial disclosure, and other")
	b.line("factors not reflected in this preliminary analysis.")
	b.line("")
	b.line(rule)
	b.line("")
	b.line(a.firmName)
	b.line(a.firmAddress)
	b.line(a.firmPhone)
	b.line("")
	b.linef("Report Generated: %s", reportDate)
	b.line("")
	b.line(rule)
	b.line("                    CONFIDENTIAL - ATTORNEY WORK PRODUCT")
	b.line(rule)

	return b.String()
}

// padUSD right-aligns a comma-grouped dollar amount inside a fixed width,
// matching the tabular report columns.
func padUSD(v float64, width int) string {
	formatted := strings.TrimPrefix(money.FormatUSD(v), "$")
	for len(formatted) < width {
		formatted = " " + formatted
	}
	return "$" + formatted
}
