package report

import (
	"fmt"
	"strings"
	"time"

	"familylaw_toolkit/pkg/core/consistency"
	"familylaw_toolkit/pkg/core/money"
	"familylaw_toolkit/pkg/core/support"
	"familylaw_toolkit/pkg/models"
)

const (
	defaultFirmName    = "The White Law Group"
	defaultFirmAddress = "One Liberty Plaza, New York, NY 10006"
	defaultFirmPhone   = "(212) 555-0100"
)

// Assembler renders analysis results into the fixed-width text reports the
// firm files and archives. It is presentation only; every number it prints
// was computed upstream.
type Assembler struct {
	firmName    string
	firmAddress string
	firmPhone   string
	now         func() time.Time
}

// NewAssembler creates an assembler with the firm letterhead fields. Empty
// fields fall back to the defaults.
func NewAssembler(firmName, firmAddress, firmPhone string) *Assembler {
	if firmName == "" {
		firmName = defaultFirmName
	}
	if firmAddress == "" {
		firmAddress = defaultFirmAddress
	}
	if firmPhone == "" {
		firmPhone = defaultFirmPhone
	}
	return &Assembler{
		firmName:    firmName,
		firmAddress: firmAddress,
		firmPhone:   firmPhone,
		now:         time.Now,
	}
}

// FullAnalysisParams are the inputs to the full-analysis report. Any of the
// result pointers may be nil; the corresponding section is then omitted or
// rendered with zeros.
type FullAnalysisParams struct {
	PartyName    string
	NetWorth     *models.NetWorthStatement
	ChildSupport *support.ChildSupportResult
	Maintenance  *support.MaintenanceResult
	Consistency  *consistency.Result
}

// FullAnalysis renders the complete financial document analysis report:
// executive summary, support calculations, discrepancies, hidden income
// indicators, recommended actions, legal considerations, and the net worth
// summary.
func (a *Assembler) FullAnalysis(p FullAnalysisParams) string {
	var b reportBuilder

	rule := strings.Repeat("=", 80)
	dash := strings.Repeat("-", 40)

	b.line(rule)
	b.line("FINANCIAL DOCUMENT ANALYSIS REPORT")
	b.linef("Party: %s", p.PartyName)
	b.linef("Date: %s", a.now().Format("2006-01-02 15:04"))
	b.line(rule)
	b.line("")

	a.executiveSummary(&b, dash, p.Consistency)
	a.supportSection(&b, dash, p.ChildSupport, p.Maintenance)
	a.discrepancySection(&b, dash, p.Consistency)
	a.hiddenIncomeSection(&b, dash, p.Consistency)
	a.recommendedActions(&b, dash, p.Consistency)
	a.legalConsiderations(&b, dash, p.Consistency)
	a.netWorthSummary(&b, dash, p.NetWorth)

	b.line("")
	b.line(rule)
	b.line("END OF REPORT")
	b.line(rule)

	return b.String()
}

func (a *Assembler) executiveSummary(b *reportBuilder, dash string, res *consistency.Result) {
	b.line("EXECUTIVE SUMMARY")
	b.line(dash)

	score := 0.0
	discrepancies := 0
	indicators := 0
	if res != nil {
		score = res.ConsistencyScore
		discrepancies = res.TotalDiscrepancies()
		indicators = len(res.HiddenIncomeIndicators)
	}

	rating := "LOW"
	switch {
	case score >= 80:
		rating = "HIGH"
	case score >= 60:
		rating = "MODERATE"
	}

	b.linef("Document Consistency: %s (%.0f/100)", rating, score)
	b.linef("Financial Discrepancies Found: %d", discrepancies)
	b.linef("Hidden Income Indicators: %d", indicators)
	b.line("")
}

func (a *Assembler) supportSection(b *reportBuilder, dash string, cs *support.ChildSupportResult, m *support.MaintenanceResult) {
	if cs == nil && m == nil {
		return
	}

	b.line("SUPPORT CALCULATIONS")
	b.line(dash)

	if cs != nil {
		b.line("")
		b.line("CHILD SUPPORT:")
		b.linef("  Basic Support Amount: %s", money.FormatUSD(cs.BasicSupportAmount))
		b.linef("  Payer Obligation: %s", money.FormatUSD(cs.PayerObligation))
		b.linef("  Payee Obligation: %s", money.FormatUSD(cs.PayeeObligation))
		b.linef("  Total Obligation: %s", money.FormatUSD(cs.TotalObligation))
		b.linef("  Combined Parental Income: %s", money.FormatUSD(cs.CombinedParentalIncome))
		b.linef("  Payer Income Share: %.1f%%", cs.PayerIncomeShare)
		b.linef("  CSSA Percentage: %.1f%%", cs.CSSAPercentage*100)
		b.linef("  Calculation Method: %s", cs.CalculationMethod)
	}

	if m != nil {
		b.line("")
		b.line("MAINTENANCE:")
		b.linef("  Maintenance Amount: %s", money.FormatUSD(m.MaintenanceAmount))
		b.linef("  Duration: %s", m.Duration)
		b.linef("  Payer Income Used: %s", money.FormatUSD(m.PayerIncomeUsed))
		b.linef("  Payee Income Used: %s", money.FormatUSD(m.PayeeIncomeUsed))
		b.linef("  Income Cap Applied: %s", yesNo(m.IncomeCapApplied))
		b.linef("  Calculation Method: %s", m.CalculationMethod)
		b.linef("  Formula Used: %s", m.FormulaUsed)
	}

	b.line("")
}

func (a *Assembler) discrepancySection(b *reportBuilder, dash string, res *consistency.Result) {
	b.line("FINANCIAL DISCREPANCIES")
	b.line(dash)

	type group struct {
		label         string
		discrepancies []consistency.Discrepancy
	}
	var groups []group
	if res != nil {
		groups = []group{
			{"Income Comparison", res.IncomeComparison.Discrepancies},
			{"Asset Comparison", res.AssetComparison.Discrepancies},
			{"Expense Analysis", res.ExpenseAnalysis.Discrepancies},
		}
	}

	any := false
	for _, g := range groups {
		if len(g.discrepancies) == 0 {
			continue
		}
		any = true
		b.line("")
		b.linef("%s:", g.label)
		for _, d := range g.discrepancies {
			b.linef("  • %s:", d.Type)
			b.linef("    %s", d.Explanation)
			if d.Variance != "" {
				b.linef("    Variance: %s", d.Variance)
			}
		}
	}

	if !any {
		b.line("No significant discrepancies found.")
	}
	b.line("")
}

func (a *Assembler) hiddenIncomeSection(b *reportBuilder, dash string, res *consistency.Result) {
	if res == nil || len(res.HiddenIncomeIndicators) == 0 {
		return
	}

	b.line("HIDDEN INCOME INDICATORS")
	b.line(dash)

	for _, ind := range res.HiddenIncomeIndicators {
		b.line("")
		b.linef("• %s:", titleWords(ind.Type))
		b.linef("  %s", ind.Description)
		b.linef("  Concern: %s", ind.Concern)
	}
	b.line("")
}

func (a *Assembler) recommendedActions(b *reportBuilder, dash string, res *consistency.Result) {
	b.line("RECOMMENDED ACTIONS")
	b.line(dash)

	var investigations []string
	if res != nil {
		investigations = res.RecommendedInvestigations
	}
	if len(investigations) == 0 {
		b.line("No specific investigations recommended at this time.")
		b.line("")
		return
	}

	// Top five only; the full list stays in the structured result.
	if len(investigations) > 5 {
		investigations = investigations[:5]
	}
	for i, inv := range investigations {
		b.linef("%d. %s", i+1, inv)
	}
	b.line("")
}

func (a *Assembler) legalConsiderations(b *reportBuilder, dash string, res *consistency.Result) {
	b.line("LEGAL CONSIDERATIONS (NY SPECIFIC)")
	b.line(dash)

	if res != nil && res.ConsistencyScore < 70 {
		b.line("• Consider filing motion to compel more complete discovery")
		b.line("• May need forensic accountant for asset tracing")
		b.line("• Document all inconsistencies for potential impeachment at trial")
	}
	if res != nil && len(res.HiddenIncomeIndicators) > 0 {
		b.line("• Subpoena additional bank/business records")
		b.line("• Consider deposition of accountant/business manager")
		b.line("• Request authorization for asset search services")
	}
	b.line("")
}

func (a *Assembler) netWorthSummary(b *reportBuilder, dash string, nw *models.NetWorthStatement) {
	b.line("NET WORTH SUMMARY")
	b.line(dash)

	var assets, liabilities, income float64
	if nw != nil {
		assets = nw.TotalAssets()
		liabilities = nw.TotalLiabilities()
		income = nw.TotalAnnualIncome()
	}

	b.linef("Total Assets: %s", money.FormatUSD(assets))
	b.linef("Total Liabilities: %s", money.FormatUSD(liabilities))
	b.linef("Net Worth: %s", money.FormatUSD(assets-liabilities))
	b.linef("Annual Income: %s", money.FormatUSD(income))
}

// reportBuilder accumulates newline-joined report lines.
type reportBuilder struct {
	sb strings.Builder
}

func (b *reportBuilder) line(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
}

func (b *reportBuilder) linef(format string, args ...interface{}) {
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteByte('\n')
}

func (b *reportBuilder) String() string {
	return strings.TrimSuffix(b.sb.String(), "\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// titleWords converts an underscore tag to a display label,
// e.g. "LARGE_CASH_WITHDRAWALS" -> "Large Cash Withdrawals".
func titleWords(tag string) string {
	words := strings.Split(strings.ToLower(tag), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
