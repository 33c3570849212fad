package report

import (
	"strings"

	"familylaw_toolkit/pkg/core/support"
)

// ChildEntry is one child listed on the worksheet caption.
type ChildEntry struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
	Age  int    `json:"age"`
}

// WorksheetDocParams carry the caption and expense inputs for the worksheet
// document. The calculated figures come from the support calculator.
type WorksheetDocParams struct {
	County             string
	CustodialParent    string
	NonCustodialParent string
	Children           []ChildEntry

	CustodialIncome    float64
	NonCustodialIncome float64
	ChildcareCost      float64
	HealthInsurance    float64
	EducationCost      float64
}

// WorksheetDocument renders the filed CSSA worksheet (DRL 240(1-b); FCA 413)
// around an already-computed worksheet result.
func (a *Assembler) WorksheetDocument(p WorksheetDocParams, r support.WorksheetResult) string {
	var b reportBuilder

	rule := strings.Repeat("=", 75)
	ncpShare := r.NonCustodialShare

	b.line("")
	b.line(rule)
	b.line("                    CHILD SUPPORT STANDARDS ACT WORKSHEET")
	b.line("                         (DRL §240(1-b); FCA §413)")
	b.line(rule)
	b.line("")
	b.line("COURT: Supreme Court / Family Court")
	b.linef("COUNTY: %s", p.County)
	b.line("INDEX/DOCKET NO.: _______________")
	b.line("")
	b.linef("CUSTODIAL PARENT:      %s", p.CustodialParent)
	b.linef("NON-CUSTODIAL PARENT:  %s", p.NonCustodialParent)
	b.line("")
	b.line("CHILD(REN) SUBJECT TO THIS ORDER:")
	for i, c := range p.Children {
		b.linef("    %d. %s, DOB: %s, Age: %d", i+1, c.Name, c.DOB, c.Age)
	}
	b.line("")
	b.linef("NUMBER OF CHILDREN: %d", len(p.Children))
	b.line("")

	b.line(rule)
	b.line("                         PART I - INCOME CALCULATION")
	b.line(rule)
	b.line("")
	b.line("                                    CUSTODIAL       NON-CUSTODIAL")
	b.line("                                    PARENT          PARENT")
	b.line("                                    -----------     -----------")
	b.linef("1. Gross Income                     %s    %s", padUSD(p.CustodialIncome, 12), padUSD(p.NonCustodialIncome, 12))
	b.line("")
	b.line("2. Less: FICA (Social Security)     $____________    $____________")
	b.line("")
	b.line("3. Less: NYC Income Tax             $____________    $____________")
	b.line("   (if applicable)")
	b.line("")
	b.line("4. ADJUSTED GROSS INCOME            $____________    $____________")
	b.line("")
	b.linef("5. COMBINED PARENTAL INCOME:        %s", padUSD(r.CombinedIncome, 12))
	b.line("")

	b.line(rule)
	b.line("                      PART II - BASIC CHILD SUPPORT")
	b.line(rule)
	b.line("")
	b.linef("6. Combined Parental Income (Line 5):           %s", padUSD(r.CombinedIncome, 12))
	b.line("")
	b.linef("7. CSSA Income Cap (2024):                      %s", padUSD(r.IncomeCap, 12))
	b.line("")
	b.linef("8. Income Subject to CSSA Calculation:          %s", padUSD(r.IncomeForCalc, 12))
	b.line("   (Lesser of Line 6 or Line 7)")
	b.line("")
	b.linef("9. CSSA Percentage for %d child(ren):              %.0f%%", len(p.Children), r.CSSAPercentage*100)
	b.line("")
	b.line("   (1 child = 17%, 2 children = 25%, 3 children = 29%,")
	b.line("    4 children = 31%, 5+ children = 35%)")
	b.line("")
	b.linef("10. Combined Basic Child Support (Line 8 x Line 9):  %s", padUSD(r.BasicSupport, 12))
	b.line("")
	b.line("11. Pro Rata Shares:")
	b.linef("    Custodial Parent:     %5.1f%%", r.CustodialShare)
	b.linef("    Non-Custodial Parent: %5.1f%%", ncpShare)
	b.line("")
	b.linef("12. NON-CUSTODIAL PARENT'S BASIC SUPPORT:       %s", padUSD(r.NCPBasicSupport, 12))
	b.line("    (Line 10 x Non-Custodial Share)")
	b.line("")

	b.line(rule)
	b.line("                        PART III - ADD-ON EXPENSES")
	b.line("              (Pro Rata Share Paid by Non-Custodial Parent)")
	b.line(rule)
	b.line("")
	b.line("13. Child Care Expenses")
	b.linef("    (work-related, reasonable)                  %s", padUSD(p.ChildcareCost, 12))
	b.linef("    Non-Custodial Share (%.1f%%):         %s", ncpShare, padUSD(p.ChildcareCost*ncpShare/100, 12))
	b.line("")
	b.line("14. Health Insurance Premium")
	b.linef("    (for child(ren))                            %s", padUSD(p.HealthInsurance, 12))
	b.linef("    Non-Custodial Share (%.1f%%):         %s", ncpShare, padUSD(p.HealthInsurance*ncpShare/100, 12))
	b.line("")
	b.line("15. Unreimbursed Health Care Expenses")
	b.line("    (reasonable, necessary)                     $____________")
	b.linef("    Non-Custodial Share (%.1f%%):         $____________", ncpShare)
	b.line("")
	b.line("16. Educational Expenses")
	b.linef("    (special needs, private school if agreed)   %s", padUSD(p.EducationCost, 12))
	b.linef("    Non-Custodial Share (%.1f%%):         %s", ncpShare, padUSD(p.EducationCost*ncpShare/100, 12))
	b.line("")
	b.linef("17. TOTAL ADD-ON EXPENSES:                      %s", padUSD(r.TotalAddOns, 12))
	b.linef("    NON-CUSTODIAL PARENT'S SHARE:               %s", padUSD(r.NCPAddOns, 12))
	b.line("")

	b.line(rule)
	b.line("                         PART IV - TOTAL SUPPORT")
	b.line(rule)
	b.line("")
	b.line("18. Non-Custodial Parent's Basic Support")
	b.linef("    (Line 12):                                  %s", padUSD(r.NCPBasicSupport, 12))
	b.line("")
	b.line("19. Non-Custodial Parent's Add-On Share")
	b.linef("    (Line 17):                                  %s", padUSD(r.NCPAddOns, 12))
	b.line("")
	b.linef("20. TOTAL CHILD SUPPORT OBLIGATION:             %s", padUSD(r.TotalSupport, 12))
	b.line("                                                ===============")
	b.line("")
	b.linef("    MONTHLY PAYMENT:                            %s", padUSD(r.MonthlyPayment, 12))
	b.line("")
	b.linef("    BI-WEEKLY PAYMENT:                          %s", padUSD(r.BiWeeklyPayment, 12))
	b.line("")
	b.linef("    WEEKLY PAYMENT:                             %s", padUSD(r.WeeklyPayment, 12))
	b.line("")

	b.line(rule)
	b.line("                    PART V - ABOVE-CAP INCOME (If Applicable)")
	b.line(rule)
	b.line("")
	b.line("21. Combined Income Above Cap")
	b.linef("    (Line 6 minus Line 7, if positive):         %s", padUSD(r.AboveCapIncome, 12))
	b.line("")
	b.line("22. Additional Support for Above-Cap Income")
	b.line("    (Court's discretion based on factors")
	b.line("    in DRL 240(1-b)(f)):                        $____________")
	b.line("")

	b.line(rule)
	b.line("                          DEVIATION FACTORS")
	b.line("                    (DRL §240(1-b)(f) - Court may consider)")
	b.line(rule)
	b.line("")
	b.line("[ ] Financial resources of custodial parent")
	b.line("[ ] Physical and emotional health of child")
	b.line("[ ] Child's standard of living prior to divorce")
	b.line("[ ] Tax consequences to the parties")
	b.line("[ ] Non-monetary contributions of parents")
	b.line("[ ] Educational needs of either parent")
	b.line("[ ] Gross income disparity between parents")
	b.line("[ ] Needs of other children non-custodial parent supports")
	b.line("[ ] Extraordinary visitation expenses")
	b.line("[ ] Other factors court finds relevant")
	b.line("")
	b.line("DEVIATION REQUESTED:    [ ] Yes    [ ] No")
	b.line("")
	b.line("If yes, explain: ___________________________________________________")
	b.line("____________________________________________________________________")
	b.line("")

	b.line(rule)
	b.line("                              SIGNATURES")
	b.line(rule)
	b.line("")
	b.line("_________________________________          _______________")
	b.linef("%s                    Date", p.CustodialParent)
	b.line("Custodial Parent")
	b.line("")
	b.line("")
	b.line("_________________________________          _______________")
	b.linef("%s                    Date", p.NonCustodialParent)
	b.line("Non-Custodial Parent")
	b.line("")
	b.line("")
	b.line("_________________________________          _______________")
	b.line("Attorney for Custodial Parent              Date")
	b.line("")
	b.line("")
	b.line("_________________________________          _______________")
	b.line("Attorney for Non-Custodial Parent          Date")
	b.line("")
	b.line(rule)
	b.line("")
	b.line("PREPARED BY:")
	b.line(a.firmName)
	b.line(a.firmAddress)
	b.line(a.firmPhone)
	b.line("")
	b.line(rule)

	return b.String()
}
