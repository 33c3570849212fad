package intake

import (
	"math"
	"testing"
)

const payStubText = `
ACME INDUSTRIES EARNINGS STATEMENT
Pay Period: 10/01/2024 - 10/15/2024
Employee: John Smith   SSN: 123-45-6789
Account # 4478291

Gross Pay: $6,730.77
Federal Tax: $1,245.00
Net Pay: $4,890.12
YTD Gross: $134,615.40

Questions? payroll@acme.example.com or 212-555-0144
`

func TestDetectDocumentType(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{payStubText, "pay_stub"},
		{"Form 1040 Internal Revenue Service tax return adjusted gross income", "tax_return"},
		{"Bank Statement Account Summary beginning balance ending balance deposits", "bank_statement"},
		{"completely unrelated grocery list", "unknown"},
	}
	for _, c := range cases {
		if got := DetectDocumentType(c.text); got != c.want {
			t.Errorf("Expected %s, got %s", c.want, got)
		}
	}
}

func TestExtractFields(t *testing.T) {
	fields := ExtractFields(payStubText)

	if fields.DocumentType != "pay_stub" {
		t.Errorf("Expected pay_stub, got %s", fields.DocumentType)
	}
	if !fields.SSNDetected {
		t.Error("Expected SSN detection")
	}
	if len(fields.AccountNumbers) != 1 || fields.AccountNumbers[0] != "4478291" {
		t.Errorf("Expected account 4478291, got %v", fields.AccountNumbers)
	}
	if len(fields.Emails) != 1 || fields.Emails[0] != "payroll@acme.example.com" {
		t.Errorf("Expected payroll email, got %v", fields.Emails)
	}

	if len(fields.Amounts) != 4 {
		t.Fatalf("Expected 4 amounts, got %d: %v", len(fields.Amounts), fields.Amounts)
	}
	if math.Abs(fields.Amounts[0].Value-6730.77) > 0.001 {
		t.Errorf("Expected first amount 6730.77, got %f", fields.Amounts[0].Value)
	}
	if fields.Amounts[0].Formatted != "$6,730.77" {
		t.Errorf("Expected formatted token, got %s", fields.Amounts[0].Formatted)
	}
	if fields.Amounts[0].Context == "" {
		t.Error("Expected surrounding context for amount")
	}

	if fields.KeyValues["Gross Pay"] != "6,730.77" {
		t.Errorf("Expected Gross Pay key value, got %v", fields.KeyValues)
	}
	if fields.KeyValues["Net Pay"] != "4,890.12" {
		t.Errorf("Expected Net Pay key value, got %v", fields.KeyValues)
	}

	// Both MDY dates from the pay period line, deduplicated.
	if len(fields.Dates) != 2 {
		t.Errorf("Expected 2 dates, got %v", fields.Dates)
	}
}

func TestExtractDatesDeduplicates(t *testing.T) {
	dates := extractDates("Due 01/15/2024, again 01/15/2024, filed 2024-02-01")
	if len(dates) != 2 {
		t.Fatalf("Expected 2 unique dates, got %v", dates)
	}
	if dates[0] != "01/15/2024" || dates[1] != "2024-02-01" {
		t.Errorf("Unexpected date order: %v", dates)
	}
}

func TestParseNetWorthStatementLenient(t *testing.T) {
	// Trailing comma and comment: invalid JSON, should still parse.
	input := `{
		// prepared by paralegal
		"party_name": "John Smith",
		"assets": {"checking_account": 15000, "home": 500000,},
		"liabilities": {"mortgage": 350000},
		"income_sources": {"salary": 150000},
		"expenses": {"housing": 3500},
	}`

	stmt, err := ParseNetWorthStatement(input)
	if err != nil {
		t.Fatalf("Expected lenient parse to succeed: %v", err)
	}
	if stmt.PartyName != "John Smith" {
		t.Errorf("Expected party name, got %s", stmt.PartyName)
	}
	if stmt.TotalAssets() != 515000 {
		t.Errorf("Expected total assets 515000, got %f", stmt.TotalAssets())
	}
}

func TestParseNetWorthStatementRequiresSchedules(t *testing.T) {
	// Liabilities schedule absent entirely, not just empty.
	input := `{
		"party_name": "John Smith",
		"assets": {"checking_account": 15000},
		"income_sources": {"salary": 150000},
		"expenses": {"housing": 3500}
	}`

	if _, err := ParseNetWorthStatement(input); err == nil {
		t.Fatal("Expected missing liabilities schedule to be rejected")
	}

	// A present-but-empty schedule is a valid disclosure.
	input = `{
		"party_name": "John Smith",
		"assets": {"checking_account": 15000},
		"liabilities": {},
		"income_sources": {"salary": 150000},
		"expenses": {"housing": 3500}
	}`

	stmt, err := ParseNetWorthStatement(input)
	if err != nil {
		t.Fatalf("Expected empty liabilities schedule to pass: %v", err)
	}
	if stmt.TotalLiabilities() != 0 {
		t.Errorf("Expected zero liabilities, got %f", stmt.TotalLiabilities())
	}
}

func TestParseTaxFormMixedValueTypes(t *testing.T) {
	form, err := ParseTaxForm(`{"line_7": "$85,000", "line_12": -12000, "tax_year": 2023}`)
	if err != nil {
		t.Fatalf("Expected parse to succeed: %v", err)
	}
	if form["line_7"] != "$85,000" {
		t.Errorf("Expected raw string preserved, got %v", form["line_7"])
	}
}

func TestParsePayStubs(t *testing.T) {
	input := `[
		{"pay_date": "2024-10-15", "gross_pay": 6730.77, "pay_frequency": "bi-weekly", "employer": "Acme"},
		{"pay_date": "10/01/2024", "gross_pay": 6730.77, "pay_frequency": "bi-weekly", "employer": "Acme"}
	]`

	stubs, err := ParsePayStubs(input)
	if err != nil {
		t.Fatalf("Expected parse to succeed: %v", err)
	}
	if len(stubs) != 2 {
		t.Fatalf("Expected 2 stubs, got %d", len(stubs))
	}
	if stubs[0].PayDate.Year() != 2024 || stubs[0].PayDate.Month() != 10 || stubs[0].PayDate.Day() != 15 {
		t.Errorf("Expected ISO date parsed, got %v", stubs[0].PayDate)
	}
	if stubs[1].PayDate.Day() != 1 {
		t.Errorf("Expected US date parsed, got %v", stubs[1].PayDate)
	}
}

func TestParseStatementHTML(t *testing.T) {
	html := `
<html><body>
<h2>Chase Checking ...4421</h2>
<p>Statement Date: 2024-10-31</p>
<p>Beginning Balance: $12,450.00</p>
<p>Ending Balance: $18,500.00</p>
<table>
  <tr><th>Date</th><th>Description</th><th>Amount</th></tr>
  <tr><td>10/02/2024</td><td>Direct Deposit - ABC Corp</td><td>$4,100.00</td></tr>
  <tr><td>10/05/2024</td><td>Mortgage Payment</td><td>-$3,500.00</td></tr>
  <tr><td>Total</td><td></td><td>$600.00</td></tr>
</table>
</body></html>`

	stmt, err := ParseStatementHTML(html)
	if err != nil {
		t.Fatalf("Expected parse to succeed: %v", err)
	}
	if stmt.AccountName != "Chase Checking ...4421" {
		t.Errorf("Expected heading as account name, got %q", stmt.AccountName)
	}
	if stmt.BeginningBalance != 12450 || stmt.EndingBalance != 18500 {
		t.Errorf("Expected balances from labeled text, got %f / %f", stmt.BeginningBalance, stmt.EndingBalance)
	}
	if stmt.StatementDate != "2024-10-31" {
		t.Errorf("Expected statement date, got %q", stmt.StatementDate)
	}
	if len(stmt.Transactions) != 2 {
		t.Fatalf("Expected 2 transactions (total row skipped), got %d", len(stmt.Transactions))
	}
	if stmt.Transactions[1].Amount != -3500 {
		t.Errorf("Expected negative amount parsed, got %f", stmt.Transactions[1].Amount)
	}
}
