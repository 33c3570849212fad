package intake

import (
	"fmt"
	"time"

	"familylaw_toolkit/pkg/core/utils"
	"familylaw_toolkit/pkg/models"
)

// netWorthSchedules are the sections every sworn statement must carry under
// 22 NYCRR 202.16(b). An empty schedule is fine; an absent one means the
// upstream extraction dropped it.
type netWorthSchedules struct {
	Assets        map[string]float64 `json:"assets"`
	Liabilities   map[string]float64 `json:"liabilities"`
	IncomeSources map[string]float64 `json:"income_sources"`
	Expenses      map[string]float64 `json:"expenses"`
}

// ParseNetWorthStatement parses a client-submitted net worth record. The
// input may be sloppy JSON (trailing commas, comments, unquoted keys); the
// strategy ladder in utils.SmartParse handles the common defects. Statements
// missing a required schedule are rejected rather than carried forward with
// silent zeros.
func ParseNetWorthStatement(input string) (*models.NetWorthStatement, error) {
	var stmt models.NetWorthStatement
	normalized, err := utils.SmartParse(input, &stmt)
	if err != nil {
		return nil, fmt.Errorf("net worth statement: %w", err)
	}
	if err := utils.ValidateJSON(normalized, &netWorthSchedules{}); err != nil {
		return nil, fmt.Errorf("net worth statement: %w", err)
	}
	return &stmt, nil
}

// ParseTaxForm parses a raw tax form record. Values stay untyped; the tax
// return analyzer coerces them line by line.
func ParseTaxForm(input string) (models.TaxForm, error) {
	form := models.TaxForm{}
	if _, err := utils.SmartParse(input, &form); err != nil {
		return nil, fmt.Errorf("tax form: %w", err)
	}
	return form, nil
}

// payStubRecord is the wire shape of a pay stub; the date arrives as a
// string in either ISO or US order.
type payStubRecord struct {
	PayDate      string  `json:"pay_date"`
	GrossPay     float64 `json:"gross_pay"`
	NetPay       float64 `json:"net_pay"`
	PayFrequency string  `json:"pay_frequency"`
	Employer     string  `json:"employer"`
}

// ParsePayStubs parses a JSON array of pay stubs. Stubs with unparseable
// dates are kept with a zero date rather than dropped, so the annualization
// still sees their amounts.
func ParsePayStubs(input string) ([]models.PayStub, error) {
	var records []payStubRecord
	if _, err := utils.SmartParse(input, &records); err != nil {
		return nil, fmt.Errorf("pay stubs: %w", err)
	}

	stubs := make([]models.PayStub, 0, len(records))
	for _, r := range records {
		stubs = append(stubs, models.PayStub{
			PayDate:      parseDate(r.PayDate),
			GrossPay:     r.GrossPay,
			NetPay:       r.NetPay,
			PayFrequency: r.PayFrequency,
			Employer:     r.Employer,
		})
	}
	return stubs, nil
}

// ParseBankStatements parses a JSON array of bank statements.
func ParseBankStatements(input string) ([]models.BankStatement, error) {
	var statements []models.BankStatement
	if _, err := utils.SmartParse(input, &statements); err != nil {
		return nil, fmt.Errorf("bank statements: %w", err)
	}
	return statements, nil
}

var dateLayouts = []string{"2006-01-02", "01/02/2006", "1/2/2006", "01-02-2006"}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
