package models

import (
	"time"
)

// NetWorthStatement mirrors the sworn financial disclosure required by
// 22 NYCRR 202.16(b) in NY matrimonial actions. Amount maps are keyed by
// category label. Keys in the property flag maps are expected to correspond
// to keys in Assets.
type NetWorthStatement struct {
	PartyName       string             `json:"party_name"`
	PreparationDate string             `json:"preparation_date"`
	Assets          map[string]float64 `json:"assets"`
	Liabilities     map[string]float64 `json:"liabilities"`
	IncomeSources   map[string]float64 `json:"income_sources"`
	Expenses        map[string]float64 `json:"expenses"`

	MaritalPropertyFlag  map[string]bool `json:"marital_property_flag"`
	SeparatePropertyFlag map[string]bool `json:"separate_property_flag"`
}

// TotalAssets sums all reported asset entries.
func (n *NetWorthStatement) TotalAssets() float64 {
	return sumMap(n.Assets)
}

// TotalLiabilities sums all reported liability entries.
func (n *NetWorthStatement) TotalLiabilities() float64 {
	return sumMap(n.Liabilities)
}

// TotalAnnualIncome sums all reported income sources.
func (n *NetWorthStatement) TotalAnnualIncome() float64 {
	return sumMap(n.IncomeSources)
}

// TaxForm is a flat mapping from 1040 line identifier to the raw extracted
// value. Values may be numbers or currency-formatted strings, so the type is
// interface{} and consumers go through the currency parser.
type TaxForm map[string]interface{}

// PayStub is a single pay-period record. A slice of these represents a
// sampling period; annualization uses the most recent stub by PayDate.
type PayStub struct {
	PayDate      time.Time `json:"pay_date"`
	GrossPay     float64   `json:"gross_pay"`
	NetPay       float64   `json:"net_pay"`
	PayFrequency string    `json:"pay_frequency"` // weekly, bi-weekly, semi-monthly, monthly
	Employer     string    `json:"employer"`
}

// Transaction is a single bank statement line. Positive amounts are deposits,
// negative amounts are withdrawals/debits.
type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BankStatement is one statement period for one account.
type BankStatement struct {
	AccountName      string        `json:"account_name"`
	AccountType      string        `json:"account_type"`
	StatementDate    string        `json:"statement_date"`
	BeginningBalance float64       `json:"beginning_balance"`
	EndingBalance    float64       `json:"ending_balance"`
	Transactions     []Transaction `json:"transactions"`
}

func sumMap(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}
