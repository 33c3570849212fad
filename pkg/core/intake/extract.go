// Package intake normalizes raw client documents into the typed records the
// analysis pipeline consumes: OCR text field extraction, lenient JSON
// parsing, and HTML bank statement import.
package intake

import (
	"regexp"
	"strings"

	"familylaw_toolkit/pkg/core/money"
)

var (
	currencyPattern = regexp.MustCompile(`\$[\d,]+\.?\d{0,2}`)
	dateMDYPattern  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	dateYMDPattern  = regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`)
	ssnPattern      = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	einPattern      = regexp.MustCompile(`\b\d{2}-\d{7}\b`)
	accountPattern  = regexp.MustCompile(`\b(?:Account|Acct)\.?\s*#?\s*:?\s*(\d{4,})\b`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// keyValuePatterns are the labeled figures worth pulling out of any financial
// document. Group 1 is the canonical label, group 2 the raw value.
var keyValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Gross Pay|Gross Income|Total Income)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Net Pay|Net Income)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Total Assets)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Total Liabilities)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Beginning Balance)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Ending Balance)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Adjusted Gross Income)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Taxable Income)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Federal Tax)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(State Tax)[:\s]+\$?([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(Account Number|Acct #)[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)(Period|Statement Date)[:\s]+([\d/\-]+)`),
}

// documentType pairs a label with the keywords that vote for it.
type documentType struct {
	Name     string
	Keywords []string
}

// documentTypes is ordered; ties in keyword score resolve to the earlier
// entry, keeping detection deterministic.
var documentTypes = []documentType{
	{"tax_return", []string{"form 1040", "internal revenue", "irs", "tax return",
		"adjusted gross income", "taxable income", "w-2", "schedule"}},
	{"bank_statement", []string{"bank statement", "account summary", "beginning balance",
		"ending balance", "deposits", "withdrawals", "available balance"}},
	{"net_worth", []string{"net worth statement", "statement of net worth", "assets",
		"liabilities", "monthly expenses", "schedule a", "schedule b"}},
	{"pay_stub", []string{"pay stub", "earnings statement", "gross pay", "net pay",
		"ytd", "deductions", "federal tax", "state tax"}},
	{"brokerage", []string{"brokerage statement", "investment account", "portfolio",
		"securities", "stocks", "bonds", "mutual funds"}},
	{"retirement", []string{"401k", "403b", "ira", "pension", "retirement account",
		"vested balance", "employer match"}},
	{"mortgage", []string{"mortgage statement", "loan statement", "principal balance",
		"escrow", "property tax", "homeowner insurance"}},
	{"credit_card", []string{"credit card statement", "minimum payment", "credit limit",
		"available credit", "apr", "finance charge"}},
}

// AmountMatch is one currency occurrence with its surrounding text, kept so
// a reviewer can tell a balance from a fee without re-reading the page.
type AmountMatch struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Context   string  `json:"context"`
}

// ExtractedFields is the structured data pulled from one OCR'd document.
type ExtractedFields struct {
	DocumentType   string            `json:"document_type"`
	Amounts        []AmountMatch     `json:"amounts"`
	Dates          []string          `json:"dates"`
	AccountNumbers []string          `json:"account_numbers"`
	SSNDetected    bool              `json:"ssn_detected"`
	EINDetected    bool              `json:"ein_detected"`
	Emails         []string          `json:"emails"`
	PhoneNumbers   []string          `json:"phone_numbers"`
	KeyValues      map[string]string `json:"key_values"`
}

// ExtractFields pulls structured financial data out of raw OCR text.
func ExtractFields(text string) *ExtractedFields {
	return &ExtractedFields{
		DocumentType:   DetectDocumentType(text),
		Amounts:        extractAmounts(text),
		Dates:          extractDates(text),
		AccountNumbers: uniqueSubmatches(accountPattern, text),
		SSNDetected:    ssnPattern.MatchString(text),
		EINDetected:    einPattern.MatchString(text),
		Emails:         uniqueMatches(emailPattern, text),
		PhoneNumbers:   uniqueMatches(phonePattern, text),
		KeyValues:      extractKeyValues(text),
	}
}

// DetectDocumentType scores each known document type by keyword hits and
// returns the best match, or "unknown" when nothing matches.
func DetectDocumentType(text string) string {
	lower := strings.ToLower(text)

	best := "unknown"
	bestScore := 0
	for _, dt := range documentTypes {
		score := 0
		for _, kw := range dt.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = dt.Name
			bestScore = score
		}
	}
	return best
}

// extractAmounts finds currency tokens and captures 30 characters of context
// on each side.
func extractAmounts(text string) []AmountMatch {
	var amounts []AmountMatch
	for _, loc := range currencyPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]

		start := loc[0] - 30
		if start < 0 {
			start = 0
		}
		end := loc[1] + 30
		if end > len(text) {
			end = len(text)
		}

		amounts = append(amounts, AmountMatch{
			Value:     money.ParseAmount(raw),
			Formatted: raw,
			Context:   strings.TrimSpace(text[start:end]),
		})
	}
	return amounts
}

// extractDates collects MDY and YMD formatted dates, deduplicated in
// first-seen order.
func extractDates(text string) []string {
	seen := map[string]bool{}
	var dates []string
	for _, pattern := range []*regexp.Regexp{dateMDYPattern, dateYMDPattern} {
		for _, m := range pattern.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				dates = append(dates, m)
			}
		}
	}
	return dates
}

func extractKeyValues(text string) map[string]string {
	pairs := map[string]string{}
	for _, pattern := range keyValuePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			pairs[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
		}
	}
	return pairs
}

func uniqueMatches(pattern *regexp.Regexp, text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range pattern.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func uniqueSubmatches(pattern *regexp.Regexp, text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 && !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}
