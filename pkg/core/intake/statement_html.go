package intake

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"familylaw_toolkit/pkg/core/money"
	"familylaw_toolkit/pkg/models"
)

// ParseStatementHTML imports a bank statement exported as HTML (the format
// most online banking portals produce for download). Transaction rows are
// any table rows whose first cell is a date; balances and the statement date
// come from labeled key-value text anywhere in the document.
func ParseStatementHTML(html string) (*models.BankStatement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("statement html: %w", err)
	}

	stmt := &models.BankStatement{
		AccountName: findAccountName(doc),
	}

	pageText := doc.Text()
	keyValues := extractKeyValues(pageText)
	stmt.BeginningBalance = money.ParseAmount(keyValues["Beginning Balance"])
	stmt.EndingBalance = money.ParseAmount(keyValues["Ending Balance"])
	if v, ok := keyValues["Statement Date"]; ok {
		stmt.StatementDate = v
	} else if dates := extractDates(pageText); len(dates) > 0 {
		stmt.StatementDate = dates[0]
	}

	tablesScanned := 0
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		tablesScanned++
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			txn, ok := parseTransactionRow(row)
			if ok {
				stmt.Transactions = append(stmt.Transactions, txn)
			}
		})
	})

	log.Printf("[StatementParser] account=%q tables=%d transactions=%d ending_balance=%.2f",
		stmt.AccountName, tablesScanned, len(stmt.Transactions), stmt.EndingBalance)

	return stmt, nil
}

// findAccountName looks for the account label in headings first, then in an
// element tagged with the account-name class.
func findAccountName(doc *goquery.Document) string {
	for _, selector := range []string{"h1", "h2", ".account-name"} {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// parseTransactionRow reads a date/description/amount row. Rows whose first
// cell is not a date (headers, balance summaries) are skipped.
func parseTransactionRow(row *goquery.Selection) (models.Transaction, bool) {
	cells := row.Find("td")
	if cells.Length() < 3 {
		return models.Transaction{}, false
	}

	date := strings.TrimSpace(cells.Eq(0).Text())
	if !dateMDYPattern.MatchString(date) && !dateYMDPattern.MatchString(date) {
		return models.Transaction{}, false
	}

	description := strings.TrimSpace(cells.Eq(1).Text())
	rawAmount := strings.TrimSpace(cells.Eq(cells.Length() - 1).Text())

	amount, ok := money.ParseAmountChecked(rawAmount)
	if !ok {
		return models.Transaction{}, false
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}, true
}
