package consistency

import (
	"fmt"
	"math"
	"strings"

	"familylaw_toolkit/pkg/core/money"
	"familylaw_toolkit/pkg/models"
)

// depositPattern is a consistent stream of deposits from one inferred source.
type depositPattern struct {
	Source      string
	AvgAmount   float64
	Frequency   float64 // approximate deposits per month
	Consistency string
}

// findHiddenIncomeIndicators runs the three independent heuristics over the
// bank transactions: regular deposits exceeding reported income, large cash
// withdrawals, and transfers to undisclosed accounts.
func (a *Analyzer) findHiddenIncomeIndicators(
	netWorth *models.NetWorthStatement,
	bankStatements []models.BankStatement,
) []HiddenIncomeIndicator {
	var indicators []HiddenIncomeIndicator

	if len(bankStatements) > 0 {
		reportedMonthly := 0.0
		if netWorth != nil {
			reportedMonthly = netWorth.TotalAnnualIncome() / 12
		}

		for _, pattern := range a.depositPatterns(bankStatements) {
			if pattern.AvgAmount*pattern.Frequency > reportedMonthly*incomeCoverageMultiplier {
				indicators = append(indicators, HiddenIncomeIndicator{
					Type:                  "UNEXPLAINED_REGULAR_DEPOSITS",
					Description:           fmt.Sprintf("Regular deposits of %s %.1f times monthly", money.FormatUSD(pattern.AvgAmount), pattern.Frequency),
					ReportedMonthlyIncome: money.FormatUSD(reportedMonthly),
					Concern:               "Possible unreported income source",
				})
			}
		}
	}

	if withdrawals := a.largeCashWithdrawals(bankStatements); len(withdrawals) > 0 {
		total := 0.0
		for _, w := range withdrawals {
			total += w
		}
		indicators = append(indicators, HiddenIncomeIndicator{
			Type:        "LARGE_CASH_WITHDRAWALS",
			Description: fmt.Sprintf("%d large cash withdrawals totaling %s", len(withdrawals), money.FormatUSD(total)),
			Concern:     "Could indicate cash business or hidden assets",
		})
	}

	if transfers := a.unknownTransfers(bankStatements); len(transfers) > 0 {
		total := 0.0
		for _, t := range transfers {
			total += t.Amount
		}
		indicators = append(indicators, HiddenIncomeIndicator{
			Type:        "TRANSFERS_TO_UNKNOWN_ACCOUNTS",
			Description: fmt.Sprintf("Transfers to %d different unverified accounts", len(transfers)),
			TotalAmount: money.FormatUSD(total),
			Concern:     "Could be hiding assets in other accounts",
		})
	}

	return indicators
}

// depositPatterns buckets deposits by inferred source and keeps buckets with
// at least three deposits whose amounts vary less than 30% around the mean.
// The implied monthly frequency is count/3, a crude per-month rate assuming
// a quarterly sampling window.
func (a *Analyzer) depositPatterns(bankStatements []models.BankStatement) []depositPattern {
	depositsBySource := map[string][]float64{}

	for _, stmt := range bankStatements {
		for _, txn := range stmt.Transactions {
			if txn.Amount <= 0 {
				continue
			}
			description := strings.ToLower(txn.Description)

			source := "unknown"
			switch {
			case containsAny(description, []string{"payroll", "salary", "direct deposit"}):
				source = "payroll"
			case containsAny(description, []string{"transfer", "venmo", "zelle", "paypal"}):
				source = "transfer"
			case containsAny(description, []string{"deposit", "cash"}):
				source = "cash_deposit"
			}

			depositsBySource[source] = append(depositsBySource[source], txn.Amount)
		}
	}

	var patterns []depositPattern
	for source, amounts := range depositsBySource {
		if len(amounts) < depositPatternMinCount {
			continue
		}

		mean, stddev := meanStddev(amounts)
		if stddev/mean >= depositConsistencyMax {
			continue
		}

		patterns = append(patterns, depositPattern{
			Source:      source,
			AvgAmount:   mean,
			Frequency:   float64(len(amounts)) / 3,
			Consistency: fmt.Sprintf("%.1f%%", (1-stddev/mean)*100),
		})
	}

	return patterns
}

// largeCashWithdrawals collects the absolute amounts of cash-like debits
// larger than the withdrawal floor.
func (a *Analyzer) largeCashWithdrawals(bankStatements []models.BankStatement) []float64 {
	var withdrawals []float64
	for _, stmt := range bankStatements {
		for _, txn := range stmt.Transactions {
			description := strings.ToLower(txn.Description)
			if txn.Amount < -a.cfg.CashWithdrawalFloor && containsAny(description, []string{"cash", "withdrawal", "atm"}) {
				withdrawals = append(withdrawals, math.Abs(txn.Amount))
			}
		}
	}
	return withdrawals
}

type unknownTransfer struct {
	Amount      float64
	Description string
	Date        string
}

// unknownTransfers collects outgoing transfers whose description names none
// of the configured known banks.
func (a *Analyzer) unknownTransfers(bankStatements []models.BankStatement) []unknownTransfer {
	var transfers []unknownTransfer
	for _, stmt := range bankStatements {
		for _, txn := range stmt.Transactions {
			if txn.Amount >= 0 {
				continue
			}
			description := strings.ToLower(txn.Description)
			if !containsAny(description, []string{"transfer", "to account"}) {
				continue
			}
			if containsAny(description, a.cfg.KnownBanks) {
				continue
			}
			transfers = append(transfers, unknownTransfer{
				Amount:      math.Abs(txn.Amount),
				Description: description,
				Date:        txn.Date,
			})
		}
	}
	return transfers
}

// meanStddev returns the mean and population standard deviation.
func meanStddev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
