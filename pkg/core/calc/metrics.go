// Package calc provides the primitive financial health metrics.
// All functions are total: division-by-zero cases return explicit
// sentinels instead of errors, so callers never branch on failure.
package calc

import "math"

// SavingsRatio returns the fraction of income left after expenses.
// Returns 0 when income is 0, and never goes negative.
func SavingsRatio(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return math.Max((income-expenses)/income, 0)
}

// EMIRatio returns the share of income consumed by loan installments.
// Zero income is treated as the worst case: a full burden of 1.
// The ratio is unbounded above.
func EMIRatio(income, emi float64) float64 {
	if income == 0 {
		return 1
	}
	return emi / income
}

// EmergencyRunway returns how many months of expenses the emergency fund
// covers. With zero monthly expenses any fund lasts forever, so the
// sentinel is +Inf.
func EmergencyRunway(fund, monthlyExpenses float64) float64 {
	if monthlyExpenses == 0 {
		return math.Inf(1)
	}
	return fund / monthlyExpenses
}
