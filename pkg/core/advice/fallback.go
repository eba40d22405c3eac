package advice

import "fmt"

// defaultAdvice closes the fallback when no rule produced anything.
const defaultAdvice = "Review your financial goals and create a monthly budget plan."

// RuleBasedAdvice is the deterministic fallback: pure string formatting
// over the context, no external calls. It mirrors the same thresholds the
// recommendation generators use, phrased as prose, and never returns an
// empty string.
func RuleBasedAdvice(ctx Context, questionType string) string {
	monthlySavings := ctx.MonthlySavings()

	switch normalizeQuestionType(questionType) {
	case QuestionInvestment:
		if monthlySavings > 0 {
			return fmt.Sprintf(
				"With ₹%.0f monthly savings, consider: "+
					"1) Build emergency fund to 6 months expenses, 2) Start SIP in index funds (₹5,000-10,000/month), "+
					"3) Consider tax-saving ELSS funds, 4) Diversify with debt funds for stability.",
				monthlySavings)
		}
		return "Focus on increasing income or reducing expenses before investing."

	case QuestionSavings:
		targetEmergency := ctx.TotalExpenses * 6
		if ctx.EmergencyFund < targetEmergency {
			shortfall := targetEmergency - ctx.EmergencyFund
			// With nothing saved per month the timeline is unbounded;
			// 999 stands in for "not at this rate" in the prose.
			months := 999.0
			if monthlySavings > 0 {
				months = shortfall / monthlySavings
			}
			return fmt.Sprintf(
				"Build emergency fund: Need ₹%.0f more. "+
					"At current savings rate, will take %.0f months. "+
					"Prioritize this before other investments.",
				shortfall, months)
		}
		return defaultAdvice

	case QuestionDebt:
		var emiRatioPct float64
		if ctx.Income > 0 {
			emiRatioPct = ctx.TotalEMI / ctx.Income * 100
		}
		if emiRatioPct > 40 {
			return fmt.Sprintf(
				"EMI burden is %.0f%% of income (high). "+
					"Consider: 1) Debt consolidation, 2) Increase income, 3) Refinance at lower rates.",
				emiRatioPct)
		}
		return "Your EMI burden is manageable. Continue regular payments."

	default: // planning and general
		if monthlySavings > 0 {
			return "Good savings rate. Allocate: 50% to emergency fund, " +
				"30% to equity investments, 20% to debt/insurance."
		}
		return "Expenses exceed income. Review: 1) Unnecessary subscriptions, " +
			"2) Dining out frequency, 3) Lifestyle inflation. Create strict budget."
	}
}
