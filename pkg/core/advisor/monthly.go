package advisor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"finance_advisor/pkg/models"
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a single prioritized flag with a concrete next step.
// List order encodes rule order, not a sort.
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// ActionItem is a concrete task for the month.
type ActionItem struct {
	Task     string `json:"task"`
	Priority string `json:"priority"`
	Due      string `json:"due"`
}

// BudgetBucket is one slice of the 50/30/20 allocation.
type BudgetBucket struct {
	Percentage int      `json:"percentage"`
	Amount     float64  `json:"amount"`
	Categories []string `json:"categories"`
}

// BudgetAllocation is the 50/30/20 split of income.
type BudgetAllocation struct {
	Needs   BudgetBucket `json:"needs"`
	Wants   BudgetBucket `json:"wants"`
	Savings BudgetBucket `json:"savings"`
}

// MonthlyRecommendations bundles the threshold flags, action items and
// budget allocation for one month.
type MonthlyRecommendations struct {
	Recommendations  []Recommendation  `json:"recommendations"`
	ActionItems      []ActionItem      `json:"action_items"`
	BudgetAllocation *BudgetAllocation `json:"budget_allocation,omitempty"`
}

// FinancialSummary condenses the state into the headline figures.
type FinancialSummary struct {
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Savings      float64 `json:"savings"`
	SavingsRate  float64 `json:"savings_rate"`
	EMIBurdenPct float64 `json:"emi_burden"`
}

// MonthlyPlan is the full composed plan for a month.
type MonthlyPlan struct {
	ID               string                  `json:"id"`
	Month            string                  `json:"month"`
	Status           string                  `json:"status"`
	GeneratedAt      time.Time               `json:"generated_at"`
	Summary          FinancialSummary        `json:"financial_summary"`
	ExpenseBreakdown models.ExpenseBreakdown `json:"expense_breakdown"`
	MonthlyRecommendations
}

// BuildMonthlyRecommendations applies the monthly threshold rules and the
// 50/30/20 allocation to a financial state.
func BuildMonthlyRecommendations(state models.FinancialState) MonthlyRecommendations {
	return MonthlyRecommendations{
		Recommendations:  monthlyFlags(state),
		ActionItems:      actionItems(state),
		BudgetAllocation: budgetAllocation(state),
	}
}

// BuildMonthlyPlan composes the recommendations with a financial summary
// and the month's expense breakdown.
func BuildMonthlyPlan(state models.FinancialState, expenses models.ExpenseBreakdown, month string) MonthlyPlan {
	savings := state.MonthlySavings()
	summary := FinancialSummary{
		Income:   state.Income,
		Expenses: state.TotalExpenses,
		Savings:  savings,
	}
	if state.Income > 0 {
		summary.SavingsRate = savings / state.Income * 100
		summary.EMIBurdenPct = state.TotalEMI / state.Income * 100
	}

	return MonthlyPlan{
		ID:                     uuid.New().String(),
		Month:                  month,
		Status:                 "active",
		GeneratedAt:            time.Now().UTC(),
		Summary:                summary,
		ExpenseBreakdown:       expenses,
		MonthlyRecommendations: BuildMonthlyRecommendations(state),
	}
}

func monthlyFlags(state models.FinancialState) []Recommendation {
	recommendations := []Recommendation{}
	income := state.Income
	savings := state.MonthlySavings()

	// Savings rate check. Computed directly rather than via the clamped
	// metric so a negative rate still reads honestly in the description.
	var savingsRate float64
	if income > 0 {
		savingsRate = savings / income * 100
	}
	if savingsRate < 20 {
		recommendations = append(recommendations, Recommendation{
			Priority:    PriorityHigh,
			Category:    "Savings",
			Title:       "Increase Savings Rate",
			Description: fmt.Sprintf("Your savings rate is %.1f%%. Aim for at least 20%%.", savingsRate),
			Action:      "Review expenses and identify areas to cut by 10-15%",
		})
	}

	targetEmergency := state.TotalExpenses * emergencyTargetMonths
	if state.EmergencyFund < targetEmergency {
		shortfall := targetEmergency - state.EmergencyFund
		recommendations = append(recommendations, Recommendation{
			Priority:    PriorityHigh,
			Category:    "Emergency Fund",
			Title:       "Build Emergency Fund",
			Description: fmt.Sprintf("You need ₹%.0f more to reach 6 months expenses.", shortfall),
			Action:      fmt.Sprintf("Save ₹%.0f per month for 6 months", shortfall/6),
		})
	}

	var emiRatio float64
	if income > 0 {
		emiRatio = state.TotalEMI / income * 100
	}
	if emiRatio > 40 {
		recommendations = append(recommendations, Recommendation{
			Priority:    PriorityHigh,
			Category:    "Debt Management",
			Title:       "High EMI Burden",
			Description: fmt.Sprintf("EMI is %.1f%% of income (should be <40%%).", emiRatio),
			Action:      "Consider debt consolidation or increasing income",
		})
	}

	if state.TotalExpenses > income*0.8 {
		recommendations = append(recommendations, Recommendation{
			Priority:    PriorityMedium,
			Category:    "Budget",
			Title:       "High Expense Ratio",
			Description: "Expenses are too high relative to income.",
			Action:      "Create detailed budget and track every expense",
		})
	}

	return recommendations
}

func actionItems(state models.FinancialState) []ActionItem {
	if state.MonthlySavings() > 0 {
		return []ActionItem{
			{Task: "Set up automatic transfer to savings account", Priority: PriorityHigh, Due: "This week"},
			{Task: "Review and cancel unused subscriptions", Priority: PriorityMedium, Due: "This month"},
			{Task: "Set up SIP for mutual funds", Priority: PriorityMedium, Due: "This month"},
		}
	}
	return []ActionItem{
		{Task: "Create detailed expense tracking", Priority: PriorityHigh, Due: "Immediately"},
		{Task: "Identify and cut unnecessary expenses", Priority: PriorityHigh, Due: "This week"},
	}
}

// budgetAllocation applies the 50/30/20 rule. Without income there is
// nothing to allocate, so the whole section is omitted.
func budgetAllocation(state models.FinancialState) *BudgetAllocation {
	income := state.Income
	if income == 0 {
		return nil
	}
	return &BudgetAllocation{
		Needs: BudgetBucket{
			Percentage: 50,
			Amount:     income * 0.5,
			Categories: []string{"Rent", "EMI", "Groceries", "Utilities", "Insurance"},
		},
		Wants: BudgetBucket{
			Percentage: 30,
			Amount:     income * 0.3,
			Categories: []string{"Entertainment", "Dining", "Shopping", "Hobbies"},
		},
		Savings: BudgetBucket{
			Percentage: 20,
			Amount:     income * 0.2,
			Categories: []string{"Emergency Fund", "Investments", "Retirement"},
		},
	}
}
