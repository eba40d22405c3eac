package advisor

import (
	"math"

	"finance_advisor/pkg/models"
)

// Months of expenses the emergency fund should cover.
const emergencyTargetMonths = 6

// EmergencyFundPlan is the timeline to a fully funded emergency buffer.
type EmergencyFundPlan struct {
	Target        float64 `json:"target"`
	Current       float64 `json:"current"`
	MonthsToReach float64 `json:"months_to_reach"`
	Shortfall     float64 `json:"shortfall"`
}

// GoalPlan is the timeline for one user-supplied goal.
type GoalPlan struct {
	Goal                string  `json:"goal"`
	Amount              float64 `json:"amount"`
	MonthsToReach       float64 `json:"months_to_reach"`
	MonthlyContribution float64 `json:"monthly_contribution_needed"`
}

// FuturePlan is the future planner's result.
type FuturePlan struct {
	Status        string             `json:"status"`
	Reason        string             `json:"reason,omitempty"`
	EmergencyFund *EmergencyFundPlan `json:"emergency_fund,omitempty"`
	Goals         []GoalPlan         `json:"goals,omitempty"`
}

// PlanFuture projects when the emergency fund target and each goal will
// be reached at the current monthly savings. With no positive savings
// there is no timeline to compute, so the plan is blocked outright; that
// early return is the sole guard against a zero divisor below.
func PlanFuture(state models.FinancialState, goals []models.Goal) FuturePlan {
	monthlySavings := state.MonthlySavings()
	if monthlySavings <= 0 {
		return FuturePlan{
			Status: StatusBlocked,
			Reason: "No positive monthly savings",
		}
	}

	target := state.TotalExpenses * emergencyTargetMonths
	shortfall := math.Max(target-state.EmergencyFund, 0)

	plan := FuturePlan{
		Status: StatusPlanned,
		EmergencyFund: &EmergencyFundPlan{
			Target:        round2(target),
			Current:       state.EmergencyFund,
			MonthsToReach: round1(shortfall / monthlySavings),
			Shortfall:     round2(shortfall),
		},
		Goals: []GoalPlan{},
	}

	for _, goal := range goals {
		if goal.Amount <= 0 {
			continue
		}
		months := goal.Amount / monthlySavings
		name := goal.Name
		if name == "" {
			name = "Unnamed Goal"
		}
		plan.Goals = append(plan.Goals, GoalPlan{
			Goal:                name,
			Amount:              goal.Amount,
			MonthsToReach:       round1(months),
			MonthlyContribution: round2(goal.Amount / math.Max(months, 1)),
		})
	}

	return plan
}
