// Package advice turns a financial state into natural-language
// recommendations. It builds a prompt, dispatches it to the configured
// text-generation backend once, and falls back to deterministic
// rule-based prose whenever the backend fails or answers with too little
// text. The caller always gets a non-empty string.
package advice

import (
	"strings"

	"finance_advisor/pkg/models"
)

// Context lists every field the prompt templates and the fallback logic
// read. It is constructed explicitly at each call site; there is no
// open-ended map merging.
type Context struct {
	Age            int
	Income         float64
	TotalExpenses  float64
	EmergencyFund  float64
	TotalEMI       float64
	SavingsRatePct float64
	GoalSummary    string
	QuestionType   string
}

// NewContext derives a prompt context from a state snapshot and the
// caller's optional goals.
func NewContext(state models.FinancialState, goals []models.Goal) Context {
	age := state.Age
	if age <= 0 {
		age = 30
	}

	var savingsRatePct float64
	if state.Income > 0 {
		savingsRatePct = (state.Income - state.TotalExpenses) / state.Income * 100
	}

	summary := "Not specified"
	if len(goals) > 0 {
		names := make([]string, 0, len(goals))
		for _, g := range goals {
			if g.Name != "" {
				names = append(names, g.Name)
			}
		}
		if len(names) > 0 {
			summary = strings.Join(names, ", ")
		}
	} else if state.FinancialGoals != "" {
		summary = state.FinancialGoals
	}

	return Context{
		Age:            age,
		Income:         state.Income,
		TotalExpenses:  state.TotalExpenses,
		EmergencyFund:  state.EmergencyFund,
		TotalEMI:       state.TotalEMI,
		SavingsRatePct: savingsRatePct,
		GoalSummary:    summary,
	}
}

// MonthlySavings is income minus expenses; negative when overspending.
func (c Context) MonthlySavings() float64 {
	return c.Income - c.TotalExpenses
}
