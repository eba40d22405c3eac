// Package advisor contains the deterministic recommendation generators:
// budget cuts, future/goal timelines, SIP allocation and monthly action
// plans. Everything here is a pure function of its inputs except the SIP
// advisor, which draws its market condition from an injectable source.
package advisor

import (
	"fmt"
	"math"
	"sort"

	"finance_advisor/pkg/models"
)

// Generator statuses.
const (
	StatusSkipped   = "skipped"
	StatusSuggested = "suggested"
	StatusBlocked   = "blocked"
	StatusPlanned   = "planned"
)

// Below this confidence the budget optimizer refuses to suggest cuts.
const minBudgetConfidence = 0.7

// Fraction of each category proposed as a reduction.
const budgetCutRate = 0.15

// BudgetSuggestion proposes a cut for a single expense category.
type BudgetSuggestion struct {
	Category           string  `json:"category"`
	Current            float64 `json:"current"`
	SuggestedReduction float64 `json:"suggested_reduction"`
	NewAmount          float64 `json:"new_amount"`
	Message            string  `json:"message"`
}

// BudgetPlan is the budget optimizer's result.
type BudgetPlan struct {
	Status                string             `json:"status"`
	Reason                string             `json:"reason,omitempty"`
	Suggestions           []BudgetSuggestion `json:"suggestions"`
	TotalPotentialSavings float64            `json:"total_potential_savings"`
}

// SuggestBudgetCuts proposes a 15% reduction per spending category.
// It is the only generator with a hard gate: below 0.7 confidence the
// underlying data is too implausible to cut against.
//
// Categories are visited in sorted order so the suggestion list is stable
// across calls; map iteration order would leak into the output otherwise.
func SuggestBudgetCuts(expenses models.ExpenseBreakdown, confidence float64) BudgetPlan {
	if confidence < minBudgetConfidence {
		return BudgetPlan{
			Status:      StatusSkipped,
			Reason:      "Low confidence in data",
			Suggestions: []BudgetSuggestion{},
		}
	}

	categories := make([]string, 0, len(expenses))
	for category := range expenses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	suggestions := []BudgetSuggestion{}
	var total float64
	for _, category := range categories {
		amount := expenses[category]
		if amount <= 0 {
			continue
		}
		cut := round2(amount * budgetCutRate)
		suggestions = append(suggestions, BudgetSuggestion{
			Category:           category,
			Current:            amount,
			SuggestedReduction: cut,
			NewAmount:          round2(amount - cut),
			Message:            fmt.Sprintf("Reduce %s by ₹%.2f per month", category, cut),
		})
		total += cut
	}

	return BudgetPlan{
		Status:                StatusSuggested,
		Suggestions:           suggestions,
		TotalPotentialSavings: round2(total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
