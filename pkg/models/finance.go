// Package models holds the shared value objects that flow between the
// advisor's core packages. Everything here is an ephemeral snapshot built
// per request; nothing is persisted by the core.
package models

// Risk tolerance levels accepted from the user profile.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// Investment experience levels. Anything other than "beginner" is treated
// as experienced by the allocation logic.
const (
	ExperienceBeginner = "beginner"
)

// FinancialState is a snapshot of a user's monthly finances.
// Monetary fields are non-negative; upstream coercion is assumed and a
// missing field is simply its zero value.
type FinancialState struct {
	Income        float64 `json:"income"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalEMI      float64 `json:"total_emi"`
	EmergencyFund float64 `json:"emergency_fund"`

	Age                  int    `json:"age,omitempty"`
	RiskTolerance        string `json:"risk_tolerance,omitempty"`
	InvestmentExperience string `json:"investment_experience,omitempty"`
	FinancialGoals       string `json:"financial_goals,omitempty"`
}

// MonthlySavings is income minus expenses. Can be negative.
func (s FinancialState) MonthlySavings() float64 {
	return s.Income - s.TotalExpenses
}

// Normalize fills categorical defaults the way the profile store would for
// an incomplete profile. Monetary fields are left untouched.
func (s *FinancialState) Normalize() {
	if s.Age <= 0 {
		s.Age = 30
	}
	switch s.RiskTolerance {
	case RiskConservative, RiskModerate, RiskAggressive:
	case "high":
		// Legacy profiles stored "high" for aggressive.
		s.RiskTolerance = RiskAggressive
	default:
		s.RiskTolerance = RiskModerate
	}
	if s.InvestmentExperience == "" {
		s.InvestmentExperience = ExperienceBeginner
	}
}

// ExpenseBreakdown maps a category name to its aggregate monthly amount.
type ExpenseBreakdown map[string]float64

// Total sums all category amounts.
func (e ExpenseBreakdown) Total() float64 {
	var total float64
	for _, amount := range e {
		total += amount
	}
	return total
}

// Goal is an optional caller-supplied savings target.
type Goal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// UserContext carries the profile fields the planners and the SIP
// allocator read. It replaces ad-hoc map merging with an explicit struct;
// every field has a meaningful zero value resolved by Resolve.
type UserContext struct {
	Age                  int    `json:"age"`
	RiskTolerance        string `json:"risk_tolerance"`
	InvestmentExperience string `json:"investment_experience"`
}

// Resolve merges the context over the state's own profile fields and
// applies defaults, returning the effective values.
func (u *UserContext) Resolve(state FinancialState) UserContext {
	resolved := UserContext{
		Age:                  state.Age,
		RiskTolerance:        state.RiskTolerance,
		InvestmentExperience: state.InvestmentExperience,
	}
	if u != nil {
		if u.Age > 0 {
			resolved.Age = u.Age
		}
		if u.RiskTolerance != "" {
			resolved.RiskTolerance = u.RiskTolerance
		}
		if u.InvestmentExperience != "" {
			resolved.InvestmentExperience = u.InvestmentExperience
		}
	}
	if resolved.Age <= 0 {
		resolved.Age = 30
	}
	switch resolved.RiskTolerance {
	case "high":
		resolved.RiskTolerance = RiskAggressive
	case RiskConservative, RiskModerate, RiskAggressive:
	default:
		resolved.RiskTolerance = RiskModerate
	}
	if resolved.InvestmentExperience == "" {
		resolved.InvestmentExperience = ExperienceBeginner
	}
	return resolved
}
