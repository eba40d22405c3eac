// Package risk evaluates financial risk and data plausibility using
// deterministic rules. No LLM is involved in any calculation here.
package risk

import (
	"time"

	"github.com/google/uuid"

	"finance_advisor/pkg/core/calc"
	"finance_advisor/pkg/models"
)

// Risk levels derived from the score.
const (
	LevelLow    = "LOW"
	LevelMedium = "MEDIUM"
	LevelHigh   = "HIGH"
)

// Scoring thresholds and penalties. Three independent rules each add a
// fixed penalty; the sum is capped at 100.
const (
	minRunwayMonths = 3
	runwayPenalty   = 35
	maxEMIRatio     = 0.4
	emiPenalty      = 30
	minSavingsRatio = 0.2
	savingsPenalty  = 25
	mediumThreshold = 40
	highThreshold   = 70
	maxRiskScore    = 100
)

// Assessment is the immutable result of a risk analysis.
type Assessment struct {
	ID          string    `json:"id"`
	RiskScore   int       `json:"risk_score"`
	RiskLevel   string    `json:"risk_level"`
	Reasons     []string  `json:"reasons"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Analyze scores a financial state in [0, 100] and maps the score to a
// categorical level. It always returns a well-formed result; inputs are
// assumed numeric after upstream coercion.
func Analyze(state models.FinancialState) Assessment {
	score := 0
	reasons := []string{}

	// Emergency fund risk
	runway := calc.EmergencyRunway(state.EmergencyFund, state.TotalExpenses)
	if runway < minRunwayMonths {
		score += runwayPenalty
		reasons = append(reasons, "Emergency fund less than 3 months")
	}

	// EMI burden risk
	emiLoad := calc.EMIRatio(state.Income, state.TotalEMI)
	if emiLoad > maxEMIRatio {
		score += emiPenalty
		reasons = append(reasons, "EMI exceeds 40% of income")
	}

	// Savings health
	saveRatio := calc.SavingsRatio(state.Income, state.TotalExpenses)
	if saveRatio < minSavingsRatio {
		score += savingsPenalty
		reasons = append(reasons, "Savings rate below 20%")
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	level := LevelLow
	switch {
	case score >= highThreshold:
		level = LevelHigh
	case score >= mediumThreshold:
		level = LevelMedium
	}

	return Assessment{
		ID:          uuid.New().String(),
		RiskScore:   score,
		RiskLevel:   level,
		Reasons:     reasons,
		GeneratedAt: time.Now().UTC(),
	}
}
