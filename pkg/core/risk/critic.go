package risk

import (
	"math"

	"finance_advisor/pkg/models"
)

// ConfidenceReport captures how plausible the input data looks,
// independently of the risk score.
type ConfidenceReport struct {
	Confidence float64  `json:"confidence"`
	Warnings   []string `json:"warnings"`
}

// Review audits the realism of a financial state and assigns a confidence
// in [0.0, 1.0]. Penalties accumulate and are not mutually exclusive.
//
// The assessment argument is accepted for interface symmetry with Analyze
// but is not read: confidence is a property of the input data, not of the
// derived score.
func Review(state models.FinancialState, _ Assessment) ConfidenceReport {
	warnings := []string{}
	confidence := 1.0

	if state.TotalEMI > state.Income {
		warnings = append(warnings, "EMI exceeds income")
		confidence -= 0.4
	}

	if state.TotalExpenses > state.Income {
		warnings = append(warnings, "Expenses exceed income")
		confidence -= 0.3
	}

	if state.Income <= 0 {
		warnings = append(warnings, "Invalid income")
		confidence -= 0.5
	}

	// Round to 2 decimals before clamping; the value starts at 1.0 and
	// only ever decreases, so no upper clamp is needed.
	confidence = math.Round(confidence*100) / 100
	if confidence < 0 {
		confidence = 0
	}

	return ConfidenceReport{
		Confidence: confidence,
		Warnings:   warnings,
	}
}
