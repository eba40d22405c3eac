package risk

import (
	"testing"

	"finance_advisor/pkg/models"
)

func TestReviewPlausibleState(t *testing.T) {
	// Income > 0, expenses <= income, EMI <= income: full confidence.
	state := models.FinancialState{
		Income:        50000,
		TotalExpenses: 30000,
		TotalEMI:      25000,
		EmergencyFund: 10000,
	}

	rep := Review(state, Assessment{})
	if rep.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %f", rep.Confidence)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", rep.Warnings)
	}
}

func TestReviewInvalidIncome(t *testing.T) {
	// Income = 0, expenses 1000 > 0 = income: -0.3 and -0.5 -> 0.2.
	state := models.FinancialState{
		Income:        0,
		TotalExpenses: 1000,
	}

	rep := Review(state, Assessment{})
	if rep.Confidence != 0.2 {
		t.Errorf("expected confidence 0.2, got %f", rep.Confidence)
	}
	if len(rep.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", rep.Warnings)
	}
}

func TestReviewPenaltiesAccumulate(t *testing.T) {
	// Zero income with positive EMI trips all three rules:
	// 1.0 - 0.4 - 0.3 - 0.5 = -0.2, clamped to 0.
	state := models.FinancialState{
		Income:        0,
		TotalExpenses: 500,
		TotalEMI:      500,
	}

	rep := Review(state, Assessment{})
	if rep.Confidence != 0 {
		t.Errorf("expected clamp to 0, got %f", rep.Confidence)
	}
	if len(rep.Warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", rep.Warnings)
	}
}

func TestReviewBounds(t *testing.T) {
	states := []models.FinancialState{
		{},
		{Income: 1000, TotalExpenses: 5000, TotalEMI: 5000},
		{Income: 100000},
	}
	for _, state := range states {
		rep := Review(state, Assessment{})
		if rep.Confidence < 0 || rep.Confidence > 1 {
			t.Errorf("confidence out of range for %+v: %f", state, rep.Confidence)
		}
	}
}

func TestReviewIgnoresRiskAssessment(t *testing.T) {
	// Confidence is a property of the inputs only; wildly different risk
	// assessments must not move it.
	state := models.FinancialState{
		Income:        40000,
		TotalExpenses: 45000,
	}

	low := Review(state, Assessment{RiskScore: 0, RiskLevel: LevelLow})
	high := Review(state, Assessment{RiskScore: 100, RiskLevel: LevelHigh})

	if low.Confidence != high.Confidence {
		t.Errorf("confidence depends on risk: %f vs %f", low.Confidence, high.Confidence)
	}
	if low.Confidence != 0.7 {
		t.Errorf("expected 0.7 (expenses exceed income), got %f", low.Confidence)
	}
}
