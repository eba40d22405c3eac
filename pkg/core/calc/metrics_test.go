package calc

import (
	"math"
	"testing"
)

func TestSavingsRatio(t *testing.T) {
	// (50000 - 30000) / 50000 = 0.4
	if got := SavingsRatio(50000, 30000); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("expected 0.4, got %f", got)
	}

	// Zero income short-circuits before the division.
	if got := SavingsRatio(0, 1000); got != 0 {
		t.Errorf("expected 0 for zero income, got %f", got)
	}

	// Expenses above income clamp to 0 rather than going negative.
	if got := SavingsRatio(40000, 45000); got != 0 {
		t.Errorf("expected clamp to 0, got %f", got)
	}

	// Spending nothing saves everything.
	if got := SavingsRatio(10000, 0); got != 1 {
		t.Errorf("expected 1, got %f", got)
	}
}

func TestEMIRatio(t *testing.T) {
	// 25000 / 50000 = 0.5
	if got := EMIRatio(50000, 25000); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected 0.5, got %f", got)
	}

	// Zero income is treated as full burden regardless of EMI.
	if got := EMIRatio(0, 0); got != 1 {
		t.Errorf("expected 1 for zero income, got %f", got)
	}
	if got := EMIRatio(0, 99999); got != 1 {
		t.Errorf("expected 1 for zero income, got %f", got)
	}

	// Unbounded above when EMI exceeds income.
	if got := EMIRatio(10000, 15000); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("expected 1.5, got %f", got)
	}
}

func TestEmergencyRunway(t *testing.T) {
	// 10000 / 30000 = 0.333... months
	if got := EmergencyRunway(10000, 30000); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("expected ~0.333, got %f", got)
	}

	// No fund means zero runway.
	if got := EmergencyRunway(0, 30000); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}

	// No expenses means the fund never runs out.
	if got := EmergencyRunway(5000, 0); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %f", got)
	}
	if got := EmergencyRunway(0, 0); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf even with empty fund, got %f", got)
	}
}
