package advice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finance_advisor/pkg/core/cache"
	"finance_advisor/pkg/models"
)

// scriptedProvider returns a fixed response (or error) and counts calls.
type scriptedProvider struct {
	response string
	err      error
	calls    int
}

func (s *scriptedProvider) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *scriptedProvider) Name() string { return "scripted" }

func healthyState() models.FinancialState {
	return models.FinancialState{
		Income:        50000,
		TotalExpenses: 30000,
		TotalEMI:      10000,
		EmergencyFund: 150000,
		Age:           32,
	}
}

func TestGetAdviceUsesBackendResponse(t *testing.T) {
	p := &scriptedProvider{response: "Consider increasing your SIP contributions this quarter."}
	a := NewAdvisor(p)

	got := a.GetAdvice(context.Background(), healthyState(), QuestionInvestment)
	if got != p.response {
		t.Errorf("expected backend response, got %q", got)
	}
	if p.calls != 1 {
		t.Errorf("expected exactly one backend call, got %d", p.calls)
	}
}

func TestGetAdviceFallsBackOnError(t *testing.T) {
	p := &scriptedProvider{err: errors.New("connection refused")}
	a := NewAdvisor(p)

	state := healthyState()
	got := a.GetAdvice(context.Background(), state, QuestionInvestment)

	// Savings are 20000/month, so the investment rule fires.
	if !strings.Contains(got, "₹20000") {
		t.Errorf("expected rule-based investment advice, got %q", got)
	}
}

func TestGetAdviceFallsBackOnShortResponse(t *testing.T) {
	// Nine characters after cleanup is below the minimum.
	p := &scriptedProvider{response: "Save more"}
	a := NewAdvisor(p)

	got := a.GetAdvice(context.Background(), healthyState(), QuestionDebt)
	if got == "Save more" {
		t.Error("short response should have been replaced by fallback")
	}
	if !strings.Contains(got, "EMI burden is manageable") {
		t.Errorf("expected debt fallback, got %q", got)
	}
}

func TestNewAdvisorNilProviderFallsBack(t *testing.T) {
	a := NewAdvisor(nil)

	got := a.GetAdvice(context.Background(), healthyState(), QuestionGeneral)
	if !strings.Contains(got, "Good savings rate") {
		t.Errorf("expected general fallback for positive savings, got %q", got)
	}
}

func TestGetAdviceNeverEmpty(t *testing.T) {
	states := []models.FinancialState{
		healthyState(),
		{}, // all zero
		{Income: 30000, TotalExpenses: 45000},
	}
	types := []string{
		QuestionInvestment, QuestionSavings, QuestionDebt,
		QuestionPlanning, QuestionGeneral, "unknown", "",
	}

	a := NewAdvisor(&scriptedProvider{err: errors.New("down")})
	for _, state := range states {
		for _, qt := range types {
			got := a.GetAdvice(context.Background(), state, qt)
			if strings.TrimSpace(got) == "" {
				t.Errorf("empty advice for state %+v type %q", state, qt)
			}
		}
	}
}

func TestGetAdviceCachesBackendResponses(t *testing.T) {
	p := &scriptedProvider{response: "Allocate a portion of savings to an index fund each month."}
	a := NewAdvisor(p, WithCache(cache.NewMemoryCache(), time.Minute))

	state := healthyState()
	first := a.GetAdvice(context.Background(), state, QuestionSavings)
	second := a.GetAdvice(context.Background(), state, QuestionSavings)

	if first != second {
		t.Errorf("cache hit should return identical text: %q vs %q", first, second)
	}
	if p.calls != 1 {
		t.Errorf("expected one backend call with cache, got %d", p.calls)
	}

	// A different question type misses the cache.
	a.GetAdvice(context.Background(), state, QuestionDebt)
	if p.calls != 2 {
		t.Errorf("expected cache miss for new question type, got %d calls", p.calls)
	}
}

func TestGetAdviceDoesNotCacheFallback(t *testing.T) {
	p := &scriptedProvider{err: errors.New("down")}
	a := NewAdvisor(p, WithCache(cache.NewMemoryCache(), time.Minute))

	state := healthyState()
	a.GetAdvice(context.Background(), state, QuestionGeneral)
	a.GetAdvice(context.Background(), state, QuestionGeneral)

	if p.calls != 2 {
		t.Errorf("fallback must not be cached; expected 2 backend calls, got %d", p.calls)
	}
}

func TestGetAdviceStripsCodeFences(t *testing.T) {
	p := &scriptedProvider{response: "```markdown\nStart a monthly SIP of ₹10,000 in index funds.\n```"}
	a := NewAdvisor(p)

	got := a.GetAdvice(context.Background(), healthyState(), QuestionInvestment)
	if strings.Contains(got, "```") {
		t.Errorf("fences should be stripped, got %q", got)
	}
	if !strings.HasPrefix(got, "Start a monthly SIP") {
		t.Errorf("unexpected cleaned text %q", got)
	}
}

func TestBuildPromptIncludesProfile(t *testing.T) {
	a := NewAdvisor(nil)

	prompt, err := a.BuildPrompt(healthyState(), QuestionInvestment)
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	for _, want := range []string{
		"₹50000",
		"Question Type: investment",
		"Age: 32",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGetAdviceWithGoals(t *testing.T) {
	a := NewAdvisor(nil)
	goals := []models.Goal{{Name: "House down payment", Amount: 1500000}}

	// Fallback path still works with goals supplied.
	got := a.GetAdviceWithGoals(context.Background(), healthyState(), goals, QuestionPlanning)
	if strings.TrimSpace(got) == "" {
		t.Error("expected non-empty advice with goals")
	}
}
