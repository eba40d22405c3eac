package prompt

import (
	"strings"
	"testing"
)

func TestRegisterAndRender(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Template{
		ID:       "test.greeting",
		Category: "test",
		Text:     "Hello {{.Name}}",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	out, err := r.Render("test.greeting", struct{ Name string }{"advisor"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "Hello advisor" {
		t.Errorf("unexpected render: %q", out)
	}
}

func TestRenderUnknownID(t *testing.T) {
	if _, err := NewRegistry().Render("missing", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	if err := NewRegistry().Register(&Template{Text: "x"}); err == nil {
		t.Error("expected error for empty ID")
	}
}

func TestAdviceRegistryCoversAllQuestionTypes(t *testing.T) {
	r := NewAdviceRegistry()

	if r.Count() != len(QuestionTypes) {
		t.Errorf("expected %d templates, got %d", len(QuestionTypes), r.Count())
	}
	if ids := r.ListByCategory(CategoryAdvice); len(ids) != len(QuestionTypes) {
		t.Errorf("expected %d advice templates, got %v", len(QuestionTypes), ids)
	}

	data := struct {
		Age                                          int
		Income, TotalExpenses, EmergencyFund, TotalEMI float64
		SavingsRatePct                               float64
		GoalSummary, QuestionType                    string
	}{30, 50000, 30000, 10000, 5000, 40.0, "Not specified", "savings"}

	for _, questionType := range QuestionTypes {
		out, err := r.Render(AdviceID(questionType), data)
		if err != nil {
			t.Fatalf("render %s: %v", questionType, err)
		}
		if !strings.Contains(out, "Monthly Income: ₹50000") {
			t.Errorf("%s: prompt missing income line:\n%s", questionType, out)
		}
		if !strings.Contains(out, "professional financial advisor") {
			t.Errorf("%s: prompt missing role preamble", questionType)
		}
	}
}
