package prompt

// CategoryAdvice groups the advisory prompts.
const CategoryAdvice = "advice"

// QuestionTypes are the supported advice tags. Anything else should be
// mapped to "general" before rendering.
var QuestionTypes = []string{"investment", "savings", "debt", "planning", "general"}

// AdviceID returns the registry ID for a question type.
func AdviceID(questionType string) string {
	return "advice." + questionType
}

// adviceBody is shared by every question type; the type itself is part of
// the rendered data so the model knows what is being asked.
const adviceBody = `You are a professional financial advisor. Provide concise, actionable financial advice.

User Profile:
- Age: {{.Age}}
- Monthly Income: ₹{{printf "%.0f" .Income}}
- Monthly Expenses: ₹{{printf "%.0f" .TotalExpenses}}
- Emergency Fund: ₹{{printf "%.0f" .EmergencyFund}}
- Total EMI: ₹{{printf "%.0f" .TotalEMI}}
- Savings Rate: {{printf "%.1f" .SavingsRatePct}}%
- Financial Goals: {{.GoalSummary}}

Question Type: {{.QuestionType}}

Provide specific, practical advice in 2-3 short paragraphs. Focus on:
1. Immediate actionable steps
2. Risk assessment
3. Long-term planning suggestions

Advice:`

// NewAdviceRegistry builds a registry with one template per question
// type. Registration of built-in templates cannot fail, so errors here
// would mean a broken binary and panic accordingly.
func NewAdviceRegistry() *Registry {
	r := NewRegistry()
	for _, questionType := range QuestionTypes {
		err := r.Register(&Template{
			ID:       AdviceID(questionType),
			Category: CategoryAdvice,
			Text:     adviceBody,
		})
		if err != nil {
			panic(err)
		}
	}
	return r
}
