package advice

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"time"

	"finance_advisor/pkg/core/cache"
	"finance_advisor/pkg/core/llm"
	"finance_advisor/pkg/core/prompt"
	"finance_advisor/pkg/core/utils"
	"finance_advisor/pkg/models"
)

// Question types the assembler understands.
const (
	QuestionInvestment = "investment"
	QuestionSavings    = "savings"
	QuestionDebt       = "debt"
	QuestionPlanning   = "planning"
	QuestionGeneral    = "general"
)

// Responses shorter than this after cleanup are treated as a failed
// generation.
const minAdviceLength = 10

// Advisor assembles advice text. It holds exactly one provider, chosen
// at process start; per-call dispatch never changes backends.
type Advisor struct {
	provider llm.Provider
	registry *prompt.Registry
	cache    cache.Cache
	cacheTTL time.Duration
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithCache adds an advice cache. Only successful backend responses are
// cached; fallback text is cheap to recompute.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(a *Advisor) {
		a.cache = c
		a.cacheTTL = ttl
	}
}

// NewAdvisor creates an assembler around the given provider. A nil
// provider degrades to the null backend, meaning every call lands on the
// rule-based fallback.
func NewAdvisor(provider llm.Provider, opts ...Option) *Advisor {
	if provider == nil {
		provider = llm.NullProvider{}
	}
	a := &Advisor{
		provider: provider,
		registry: prompt.NewAdviceRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GetAdvice produces advice for a state snapshot and question type. The
// result is never empty: any backend failure, including a response under
// the minimum length, is absorbed by the deterministic fallback.
func (a *Advisor) GetAdvice(ctx context.Context, state models.FinancialState, questionType string) string {
	return a.AdviseContext(ctx, NewContext(state, nil), questionType)
}

// GetAdviceWithGoals is GetAdvice with the caller's goals folded into
// the prompt context.
func (a *Advisor) GetAdviceWithGoals(ctx context.Context, state models.FinancialState, goals []models.Goal, questionType string) string {
	return a.AdviseContext(ctx, NewContext(state, goals), questionType)
}

// AdviseContext is the core entry point for callers that build their own
// prompt context.
func (a *Advisor) AdviseContext(ctx context.Context, actx Context, questionType string) string {
	questionType = normalizeQuestionType(questionType)
	actx.QuestionType = questionType

	key := cacheKey(actx, questionType)
	if a.cache != nil {
		if cached, ok := a.cache.Get(ctx, key); ok {
			return cached
		}
	}

	response := a.generate(ctx, actx, questionType)
	if len(response) < minAdviceLength {
		return RuleBasedAdvice(actx, questionType)
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, key, response, a.cacheTTL); err != nil {
			log.Printf("advice: cache write failed: %v", err)
		}
	}
	return response
}

// generate performs the single backend call. Every failure mode
// collapses to an empty string here so the caller applies one uniform
// fallback rule.
func (a *Advisor) generate(ctx context.Context, actx Context, questionType string) string {
	promptText, err := a.registry.Render(prompt.AdviceID(questionType), actx)
	if err != nil {
		log.Printf("advice: render prompt for %s: %v", questionType, err)
		return ""
	}

	raw, err := a.provider.Generate(ctx, promptText)
	if err != nil {
		log.Printf("advice: %s backend failed: %v", a.provider.Name(), err)
		return ""
	}

	return utils.CleanAdviceText(raw)
}

// BuildPrompt renders the prompt that would be sent for a state and
// question type. Exposed for callers that want to inspect or log it.
func (a *Advisor) BuildPrompt(state models.FinancialState, questionType string) (string, error) {
	questionType = normalizeQuestionType(questionType)
	actx := NewContext(state, nil)
	actx.QuestionType = questionType
	return a.registry.Render(prompt.AdviceID(questionType), actx)
}

func normalizeQuestionType(questionType string) string {
	switch questionType {
	case QuestionInvestment, QuestionSavings, QuestionDebt, QuestionPlanning, QuestionGeneral:
		return questionType
	default:
		return QuestionGeneral
	}
}

func cacheKey(actx Context, questionType string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%.2f|%.2f|%.2f|%.2f|%s",
		questionType, actx.Age, actx.Income, actx.TotalExpenses,
		actx.EmergencyFund, actx.TotalEMI, actx.GoalSummary)))
	return fmt.Sprintf("advice:%x", sum[:16])
}
