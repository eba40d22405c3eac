package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"finance_advisor/pkg/core/advice"
	"finance_advisor/pkg/core/advisor"
	"finance_advisor/pkg/core/cache"
	"finance_advisor/pkg/core/llm"
	"finance_advisor/pkg/core/risk"
	"finance_advisor/pkg/core/store"
	"finance_advisor/pkg/models"
)

// Config is the advisor process configuration, read from config/advisor.yaml.
type Config struct {
	LLM       llm.Config `yaml:"llm"`
	RedisAddr string     `yaml:"redis_addr"`
	CacheTTL  string     `yaml:"cache_ttl"`
}

func loadConfig(path string) Config {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: config %s not found, using defaults", path)
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Warning: failed to parse %s: %v", path, err)
	}
	return cfg
}

// demoState is used when no database is configured, so the pipeline can
// be exercised end to end locally.
func demoState() models.FinancialState {
	return models.FinancialState{
		Income:               50000,
		TotalExpenses:        30000,
		TotalEMI:             25000,
		EmergencyFund:        10000,
		Age:                  30,
		RiskTolerance:        models.RiskModerate,
		InvestmentExperience: models.ExperienceBeginner,
		FinancialGoals:       "Emergency fund, retirement",
	}
}

func demoExpenses() models.ExpenseBreakdown {
	return models.ExpenseBreakdown{
		"Rent":          15000,
		"Food":          8000,
		"Transport":     4000,
		"Entertainment": 3000,
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	configPath := flag.String("config", "config/advisor.yaml", "path to config file")
	userID := flag.String("user", "", "load profile for this user ID from the database")
	month := flag.String("month", time.Now().UTC().Format("2006-01"), "month for the budget plan")
	question := flag.String("question", "general", "advice question type")
	flag.Parse()

	cfg := loadConfig(*configPath)
	ctx := context.Background()

	// 1. Load the financial state.
	state := demoState()
	expenses := demoExpenses()
	if *userID != "" {
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Error: database init failed: %v", err)
		}
		defer store.Close()

		repo := store.NewProfileRepo(store.GetPool())
		loaded, err := repo.FinancialState(ctx, *userID)
		if err != nil {
			log.Fatalf("Error: load profile for %s: %v", *userID, err)
		}
		state = loaded

		if breakdown, err := repo.ExpenseBreakdown(ctx, *userID, *month); err != nil {
			log.Printf("Warning: load expenses: %v", err)
		} else if len(breakdown) > 0 {
			expenses = breakdown
			state.TotalExpenses = breakdown.Total()
		}
	}
	state.Normalize()

	fmt.Println("💰 Financial Health Advisor")
	fmt.Printf("Income: ₹%.0f | Expenses: ₹%.0f | EMI: ₹%.0f | Emergency Fund: ₹%.0f\n\n",
		state.Income, state.TotalExpenses, state.TotalEMI, state.EmergencyFund)

	// 2. Risk assessment and confidence review.
	assessment := risk.Analyze(state)
	report := risk.Review(state, assessment)

	fmt.Printf("Risk Score: %d/100 (%s)\n", assessment.RiskScore, assessment.RiskLevel)
	for _, reason := range assessment.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	fmt.Printf("Confidence: %.2f\n", report.Confidence)
	for _, warning := range report.Warnings {
		fmt.Printf("  ! %s\n", warning)
	}
	fmt.Println()

	// 3. Budget cuts, gated on confidence.
	budget := advisor.SuggestBudgetCuts(expenses, report.Confidence)
	fmt.Printf("Budget Plan: %s\n", budget.Status)
	for _, s := range budget.Suggestions {
		fmt.Printf("  - %s\n", s.Message)
	}
	if budget.Status == advisor.StatusSuggested {
		fmt.Printf("  Total potential savings: ₹%.2f/month\n", budget.TotalPotentialSavings)
	}
	fmt.Println()

	// 4. Emergency fund and goal timelines.
	future := advisor.PlanFuture(state, []models.Goal{
		{Name: "Retirement corpus", Amount: 5000000},
	})
	fmt.Printf("Future Plan: %s\n", future.Status)
	if future.Status == advisor.StatusPlanned {
		fmt.Printf("  Emergency fund: ₹%.0f of ₹%.0f (%.1f months to target)\n",
			future.EmergencyFund.Current, future.EmergencyFund.Target, future.EmergencyFund.MonthsToReach)
		for _, g := range future.Goals {
			fmt.Printf("  Goal %s: ₹%.0f/month for %.1f months\n",
				g.Goal, g.MonthlyContribution, g.MonthsToReach)
		}
	} else if future.Reason != "" {
		fmt.Printf("  %s\n", future.Reason)
	}
	fmt.Println()

	// 5. Market-aware SIP plan.
	sipAdvisor := advisor.NewSIPAdvisor(nil)
	sip := sipAdvisor.SuggestPlan(state, nil)
	fmt.Printf("SIP Plan (market: %s): ₹%.0f investable\n", sip.MarketCondition, sip.RecommendedMonthlyInvestment)
	for _, alloc := range sip.Allocations {
		fmt.Printf("  - %s: ₹%.0f\n", alloc.Type, alloc.Amount)
	}
	fmt.Println()

	// 6. Monthly recommendations.
	plan := advisor.BuildMonthlyPlan(state, expenses, *month)
	fmt.Printf("Monthly Plan %s (%d recommendations, %d actions)\n",
		plan.Month, len(plan.Recommendations), len(plan.ActionItems))
	for _, rec := range plan.Recommendations {
		fmt.Printf("  [%s] %s: %s\n", rec.Priority, rec.Title, rec.Action)
	}
	fmt.Println()

	// 7. Advice text, with optional Redis-backed cache.
	provider := llm.NewFromConfig(cfg.LLM)

	opts := []advice.Option{}
	if cfg.RedisAddr != "" {
		ttl := time.Hour
		if parsed, err := time.ParseDuration(cfg.CacheTTL); err == nil && parsed > 0 {
			ttl = parsed
		}
		opts = append(opts, advice.WithCache(cache.NewRedisCache(cfg.RedisAddr), ttl))
	}
	assembler := advice.NewAdvisor(provider, opts...)

	fmt.Printf("Advice (%s, via %s):\n%s\n", *question, provider.Name(),
		assembler.GetAdvice(ctx, state, *question))
}
