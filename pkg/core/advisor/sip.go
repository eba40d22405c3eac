package advisor

import (
	"math"

	"finance_advisor/pkg/models"
)

// Investable share of monthly savings, depending on whether the
// emergency fund target is already met.
const (
	investShareFunded   = 0.5
	investShareUnfunded = 0.3
)

// ELSS is only suggested above this investable amount, and its monthly
// contribution is capped at the ₹1.5L/year Section 80C limit.
const (
	elssMinInvestable = 5000
	elssRate          = 0.15
	elssMonthlyCap    = 12500
)

// SIPAllocation is one bucket of the monthly investment split.
type SIPAllocation struct {
	Type             string   `json:"type"`
	Amount           float64  `json:"amount"`
	Percentage       float64  `json:"percentage"`
	RecommendedFunds []string `json:"recommended_funds"`
	Explanation      string   `json:"explanation"`
}

// SIPPlan is the market-aware investment recommendation.
type SIPPlan struct {
	MarketCondition              MarketCondition `json:"market_condition"`
	MarketSentiment              string          `json:"market_sentiment"`
	RecommendedMonthlyInvestment float64         `json:"recommended_monthly_investment"`
	Allocations                  []SIPAllocation `json:"sip_allocations"`
	StrategyExplanation          string          `json:"strategy_explanation"`
	BeginnerTips                 []string        `json:"beginner_tips"`
	MarketInsights               MarketSnapshot  `json:"market_insights"`
}

// SIPAdvisor suggests SIP plans using market conditions from its source.
type SIPAdvisor struct {
	market MarketSource
}

// NewSIPAdvisor creates an advisor. A nil source gets the simulated
// market with its fixed categorical distribution.
func NewSIPAdvisor(market MarketSource) *SIPAdvisor {
	if market == nil {
		market = NewSimulatedMarket(nil)
	}
	return &SIPAdvisor{market: market}
}

// SuggestPlan builds a SIP plan from the financial state, the resolved
// user profile and the current market snapshot. The investable amount is
// 50% of monthly savings once the 6-month emergency target is met, 30%
// before that.
func (a *SIPAdvisor) SuggestPlan(state models.FinancialState, userCtx *models.UserContext) SIPPlan {
	market := a.market.Snapshot()
	profile := userCtx.Resolve(state)

	monthlySavings := state.MonthlySavings()
	targetEmergency := state.TotalExpenses * emergencyTargetMonths

	share := investShareUnfunded
	if state.EmergencyFund >= targetEmergency {
		share = investShareFunded
	}
	investable := monthlySavings * share
	if investable < 0 {
		investable = 0
	}

	return SIPPlan{
		MarketCondition:              market.Condition,
		MarketSentiment:              market.Sentiment,
		RecommendedMonthlyInvestment: math.Round(investable),
		Allocations:                  calculateAllocations(investable, profile, market.Condition),
		StrategyExplanation:          explainStrategy(market, profile.InvestmentExperience),
		BeginnerTips:                 beginnerTips(profile.InvestmentExperience),
		MarketInsights:               market,
	}
}

// calculateAllocations splits the investable amount across equity, hybrid
// and debt buckets, then layers an ELSS bucket on top when the amount
// justifies it.
func calculateAllocations(total float64, profile models.UserContext, condition MarketCondition) []SIPAllocation {
	var equityPct, debtPct, hybridPct float64
	switch profile.RiskTolerance {
	case models.RiskAggressive:
		equityPct, debtPct, hybridPct = 0.7, 0.2, 0.1
	case models.RiskConservative:
		equityPct, debtPct, hybridPct = 0.3, 0.5, 0.2
	default:
		equityPct, debtPct, hybridPct = 0.5, 0.3, 0.2
	}

	// Market adjustment: bear trims equity by 20% relatively and parks
	// the cut in safer buckets; bull lifts equity 10% but never past 80%.
	switch condition {
	case MarketBear:
		equityPct *= 0.8
		debtPct += 0.1
		hybridPct += 0.1
	case MarketBull:
		equityPct = math.Min(equityPct*1.1, 0.8)
	}

	// Beginners get the same defensive shift regardless of market.
	if profile.InvestmentExperience == models.ExperienceBeginner {
		equityPct *= 0.8
		debtPct += 0.1
		hybridPct += 0.1
	}

	experience := profile.InvestmentExperience
	allocations := []SIPAllocation{}

	if amount := math.Round(total * equityPct); amount > 0 {
		allocations = append(allocations, SIPAllocation{
			Type:             "Equity Mutual Funds (SIP)",
			Amount:           amount,
			Percentage:       round1(equityPct * 100),
			RecommendedFunds: fundRecommendations("equity", experience),
			Explanation:      "Long-term wealth creation. Higher risk, higher returns.",
		})
	}

	if amount := math.Round(total * hybridPct); amount > 0 {
		allocations = append(allocations, SIPAllocation{
			Type:             "Hybrid/Balanced Funds (SIP)",
			Amount:           amount,
			Percentage:       round1(hybridPct * 100),
			RecommendedFunds: fundRecommendations("hybrid", experience),
			Explanation:      "Balanced risk-return. Good for moderate investors.",
		})
	}

	if amount := math.Round(total * debtPct); amount > 0 {
		allocations = append(allocations, SIPAllocation{
			Type:             "Debt Funds (SIP)",
			Amount:           amount,
			Percentage:       round1(debtPct * 100),
			RecommendedFunds: fundRecommendations("debt", experience),
			Explanation:      "Stable returns with lower risk. Capital preservation.",
		})
	}

	if total > elssMinInvestable {
		elssAmount := math.Min(math.Round(total*elssRate), elssMonthlyCap)
		if elssAmount > 0 {
			allocations = append(allocations, SIPAllocation{
				Type:             "ELSS (Tax Saving) - SIP",
				Amount:           elssAmount,
				Percentage:       round1(elssAmount / total * 100),
				RecommendedFunds: fundRecommendations("elss", experience),
				Explanation:      "Tax deduction under Section 80C. Lock-in period: 3 years.",
			})
		}
	}

	return allocations
}

func fundRecommendations(fundType, experience string) []string {
	switch fundType {
	case "equity":
		if experience == models.ExperienceBeginner {
			return []string{
				"Large Cap Index Funds (Nifty 50)",
				"Large Cap Active Funds (Top performers)",
				"Multi Cap Funds (Diversified)",
			}
		}
		return []string{
			"Large Cap Funds",
			"Mid Cap Funds (20-30% allocation)",
			"Small Cap Funds (10-15% allocation)",
			"Sectoral Funds (Technology, Banking)",
		}
	case "hybrid":
		return []string{
			"Aggressive Hybrid Funds (65% equity)",
			"Balanced Advantage Funds (Dynamic allocation)",
			"Conservative Hybrid Funds (20% equity)",
		}
	case "debt":
		return []string{
			"Liquid Funds (Emergency fund)",
			"Short Duration Debt Funds",
			"Corporate Bond Funds",
			"Gilt Funds (Government securities)",
		}
	case "elss":
		return []string{
			"Large Cap ELSS Funds",
			"Multi Cap ELSS Funds",
			"Top performing ELSS with 3+ year track record",
		}
	}
	return nil
}

func explainStrategy(market MarketSnapshot, experience string) string {
	var explanation string
	switch market.Condition {
	case MarketBull:
		explanation = "The market is in a bull phase with " + market.Sentiment + " sentiment. " +
			"This is a good time to continue or slightly increase equity SIPs. " +
			"However, don't invest more than you can afford to lose."
	case MarketBear:
		explanation = "Market is in a bear phase. This is actually a good time to start SIPs " +
			"as you'll buy more units at lower prices (rupee cost averaging). " +
			"Focus on large-cap funds and maintain discipline."
	case MarketVolatile:
		explanation = "Market is volatile. This is normal - markets go up and down. " +
			"Continue your SIPs regularly. Volatility is your friend in the long term."
	case MarketStable:
		explanation = "Market is stable. Continue your regular SIPs. " +
			"Consistency is key to wealth creation."
	default:
		explanation = "Continue regular SIP investments."
	}

	if experience == models.ExperienceBeginner {
		explanation += " As a beginner, start with smaller amounts and increase gradually. " +
			"Focus on large-cap and index funds initially."
	}
	return explanation
}

func beginnerTips(experience string) []string {
	if experience != models.ExperienceBeginner {
		return []string{}
	}
	return []string{
		"Start with ₹500-1000 per month SIPs to get comfortable",
		"Choose large-cap or index funds initially (lower risk)",
		"Set up auto-debit for SIPs - discipline is key",
		"Don't check your portfolio daily - review monthly",
		"Invest for at least 5-7 years to see good returns",
		"Don't panic during market downturns - continue SIPs",
		"Increase SIP amount by 10% every year if possible",
		"Diversify across 3-4 funds, not more",
		"Read fund fact sheets before investing",
		"Consider tax-saving ELSS funds for 80C benefits",
	}
}
