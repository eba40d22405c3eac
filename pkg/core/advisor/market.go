package advisor

import (
	"math/rand"
	"time"
)

// MarketCondition is the simulated state of the equity market.
type MarketCondition string

const (
	MarketBull     MarketCondition = "bull"
	MarketBear     MarketCondition = "bear"
	MarketVolatile MarketCondition = "volatile"
	MarketStable   MarketCondition = "stable"
)

// MarketSnapshot describes current market conditions along with the
// strategy appropriate for them.
type MarketSnapshot struct {
	Condition           MarketCondition `json:"condition"`
	IndexLevel          int             `json:"nifty_level"`
	Sentiment           string          `json:"sentiment"`
	Volatility          string          `json:"volatility"`
	RecommendedStrategy string          `json:"recommended_strategy"`
}

// MarketSource supplies market snapshots. Production uses the simulated
// source; tests inject a fixed one to pin the condition.
type MarketSource interface {
	Snapshot() MarketSnapshot
}

// SimulatedMarket draws conditions from a fixed categorical distribution:
// bull 30%, bear 20%, volatile 30%, stable 20%. A real market data feed
// could replace it behind the same interface.
type SimulatedMarket struct {
	rnd *rand.Rand
}

// NewSimulatedMarket creates a simulated source. A nil rnd gets a
// time-seeded generator.
func NewSimulatedMarket(rnd *rand.Rand) *SimulatedMarket {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedMarket{rnd: rnd}
}

// Snapshot draws a market condition and derives the dependent fields.
func (m *SimulatedMarket) Snapshot() MarketSnapshot {
	var condition MarketCondition
	switch roll := m.rnd.Float64(); {
	case roll < 0.3:
		condition = MarketBull
	case roll < 0.5:
		condition = MarketBear
	case roll < 0.8:
		condition = MarketVolatile
	default:
		condition = MarketStable
	}

	return MarketSnapshot{
		Condition:           condition,
		IndexLevel:          18000 + m.rnd.Intn(4001),
		Sentiment:           sentimentFor(condition),
		Volatility:          volatilityFor(condition),
		RecommendedStrategy: strategyFor(condition),
	}
}

// FixedMarket always returns the same snapshot.
type FixedMarket struct {
	S MarketSnapshot
}

// Snapshot returns the pinned snapshot, filling derived fields if only
// the condition was set.
func (m FixedMarket) Snapshot() MarketSnapshot {
	s := m.S
	if s.Sentiment == "" {
		s.Sentiment = sentimentFor(s.Condition)
	}
	if s.Volatility == "" {
		s.Volatility = volatilityFor(s.Condition)
	}
	if s.RecommendedStrategy == "" {
		s.RecommendedStrategy = strategyFor(s.Condition)
	}
	return s
}

func sentimentFor(c MarketCondition) string {
	switch c {
	case MarketBull:
		return "positive"
	case MarketBear:
		return "cautious"
	default:
		return "neutral"
	}
}

func volatilityFor(c MarketCondition) string {
	switch c {
	case MarketVolatile:
		return "high"
	case MarketBear:
		return "medium"
	default:
		return "low"
	}
}

func strategyFor(c MarketCondition) string {
	switch c {
	case MarketBull:
		return "Aggressive growth - Increase equity allocation"
	case MarketBear:
		return "Defensive - Focus on large-cap and debt funds"
	case MarketVolatile:
		return "Balanced approach - Diversify across asset classes"
	case MarketStable:
		return "Steady accumulation - Continue regular SIPs"
	default:
		return "Balanced approach"
	}
}
