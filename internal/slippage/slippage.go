// Package slippage estimates the price impact of fixed-size trades from pool
// liquidity depth.
//
// The model is a linear constant-product approximation: one side of the pool
// (half the total liquidity) is treated as the available depth, and a trade of
// size T moves the price by T/(side+T), plus a flat fee-tier contribution.
// Curvature beyond the linear term is ignored, so this is an approximation of
// AMM execution, not an exact quote.
package slippage

import "math"

const (
	// FeeTierPct is the flat fee contribution added to every estimate, in percent.
	FeeTierPct = 0.3

	// Trade-size ladder, in units of the quote currency.
	TradeSmall  = 100
	TradeMedium = 1_000
	TradeLarge  = 10_000

	// Risk thresholds, in percent.
	HighRiskPct     = 2.0
	ModerateRiskPct = 1.0
)

// Risk recommendation tags.
const (
	RecommendationProceed  = "PROCEED"
	RecommendationModerate = "MODERATE_RISK"
	RecommendationHigh     = "HIGH_RISK"
)

// Pool is a single liquidity venue for a token as reported by the pair source.
type Pool struct {
	Address      string
	ChainID      string
	LiquidityUSD float64
}

// Estimate is the slippage ladder computed for one pool.
type Estimate struct {
	Slippage100    float64
	Slippage1000   float64
	Slippage10000  float64
	LiquidityUSD   float64
	Recommendation string
	Pool           Pool
}

// BestPool returns the most liquid pool on the given chain. Ties keep the
// first maximum in source order. ok is false when no pool on the chain has
// strictly positive liquidity.
func BestPool(pools []Pool, chainID string) (Pool, bool) {
	var (
		best  Pool
		found bool
	)
	for _, p := range pools {
		if p.ChainID != chainID {
			continue
		}
		if !found || p.LiquidityUSD > best.LiquidityUSD {
			best = p
			found = true
		}
	}
	if !found || best.LiquidityUSD <= 0 {
		return Pool{}, false
	}
	return best, true
}

// Impact returns the total slippage percentage for a trade of the given size
// against the given total pool liquidity, including the fee tier, rounded to
// two decimals.
func Impact(tradeSize, liquidityUSD float64) float64 {
	side := liquidityUSD / 2
	impact := tradeSize / (side + tradeSize) * 100
	return round2(impact + FeeTierPct)
}

// Recommend classifies a computed ladder into a risk tag.
func Recommend(slippage1000, slippage10000 float64) string {
	switch {
	case slippage10000 > HighRiskPct:
		return RecommendationHigh
	case slippage1000 > ModerateRiskPct:
		return RecommendationModerate
	default:
		return RecommendationProceed
	}
}

// FromPool computes the full ladder and recommendation for a pool.
// ok is false when the pool has no positive liquidity.
func FromPool(p Pool) (Estimate, bool) {
	if p.LiquidityUSD <= 0 {
		return Estimate{}, false
	}
	e := Estimate{
		Slippage100:   Impact(TradeSmall, p.LiquidityUSD),
		Slippage1000:  Impact(TradeMedium, p.LiquidityUSD),
		Slippage10000: Impact(TradeLarge, p.LiquidityUSD),
		LiquidityUSD:  p.LiquidityUSD,
		Pool:          p,
	}
	e.Recommendation = Recommend(e.Slippage1000, e.Slippage10000)
	return e, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
