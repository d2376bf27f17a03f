package service

import (
	"context"
	"math"
	"time"

	"github.com/qqlabs/market-intel/internal/apperrors"
	"github.com/qqlabs/market-intel/internal/service/dto"
	"github.com/qqlabs/market-intel/internal/slippage"
)

// Slippage estimates the price-impact ladder for the token on the configured
// chain, using the most liquid pool reported by the pair source.
//
// Any pair-source failure, empty pair set, or zero-liquidity best pool
// collapses into apperrors.ErrNoLiquidity. No retries: a single failed
// attempt is final for the invocation.
func (s *AnalyzerService) Slippage(ctx context.Context, token string) (*dto.SlippageResult, error) {
	pairs, err := s.pairs.TokenPairs(ctx, token)
	if err != nil {
		s.log.Debug().Err(err).Str("token", token).Msg("pair lookup failed")
		return nil, apperrors.ErrNoLiquidity
	}

	pools := make([]slippage.Pool, 0, len(pairs))
	for _, p := range pairs {
		pools = append(pools, slippage.Pool{
			Address:      p.PairAddress,
			ChainID:      p.ChainID,
			LiquidityUSD: p.Liquidity.USD,
		})
	}

	best, ok := slippage.BestPool(pools, s.chainID)
	if !ok {
		return nil, apperrors.ErrNoLiquidity
	}
	est, ok := slippage.FromPool(best)
	if !ok {
		return nil, apperrors.ErrNoLiquidity
	}

	return &dto.SlippageResult{
		Slippage100:    est.Slippage100,
		Slippage1000:   est.Slippage1000,
		Slippage10000:  est.Slippage10000,
		LiquidityUSD:   int64(math.Round(est.LiquidityUSD)),
		Recommendation: est.Recommendation,
		BestPool:       best.Address,
		ProcessedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}
