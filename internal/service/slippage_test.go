package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qqlabs/market-intel/internal/apperrors"
	"github.com/qqlabs/market-intel/internal/infra/dexscreener"
	"github.com/qqlabs/market-intel/internal/slippage"
)

func pair(chainID, addr string, liquidityUSD float64) dexscreener.Pair {
	return dexscreener.Pair{
		ChainID:     chainID,
		PairAddress: addr,
		Liquidity:   dexscreener.Liquidity{USD: liquidityUSD},
	}
}

func TestSlippage(t *testing.T) {
	t.Parallel()

	t.Run("single pool ladder", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return([]dexscreener.Pair{pair("base", "0xaaa", 10_000)}, nil)

		result, err := svc.Slippage(context.Background(), testToken)
		require.NoError(t, err)
		require.InDelta(t, 2.26, result.Slippage100, 1e-9)
		require.InDelta(t, 16.97, result.Slippage1000, 1e-9)
		require.InDelta(t, 66.97, result.Slippage10000, 1e-9)
		require.Equal(t, int64(10_000), result.LiquidityUSD)
		require.Equal(t, slippage.RecommendationHigh, result.Recommendation)
		require.Equal(t, "0xaaa", result.BestPool)
		require.NotEmpty(t, result.ProcessedAt)
	})

	t.Run("deep pool proceeds", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return([]dexscreener.Pair{pair("base", "0xaaa", 2_000_000)}, nil)

		result, err := svc.Slippage(context.Background(), testToken)
		require.NoError(t, err)
		require.InDelta(t, 0.31, result.Slippage100, 1e-9)
		require.InDelta(t, 0.4, result.Slippage1000, 1e-9)
		require.InDelta(t, 1.29, result.Slippage10000, 1e-9)
		require.Equal(t, slippage.RecommendationProceed, result.Recommendation)
	})

	t.Run("most liquid pool wins", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return([]dexscreener.Pair{
				pair("base", "0xaaa", 50),
				pair("base", "0xbbb", 200),
				pair("base", "0xccc", 75),
			}, nil)

		result, err := svc.Slippage(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, "0xbbb", result.BestPool)
		require.Equal(t, int64(200), result.LiquidityUSD)
	})

	t.Run("other chains are ignored", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return([]dexscreener.Pair{
				pair("ethereum", "0xeth", 900_000),
				pair("base", "0xbase", 10_000),
			}, nil)

		result, err := svc.Slippage(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, "0xbase", result.BestPool)
	})

	t.Run("fetch error is absence", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return(nil, errors.New("aggregator down"))

		result, err := svc.Slippage(context.Background(), testToken)
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrNoLiquidity))
		require.Nil(t, result)
	})

	t.Run("no pairs is absence", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return(nil, nil)

		_, err := svc.Slippage(context.Background(), testToken)
		require.True(t, errors.Is(err, apperrors.ErrNoLiquidity))
	})

	t.Run("no pairs on chain is absence", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return([]dexscreener.Pair{pair("solana", "0xsol", 1_000_000)}, nil)

		_, err := svc.Slippage(context.Background(), testToken)
		require.True(t, errors.Is(err, apperrors.ErrNoLiquidity))
	})

	t.Run("zero liquidity is absence", func(t *testing.T) {
		svc, m := newTestService(t)

		m.pairs.EXPECT().
			TokenPairs(gomock.Any(), testToken).
			Return([]dexscreener.Pair{pair("base", "0xaaa", 0)}, nil)

		_, err := svc.Slippage(context.Background(), testToken)
		require.True(t, errors.Is(err, apperrors.ErrNoLiquidity))
	})
}
