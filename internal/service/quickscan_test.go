package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qqlabs/market-intel/internal/infra/goplus"
)

func TestQuickScan(t *testing.T) {
	t.Parallel()

	t.Run("clean token", func(t *testing.T) {
		svc, m := newTestService(t)

		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(&goplus.TokenSecurity{IsOpenSource: true}, nil)

		result, err := svc.QuickScan(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, 100, result.TrustScore)
		require.False(t, result.IsHoneypot)
		require.False(t, result.IsBlacklisted)
		require.Equal(t, RecommendationProceed, result.Recommendation)
		require.NotEmpty(t, result.ProcessedAt)
	})

	t.Run("honeypot is always avoid", func(t *testing.T) {
		svc, m := newTestService(t)

		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(&goplus.TokenSecurity{IsHoneypot: true, IsOpenSource: true}, nil)

		result, err := svc.QuickScan(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, 20, result.TrustScore)
		require.True(t, result.IsHoneypot)
		require.Equal(t, RecommendationAvoid, result.Recommendation)
	})

	t.Run("minor flags stay proceed", func(t *testing.T) {
		svc, m := newTestService(t)

		// Closed source and mintable: 100-15-10 = 75.
		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(&goplus.TokenSecurity{IsMintable: true}, nil)

		result, err := svc.QuickScan(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, 75, result.TrustScore)
		require.Equal(t, RecommendationProceed, result.Recommendation)
	})

	t.Run("stacked flags are caution", func(t *testing.T) {
		svc, m := newTestService(t)

		// Closed source, proxy, mintable: 100-15-10-10 = 65.
		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(&goplus.TokenSecurity{IsProxy: true, IsMintable: true}, nil)

		result, err := svc.QuickScan(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, 65, result.TrustScore)
		require.Equal(t, RecommendationCaution, result.Recommendation)
	})

	t.Run("excessive taxes penalized", func(t *testing.T) {
		svc, m := newTestService(t)

		// Taxes above 10%: 100-15-15 = 70.
		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(&goplus.TokenSecurity{IsOpenSource: true, BuyTaxPct: 12, SellTaxPct: 25}, nil)

		result, err := svc.QuickScan(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, 70, result.TrustScore)
		require.Equal(t, RecommendationProceed, result.Recommendation)
	})

	t.Run("score never negative", func(t *testing.T) {
		svc, m := newTestService(t)

		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(&goplus.TokenSecurity{
				IsHoneypot:    true,
				IsBlacklisted: true,
				IsProxy:       true,
				IsMintable:    true,
				BuyTaxPct:     50,
				SellTaxPct:    50,
			}, nil)

		result, err := svc.QuickScan(context.Background(), testToken)
		require.NoError(t, err)
		require.Equal(t, 0, result.TrustScore)
		require.Equal(t, RecommendationAvoid, result.Recommendation)
	})

	t.Run("security source failure", func(t *testing.T) {
		svc, m := newTestService(t)

		m.security.EXPECT().
			TokenSecurity(gomock.Any(), testToken).
			Return(nil, errors.New("upstream down"))

		_, err := svc.QuickScan(context.Background(), testToken)
		require.Error(t, err)
	})
}
