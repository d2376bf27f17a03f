package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/qqlabs/market-intel/internal/apperrors"
	"github.com/qqlabs/market-intel/internal/infra/goplus"
	"github.com/qqlabs/market-intel/internal/service/dto"
	"github.com/qqlabs/market-intel/internal/slippage"
)

// DeepDive runs the security scan and the slippage estimate concurrently and
// folds them into a single verdict. The security leg is required; a missing
// liquidity result marks the token illiquid instead of failing the job.
func (s *AnalyzerService) DeepDive(ctx context.Context, token string) (*dto.DeepDiveResult, error) {
	var (
		sec *goplus.TokenSecurity
		est *dto.SlippageResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.security.TokenSecurity(gctx, token)
		if err != nil {
			return errors.Wrap(err, "s.security.TokenSecurity")
		}
		sec = v
		return nil
	})
	g.Go(func() error {
		v, err := s.Slippage(gctx, token)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoLiquidity) {
				return nil
			}
			return err
		}
		est = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	score, risks := trustScore(sec)
	liquid := est != nil && est.Recommendation != slippage.RecommendationHigh

	out := &dto.DeepDiveResult{
		Security: dto.SecuritySection{
			TrustScore: score,
			Risks:      risks,
		},
		Liquidity: dto.LiquiditySection{
			IsLiquid: liquid,
		},
		Recommendation: deepDiveRecommendation(scanRecommendation(sec, score), liquid),
		ProcessedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if est != nil {
		out.Liquidity.Slippage100 = &est.Slippage100
	}
	return out, nil
}

func deepDiveRecommendation(securityRec string, liquid bool) string {
	switch {
	case securityRec == RecommendationAvoid:
		return RecommendationAvoid
	case securityRec == RecommendationProceed && liquid:
		return RecommendationBuy
	default:
		return RecommendationCaution
	}
}
