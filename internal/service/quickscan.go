package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/qqlabs/market-intel/internal/infra/goplus"
	"github.com/qqlabs/market-intel/internal/service/dto"
)

// Trust scoring weights and bands.
const (
	maxTrustScore = 100

	honeypotPenalty     = 80
	blacklistPenalty    = 40
	closedSourcePenalty = 15
	proxyPenalty        = 10
	mintablePenalty     = 10
	taxPenalty          = 15

	// excessiveTaxPct is the buy/sell tax above which the tax penalty applies.
	excessiveTaxPct = 10.0

	avoidBelow   = 40
	cautionBelow = 70
)

// QuickScan fetches the token security report and condenses it into a trust
// score with a recommendation.
func (s *AnalyzerService) QuickScan(ctx context.Context, token string) (*dto.QuickScanResult, error) {
	sec, err := s.security.TokenSecurity(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "s.security.TokenSecurity")
	}

	score, _ := trustScore(sec)
	return &dto.QuickScanResult{
		TrustScore:     score,
		IsHoneypot:     sec.IsHoneypot,
		IsBlacklisted:  sec.IsBlacklisted,
		Recommendation: scanRecommendation(sec, score),
		ProcessedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// trustScore derives a 0-100 score from the report's risk flags, along with
// the list of triggered risks.
func trustScore(sec *goplus.TokenSecurity) (int, []string) {
	score := maxTrustScore
	risks := []string{}

	if sec.IsHoneypot {
		score -= honeypotPenalty
		risks = append(risks, "honeypot")
	}
	if sec.IsBlacklisted {
		score -= blacklistPenalty
		risks = append(risks, "blacklisted")
	}
	if !sec.IsOpenSource {
		score -= closedSourcePenalty
		risks = append(risks, "closed_source")
	}
	if sec.IsProxy {
		score -= proxyPenalty
		risks = append(risks, "proxy_contract")
	}
	if sec.IsMintable {
		score -= mintablePenalty
		risks = append(risks, "mintable")
	}
	if sec.BuyTaxPct > excessiveTaxPct {
		score -= taxPenalty
		risks = append(risks, "high_buy_tax")
	}
	if sec.SellTaxPct > excessiveTaxPct {
		score -= taxPenalty
		risks = append(risks, "high_sell_tax")
	}

	if score < 0 {
		score = 0
	}
	return score, risks
}

func scanRecommendation(sec *goplus.TokenSecurity, score int) string {
	switch {
	case sec.IsHoneypot || sec.IsBlacklisted || score < avoidBelow:
		return RecommendationAvoid
	case score < cautionBelow:
		return RecommendationCaution
	default:
		return RecommendationProceed
	}
}
