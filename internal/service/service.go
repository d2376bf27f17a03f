package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/qqlabs/market-intel/internal/infra/acp"
	"github.com/qqlabs/market-intel/internal/infra/dexscreener"
	"github.com/qqlabs/market-intel/internal/infra/goplus"
	"github.com/qqlabs/market-intel/internal/service/dto"
)

// Service ids offered on the marketplace.
const (
	ServiceQuickScan = "quick-scan"
	ServiceSlippage  = "slippage-calculator"
	ServiceDeepDive  = "full-deep-dive"
)

// Recommendation tags shared by the analyses.
const (
	RecommendationProceed = "PROCEED"
	RecommendationCaution = "CAUTION"
	RecommendationAvoid   = "AVOID"
	RecommendationBuy     = "BUY"
)

// Service represents interface for business logic.
type Service interface {
	// Process verifies escrow payment for the job and runs the purchased
	// analysis, returning the deliverable value.
	Process(ctx context.Context, req dto.JobRequest) (any, error)
}

// AnalyzerService represents struct for business logic.
type AnalyzerService struct {
	payments acp.Client
	pairs    dexscreener.Client
	security goplus.Client

	chainID string
	log     zerolog.Logger
}

// NewAnalyzerService creates AnalyzerService.
func NewAnalyzerService(
	payments acp.Client,
	pairs dexscreener.Client,
	security goplus.Client,
	chainID string,
	log zerolog.Logger,
) *AnalyzerService {
	return &AnalyzerService{
		payments: payments,
		pairs:    pairs,
		security: security,

		chainID: chainID,
		log:     log,
	}
}
