package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/qqlabs/market-intel/internal/apperrors"
	"github.com/qqlabs/market-intel/internal/service/dto"
	"github.com/qqlabs/market-intel/internal/service/validate"
)

// Process verifies escrow payment for the job and runs the purchased analysis.
//
// A payment check that errors counts as unpaid: the marketplace is the source
// of truth and an unreachable marketplace must never release a deliverable.
func (s *AnalyzerService) Process(ctx context.Context, req dto.JobRequest) (any, error) {
	if err := validate.JobRequestValidate(req); err != nil {
		return nil, err
	}

	paid, err := s.payments.VerifyPayment(ctx, req.JobID)
	if err != nil {
		s.log.Debug().Err(err).Str("job_id", req.JobID).Msg("payment verification failed")
		return nil, apperrors.ErrPaymentNotVerified
	}
	if !paid {
		return nil, apperrors.ErrPaymentNotVerified
	}

	switch req.ServiceID {
	case ServiceQuickScan:
		return s.QuickScan(ctx, req.Token)
	case ServiceSlippage:
		return s.Slippage(ctx, req.Token)
	case ServiceDeepDive:
		return s.DeepDive(ctx, req.Token)
	default:
		return nil, errors.Wrap(apperrors.ErrUnknownService, req.ServiceID)
	}
}
