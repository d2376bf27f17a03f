package http

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/qqlabs/market-intel/internal/apperrors"
	svcdto "github.com/qqlabs/market-intel/internal/service/dto"
	"github.com/qqlabs/market-intel/internal/transport/http/dto"
	"github.com/qqlabs/market-intel/internal/transport/http/validate"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	deliverableJSON = "json"
)

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.ServiceRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	value, err := s.svc.Process(ctx, svcdto.JobRequest{
		JobID:     req.JobID,
		Buyer:     common.HexToAddress(req.BuyerAddress),
		ServiceID: req.ServiceID,
		Token:     req.Parameters.TokenAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPaymentNotVerified):
			s.writeJSON(w, http.StatusPaymentRequired, dto.PaymentRequired{
				Detail: "Payment not verified in escrow",
			})
		case errors.Is(err, apperrors.ErrInvalidArgument):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			// Processing failures go back in the error envelope so the
			// marketplace can trigger a refund.
			s.writeJSON(w, http.StatusOK, dto.ServiceResponse{
				Status:  statusError,
				JobID:   req.JobID,
				Message: err.Error(),
			})
		}
		return
	}

	s.writeJSON(w, http.StatusOK, dto.ServiceResponse{
		Status: statusSuccess,
		JobID:  req.JobID,
		Deliverable: &dto.Deliverable{
			Type:  deliverableJSON,
			Value: value,
		},
	})
}
