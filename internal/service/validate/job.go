package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/qqlabs/market-intel/internal/apperrors"
	"github.com/qqlabs/market-intel/internal/service/dto"
)

// JobRequestValidate validates business logic request.
func JobRequestValidate(req dto.JobRequest) error {
	if req.JobID == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "job id cannot be empty")
	}

	if req.Buyer == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "buyer address cannot be empty")
	}

	if req.ServiceID == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "service id cannot be empty")
	}

	if req.Token == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token address cannot be empty")
	}

	return nil
}
