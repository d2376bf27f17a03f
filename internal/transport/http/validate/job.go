package validate

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/qqlabs/market-intel/internal/transport/http/dto"
)

// ServiceRequestValidate validates the webhook request and returns dto.
// The token address itself is passed through unvalidated: its format belongs
// to the upstream data sources.
func ServiceRequestValidate(r *http.Request) (*dto.ServiceRequest, int, error) {
	if r.Method != http.MethodPost {
		return nil, http.StatusMethodNotAllowed, errors.New("method not allowed")
	}

	var req dto.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, "invalid json body")
	}

	if req.JobID == "" || req.ServiceID == "" {
		return nil, http.StatusBadRequest, errors.New("missing jobId or serviceId")
	}
	if !common.IsHexAddress(req.BuyerAddress) {
		return nil, http.StatusBadRequest, errors.New("bad buyerAddress")
	}
	if req.Parameters.TokenAddress == "" {
		return nil, http.StatusBadRequest, errors.New("missing tokenAddress")
	}

	return &req, 0, nil
}
