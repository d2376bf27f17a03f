package dto

import "github.com/ethereum/go-ethereum/common"

// JobRequest represents a paid marketplace job to run one analysis service.
type JobRequest struct {
	JobID     string
	Buyer     common.Address
	ServiceID string
	// Token is the chain-specific token identifier, passed through to the
	// upstream data sources as-is.
	Token string
}
