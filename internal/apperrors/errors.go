package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPaymentNotVerified is returned when the marketplace escrow does not
	// confirm payment for the job.
	ErrPaymentNotVerified = errors.New("payment not verified in escrow")

	// ErrUnknownService is returned when the job names a service this agent
	// does not offer.
	ErrUnknownService = errors.New("unknown service")

	// ErrNoLiquidity is returned when no tradable pool with positive liquidity
	// could be found for a token. Absence is an expected outcome, not a fault:
	// callers must branch on it explicitly.
	ErrNoLiquidity = errors.New("no liquidity data")
)
