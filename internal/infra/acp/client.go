package acp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Job statuses that count as paid in escrow.
const (
	StatusPaid        = "PAID"
	StatusTransaction = "TRANSACTION"
	StatusCompleted   = "COMPLETED"
)

// Client defines an abstraction for checking job payment state against the
// marketplace API.
type Client interface {
	// VerifyPayment reports whether the job's payment is confirmed in escrow.
	// A non-success response from the marketplace means "not paid", not an error.
	VerifyPayment(ctx context.Context, jobID string) (bool, error)
}

type httpClientImpl struct {
	baseURL  string
	agentKey string
	client   *http.Client

	callTimeout time.Duration
}

// NewClient creates a marketplace Client authenticated with the agent key.
func NewClient(baseURL, agentKey string, callTimeout time.Duration) Client {
	return newClientWithHTTP(baseURL, agentKey, &http.Client{}, callTimeout)
}

func newClientWithHTTP(baseURL, agentKey string, client *http.Client, callTimeout time.Duration) Client {
	return &httpClientImpl{
		baseURL:  strings.TrimRight(baseURL, "/"),
		agentKey: agentKey,
		client:   client,

		callTimeout: callTimeout,
	}
}

type jobResponse struct {
	Status string `json:"status"`
}

// VerifyPayment reports whether the job's payment is confirmed in escrow.
func (c *httpClientImpl) VerifyPayment(ctx context.Context, jobID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(jobID), nil)
	if err != nil {
		return false, errors.Wrap(err, "http.NewRequestWithContext")
	}
	req.Header.Set("Authorization", "Bearer "+c.agentKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "c.client.Do")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	var job jobResponse
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return false, errors.Wrap(err, "decode job response")
	}

	switch job.Status {
	case StatusPaid, StatusTransaction, StatusCompleted:
		return true, nil
	default:
		return false, nil
	}
}
