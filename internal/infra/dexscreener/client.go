package dexscreener

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Client defines an abstraction for looking up market pairs of a token from a
// DEX price aggregator.
type Client interface {
	// TokenPairs returns every trading pair referencing the token, across all
	// chains known to the aggregator.
	TokenPairs(ctx context.Context, token string) ([]Pair, error)
}

// Pair is one trading venue as reported by the aggregator.
type Pair struct {
	ChainID     string    `json:"chainId"`
	DexID       string    `json:"dexId"`
	PairAddress string    `json:"pairAddress"`
	PriceUSD    string    `json:"priceUsd"`
	Liquidity   Liquidity `json:"liquidity"`
}

// Liquidity is the depth block of a pair, in quote currency.
type Liquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

type httpClientImpl struct {
	baseURL string
	client  *http.Client

	callTimeout time.Duration
}

// NewClient creates a pair-source Client backed by the aggregator's REST API.
func NewClient(baseURL string, callTimeout time.Duration) Client {
	return newClientWithHTTP(baseURL, &http.Client{}, callTimeout)
}

func newClientWithHTTP(baseURL string, client *http.Client, callTimeout time.Duration) Client {
	return &httpClientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,

		callTimeout: callTimeout,
	}
}

type pairsResponse struct {
	Pairs []Pair `json:"pairs"`
}

// TokenPairs returns every trading pair referencing the token. A single
// attempt is made; the caller decides what absence of data means.
func (c *httpClientImpl) TokenPairs(ctx context.Context, token string) ([]Pair, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	endpoint := c.baseURL + "/latest/dex/tokens/" + url.PathEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "c.client.Do")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d from pair source", resp.StatusCode)
	}

	var out pairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode pairs response")
	}
	return out.Pairs, nil
}
