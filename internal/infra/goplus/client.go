package goplus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TokenSecurity is the subset of the token security report the analyses use.
// Tax percentages are in percent (a 5% buy tax is 5.0).
type TokenSecurity struct {
	IsHoneypot    bool
	IsBlacklisted bool
	IsOpenSource  bool
	IsProxy       bool
	IsMintable    bool
	BuyTaxPct     float64
	SellTaxPct    float64
	HolderCount   int64
}

// Client defines an abstraction for fetching a token security report.
type Client interface {
	TokenSecurity(ctx context.Context, token string) (*TokenSecurity, error)
}

type httpClientImpl struct {
	baseURL string
	chainID string
	client  *http.Client

	callTimeout time.Duration
}

// NewClient creates a security-source Client scoped to one chain.
func NewClient(baseURL, chainID string, callTimeout time.Duration) Client {
	return newClientWithHTTP(baseURL, chainID, &http.Client{}, callTimeout)
}

func newClientWithHTTP(baseURL, chainID string, client *http.Client, callTimeout time.Duration) Client {
	return &httpClientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		chainID: chainID,
		client:  client,

		callTimeout: callTimeout,
	}
}

const codeOK = 1

type securityResponse struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Result  map[string]tokenReport `json:"result"`
}

// The upstream report encodes booleans as "0"/"1" strings and taxes as
// decimal fraction strings.
type tokenReport struct {
	IsHoneypot    string `json:"is_honeypot"`
	IsBlacklisted string `json:"is_blacklisted"`
	IsOpenSource  string `json:"is_open_source"`
	IsProxy       string `json:"is_proxy"`
	IsMintable    string `json:"is_mintable"`
	BuyTax        string `json:"buy_tax"`
	SellTax       string `json:"sell_tax"`
	HolderCount   string `json:"holder_count"`
}

// TokenSecurity fetches and normalizes the security report for a token.
func (c *httpClientImpl) TokenSecurity(ctx context.Context, token string) (*TokenSecurity, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	endpoint := c.baseURL + "/api/v1/token_security/" + url.PathEscape(c.chainID) +
		"?contract_addresses=" + url.QueryEscape(token)
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
		return nil, errors.Errorf("unexpected status %d from security source", resp.StatusCode)
	}

	var out securityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode security response")
	}
	if out.Code != codeOK {
		return nil, errors.Errorf("security source error %d: %s", out.Code, out.Message)
	}

	// The result is keyed by lowercased contract address.
	report, ok := out.Result[strings.ToLower(token)]
	if !ok {
		return nil, errors.Errorf("token %s not in security report", token)
	}

	return &TokenSecurity{
		IsHoneypot:    flag(report.IsHoneypot),
		IsBlacklisted: flag(report.IsBlacklisted),
		IsOpenSource:  flag(report.IsOpenSource),
		IsProxy:       flag(report.IsProxy),
		IsMintable:    flag(report.IsMintable),
		BuyTaxPct:     taxPct(report.BuyTax),
		SellTaxPct:    taxPct(report.SellTax),
		HolderCount:   count(report.HolderCount),
	}, nil
}

func flag(s string) bool {
	return s == "1"
}

// taxPct converts a fraction string like "0.05" to percent. Empty and
// unparsable values, common in upstream reports, read as zero.
func taxPct(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * 100
}

func count(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
