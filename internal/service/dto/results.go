package dto

// QuickScanResult is the deliverable of the quick-scan service.
type QuickScanResult struct {
	TrustScore     int    `json:"trust_score"`
	IsHoneypot     bool   `json:"is_honeypot"`
	IsBlacklisted  bool   `json:"is_blacklisted"`
	Recommendation string `json:"recommendation"`
	ProcessedAt    string `json:"processed_at"`
}

// SlippageResult is the deliverable of the slippage-calculator service.
type SlippageResult struct {
	Slippage100    float64 `json:"slippage_100"`
	Slippage1000   float64 `json:"slippage_1000"`
	Slippage10000  float64 `json:"slippage_10000"`
	LiquidityUSD   int64   `json:"liquidity_usd"`
	Recommendation string  `json:"recommendation"`
	BestPool       string  `json:"best_pool"`
	ProcessedAt    string  `json:"processed_at"`
}

// SecuritySection is the security half of a deep-dive.
type SecuritySection struct {
	TrustScore int      `json:"trust_score"`
	Risks      []string `json:"risks"`
}

// LiquiditySection is the liquidity half of a deep-dive. Slippage100 is
// omitted when no usable pool was found.
type LiquiditySection struct {
	Slippage100 *float64 `json:"slippage_100,omitempty"`
	IsLiquid    bool     `json:"is_liquid"`
}

// DeepDiveResult is the deliverable of the full-deep-dive service.
type DeepDiveResult struct {
	Security       SecuritySection  `json:"security"`
	Liquidity      LiquiditySection `json:"liquidity"`
	Recommendation string           `json:"recommendation"`
	ProcessedAt    string           `json:"processed_at"`
}
