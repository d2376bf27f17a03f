package config

import (
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// AgentKeyEnv overrides the agent_key config value when set, so the
// marketplace secret does not have to live in the config file.
const AgentKeyEnv = "ACP_AGENT_KEY"

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	OutboundTimeout   time.Duration `yaml:"outbound_timeout"`

	ACPAPIURL string `yaml:"acp_api_url"`
	AgentKey  string `yaml:"agent_key"`

	PairSourceURL string `yaml:"pair_source_url"`
	ChainID       string `yaml:"chain_id"`

	SecuritySourceURL string `yaml:"security_source_url"`
	SecurityChainID   string `yaml:"security_chain_id"`

	AgentName    string `yaml:"agent_name"`
	AgentVersion string `yaml:"agent_version"`
	ProfileURL   string `yaml:"profile_url"`
}

// Load reads the config from a YAML file path, applies defaults and the
// AgentKeyEnv override, and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "os.Open")
	}
	defer func() {
		_ = f.Close()
	}()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8000"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if cfg.OutboundTimeout == 0 {
		cfg.OutboundTimeout = defaultTimeout
	}
	if cfg.ACPAPIURL == "" {
		cfg.ACPAPIURL = "https://api.virtuals.io/v1/jobs"
	}
	if cfg.PairSourceURL == "" {
		cfg.PairSourceURL = "https://api.dexscreener.com"
	}
	if cfg.ChainID == "" {
		cfg.ChainID = "base"
	}
	if cfg.SecuritySourceURL == "" {
		cfg.SecuritySourceURL = "https://api.gopluslabs.io"
	}
	if cfg.SecurityChainID == "" {
		cfg.SecurityChainID = "8453"
	}
	if cfg.AgentName == "" {
		cfg.AgentName = "QQ"
	}
	if cfg.AgentVersion == "" {
		cfg.AgentVersion = "1.0"
	}

	if v := os.Getenv(AgentKeyEnv); v != "" {
		cfg.AgentKey = v
	}

	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c Config) validate() error {
	var err error

	if c.AgentKey == "" {
		err = multierr.Append(err, errors.Errorf("agent_key is required (or set %s)", AgentKeyEnv))
	}

	urls := map[string]string{
		"acp_api_url":         c.ACPAPIURL,
		"pair_source_url":     c.PairSourceURL,
		"security_source_url": c.SecuritySourceURL,
	}
	for name, raw := range urls {
		u, parseErr := url.Parse(raw)
		if parseErr != nil || u.Scheme == "" || u.Host == "" {
			err = multierr.Append(err, errors.Errorf("%s is not a valid url: %q", name, raw))
		}
	}

	timeouts := map[string]time.Duration{
		"shutdown_timeout":    c.GraceTimeout,
		"request_timeout":     c.RequestTimeout,
		"read_header_timeout": c.ReadHeaderTimeout,
		"outbound_timeout":    c.OutboundTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			err = multierr.Append(err, errors.Errorf("%s must be positive", name))
		}
	}

	return err
}
