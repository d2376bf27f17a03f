package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeFile(t, `
listen_addr: ":9000"
shutdown_timeout: 10s
request_timeout: 20s
read_header_timeout: 3s
outbound_timeout: 2s
acp_api_url: "https://acp.test/v1/jobs"
agent_key: "acp-secret"
pair_source_url: "https://pairs.test"
chain_id: "base"
security_source_url: "https://security.test"
security_chain_id: "8453"
agent_name: "QQ"
agent_version: "1.0"
profile_url: "https://profile.test/agent/1"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, ":9000", cfg.ListenAddr)
		require.Equal(t, 10*time.Second, cfg.GraceTimeout)
		require.Equal(t, 20*time.Second, cfg.RequestTimeout)
		require.Equal(t, 3*time.Second, cfg.ReadHeaderTimeout)
		require.Equal(t, 2*time.Second, cfg.OutboundTimeout)
		require.Equal(t, "https://acp.test/v1/jobs", cfg.ACPAPIURL)
		require.Equal(t, "acp-secret", cfg.AgentKey)
		require.Equal(t, "https://pairs.test", cfg.PairSourceURL)
		require.Equal(t, "base", cfg.ChainID)
		require.Equal(t, "https://security.test", cfg.SecuritySourceURL)
		require.Equal(t, "8453", cfg.SecurityChainID)
	})

	t.Run("defaults", func(t *testing.T) {
		path := writeFile(t, `agent_key: "acp-secret"`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, ":8000", cfg.ListenAddr)
		require.Equal(t, 5*time.Second, cfg.GraceTimeout)
		require.Equal(t, 30*time.Second, cfg.RequestTimeout)
		require.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
		require.Equal(t, 5*time.Second, cfg.OutboundTimeout)
		require.Equal(t, "https://api.virtuals.io/v1/jobs", cfg.ACPAPIURL)
		require.Equal(t, "https://api.dexscreener.com", cfg.PairSourceURL)
		require.Equal(t, "base", cfg.ChainID)
		require.Equal(t, "https://api.gopluslabs.io", cfg.SecuritySourceURL)
		require.Equal(t, "8453", cfg.SecurityChainID)
		require.Equal(t, "QQ", cfg.AgentName)
		require.Equal(t, "1.0", cfg.AgentVersion)
	})

	t.Run("agent key from environment", func(t *testing.T) {
		t.Setenv(AgentKeyEnv, "env-secret")
		path := writeFile(t, `agent_key: "file-secret"`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "env-secret", cfg.AgentKey)
	})

	t.Run("missing agent key", func(t *testing.T) {
		path := writeFile(t, `listen_addr: ":9000"`)

		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "agent_key")
	})

	t.Run("negative timeout", func(t *testing.T) {
		path := writeFile(t, `
agent_key: "acp-secret"
request_timeout: -1s
`)

		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "request_timeout")
	})

	t.Run("bad url", func(t *testing.T) {
		path := writeFile(t, `
agent_key: "acp-secret"
pair_source_url: "not a url"
`)

		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "pair_source_url")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "listen_addr: [unterminated")

		_, err := Load(path)
		require.Error(t, err)
	})
}
