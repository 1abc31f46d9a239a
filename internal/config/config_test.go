package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.RPC.Scheme)
	assert.Equal(t, "127.0.0.1", cfg.RPC.Host)
	assert.Equal(t, 18082, cfg.RPC.Port)
	assert.Equal(t, "/json_rpc", cfg.RPC.Path)
	assert.Empty(t, cfg.RPC.Username)
	assert.Empty(t, cfg.History.Path)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walletctl.toml")
	content := `
[rpc]
scheme = "https"
host = "wallet.example.net"
port = 28082
username = "monero"
password = "s3cret"

[history]
path = "/var/lib/walletctl/history.db"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https", cfg.RPC.Scheme)
	assert.Equal(t, "wallet.example.net", cfg.RPC.Host)
	assert.Equal(t, 28082, cfg.RPC.Port)
	assert.Equal(t, "/json_rpc", cfg.RPC.Path) // default survives partial file
	assert.Equal(t, "monero", cfg.RPC.Username)
	assert.Equal(t, "/var/lib/walletctl/history.db", cfg.History.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WALLETCTL_RPC_PORT", "18083")
	t.Setenv("WALLETCTL_RPC_PASSWORD", "fromenv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 18083, cfg.RPC.Port)
	assert.Equal(t, "fromenv", cfg.RPC.Password)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadValidation(t *testing.T) {
	dir := t.TempDir()

	write := func(content string) string {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	_, err := Load(write("[rpc]\nscheme = \"ftp\"\n"))
	assert.ErrorContains(t, err, "scheme")

	_, err = Load(write("[rpc]\nport = 99999\n"))
	assert.ErrorContains(t, err, "port")

	_, err = Load(write("[rpc]\npath = \"json_rpc\"\n"))
	assert.ErrorContains(t, err, "path")
}

func TestWalletConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	wcfg := cfg.WalletConfig()
	assert.Equal(t, "127.0.0.1", wcfg.Host)
	assert.Equal(t, 18082, wcfg.Port)
}
