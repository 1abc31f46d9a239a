// Package config loads walletctl configuration from defaults, an
// optional TOML file and WALLETCTL_-prefixed environment variables, in
// that priority order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/chaica/gomonerowallet/wallet"
)

// Config is the walletctl configuration.
type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	History HistoryConfig `mapstructure:"history"`
}

// RPCConfig describes the wallet daemon endpoint and credentials.
type RPCConfig struct {
	Scheme   string `mapstructure:"scheme"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Path     string `mapstructure:"path"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// HistoryConfig configures the local transfer history log.
type HistoryConfig struct {
	// Path of the sqlite database file. Empty disables history.
	Path string `mapstructure:"path"`
}

// WalletConfig converts the RPC section into a wallet client config.
func (c *Config) WalletConfig() wallet.Config {
	return wallet.Config{
		Scheme:   c.RPC.Scheme,
		Host:     c.RPC.Host,
		Port:     c.RPC.Port,
		Path:     c.RPC.Path,
		Username: c.RPC.Username,
		Password: c.RPC.Password,
	}
}

// Load reads configuration from the given file path. An empty path
// skips the file and uses defaults plus environment overrides only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("WALLETCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// setDefaults matches the stock monero-wallet-rpc listener.
func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc.scheme", wallet.DefaultScheme)
	v.SetDefault("rpc.host", wallet.DefaultHost)
	v.SetDefault("rpc.port", wallet.DefaultPort)
	v.SetDefault("rpc.path", wallet.DefaultPath)
	v.SetDefault("rpc.username", "")
	v.SetDefault("rpc.password", "")
	v.SetDefault("history.path", "")
}

func validate(cfg *Config) error {
	if cfg.RPC.Scheme != "http" && cfg.RPC.Scheme != "https" {
		return fmt.Errorf("rpc.scheme must be http or https, got %q", cfg.RPC.Scheme)
	}
	if cfg.RPC.Port <= 0 || cfg.RPC.Port > 65535 {
		return fmt.Errorf("rpc.port out of range: %d", cfg.RPC.Port)
	}
	if cfg.RPC.Host == "" {
		return fmt.Errorf("rpc.host cannot be empty")
	}
	if !strings.HasPrefix(cfg.RPC.Path, "/") {
		return fmt.Errorf("rpc.path must start with /, got %q", cfg.RPC.Path)
	}
	return nil
}
