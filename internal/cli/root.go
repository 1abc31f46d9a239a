// Package cli implements the walletctl command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/internal/config"
	"github.com/chaica/gomonerowallet/internal/txlog"
	"github.com/chaica/gomonerowallet/wallet"
)

var (
	// Global flags
	configFile string
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "walletctl",
	Short: "walletctl - CLI for the Monero wallet RPC daemon",
	Long: `walletctl talks to a running monero-wallet-rpc daemon over its
JSON-RPC interface: balances, transfers, payments, integrated addresses
and wallet management. Configure the endpoint with --conf, a
walletctl.toml file or WALLETCTL_ environment variables.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "per-call timeout")
}

// loadConfig reads the configuration selected by --conf.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds a wallet client from the loaded configuration.
func newClient() (*wallet.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := wallet.New(cfg.WalletConfig())
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// callContext returns the context for one RPC round trip.
func callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// openHistory opens the transfer log when one is configured. Returns
// nil (and no error) when history is disabled.
func openHistory(cfg *config.Config) (*txlog.Store, error) {
	if cfg.History.Path == "" {
		return nil, nil
	}
	return txlog.Open(cfg.History.Path)
}

var (
	labelColor = color.New(color.Bold)
	valueColor = color.New(color.FgGreen)
)

// printField prints an aligned "label: value" line.
func printField(label, value string) {
	fmt.Printf("%s %s\n", labelColor.Sprintf("%s:", label), valueColor.Sprint(value))
}
