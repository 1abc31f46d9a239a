package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var (
	walletPassword string
	walletLanguage string
)

var openCmd = &cobra.Command{
	Use:   "open <filename>",
	Short: "Open a wallet file on the daemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		if err := client.OpenWallet(ctx, args[0], walletPassword); err != nil {
			return err
		}
		fmt.Printf("Wallet %s opened.\n", args[0])
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <filename>",
	Short: "Create a new wallet file on the daemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		if err := client.CreateWallet(ctx, args[0], walletPassword, walletLanguage); err != nil {
			return err
		}
		fmt.Printf("Wallet %s created.\n", args[0])
		return nil
	},
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Save the wallet file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		if err := client.Store(ctx); err != nil {
			return err
		}
		fmt.Println("Wallet stored.")
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the wallet daemon, storing the current state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		if err := client.StopWallet(ctx); err != nil {
			return err
		}
		fmt.Println("Wallet daemon stopped.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Show the wallet's mnemonic seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		key, err := client.QueryKey(ctx, wallet.KeyMnemonic)
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil
	},
}

var viewKeyCmd = &cobra.Command{
	Use:   "view-key",
	Short: "Show the wallet's private view key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		key, err := client.QueryKey(ctx, wallet.KeyView)
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil
	},
}

func init() {
	openCmd.Flags().StringVar(&walletPassword, "password", "", "wallet password")
	createCmd.Flags().StringVar(&walletPassword, "password", "", "wallet password")
	createCmd.Flags().StringVar(&walletLanguage, "language", "English", "mnemonic seed language")
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(viewKeyCmd)
}
