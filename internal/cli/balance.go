package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the wallet's balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		balance, err := client.GetBalance(ctx)
		if err != nil {
			return err
		}

		printField("Balance", wallet.AtomicToXMR(balance.Balance)+" XMR")
		printField("Unlocked", wallet.AtomicToXMR(balance.UnlockedBalance)+" XMR")
		return nil
	},
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Show the wallet's standard address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		address, err := client.GetAddress(ctx)
		if err != nil {
			return err
		}
		printField("Address", address)
		return nil
	},
}

var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Show the wallet's current block height",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		height, err := client.GetHeight(ctx)
		if err != nil {
			return err
		}
		printField("Height", strconv.FormatUint(height, 10))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(heightCmd)
}
