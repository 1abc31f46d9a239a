package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the wallet's subaddress accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		accounts, err := client.GetAccounts(ctx)
		if err != nil {
			return err
		}
		for _, account := range accounts.SubaddressAccounts {
			printField("Account", strconv.FormatUint(account.AccountIndex, 10))
			if account.Label != "" {
				printField("Label", account.Label)
			}
			printField("Address", account.BaseAddress)
			printField("Balance", wallet.AtomicToXMR(account.Balance)+" XMR")
			fmt.Println()
		}
		printField("Total balance", wallet.AtomicToXMR(accounts.TotalBalance)+" XMR")
		printField("Total unlocked", wallet.AtomicToXMR(accounts.TotalUnlockedBalance)+" XMR")
		return nil
	},
}

var accountCreateCmd = &cobra.Command{
	Use:   "account-create [label]",
	Short: "Create a new subaddress account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		label := ""
		if len(args) == 1 {
			label = args[0]
		}
		account, err := client.CreateAccount(ctx, label)
		if err != nil {
			return err
		}
		printField("Account", strconv.FormatUint(account.AccountIndex, 10))
		printField("Address", account.Address)
		return nil
	},
}

var subaddressAccount uint64

var subaddressCreateCmd = &cobra.Command{
	Use:   "subaddress-create [label]",
	Short: "Create a new subaddress under an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		label := ""
		if len(args) == 1 {
			label = args[0]
		}
		created, err := client.CreateAddress(ctx, subaddressAccount, label)
		if err != nil {
			return err
		}
		printField("Address", created.Address)
		printField("Index", strconv.FormatUint(created.AddressIndex, 10))
		return nil
	},
}

var subaddressLabelCmd = &cobra.Command{
	Use:   "subaddress-label <minor-index> <label>",
	Short: "Set the label of a subaddress",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minor, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid subaddress index %q: %w", args[0], err)
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		if err := client.LabelAddress(ctx, subaddressAccount, minor, args[1]); err != nil {
			return err
		}
		fmt.Println("Label set.")
		return nil
	},
}

func init() {
	subaddressCreateCmd.Flags().Uint64Var(&subaddressAccount, "account", 0, "account index")
	subaddressLabelCmd.Flags().Uint64Var(&subaddressAccount, "account", 0, "account index")
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(accountCreateCmd)
	rootCmd.AddCommand(subaddressCreateCmd)
	rootCmd.AddCommand(subaddressLabelCmd)
}
