package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments <payment-id>",
	Short: "List incoming payments for a payment id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		payments, err := client.GetPayments(ctx, args[0])
		if err != nil {
			return err
		}
		printPayments(payments)
		return nil
	},
}

var bulkMinHeight uint64

var bulkPaymentsCmd = &cobra.Command{
	Use:   "bulk-payments [payment-id...]",
	Short: "List incoming payments for several payment ids",
	Long: `List incoming payments for several payment ids from a minimum
block height. With no ids, every payment is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		payments, err := client.GetBulkPayments(ctx, args, bulkMinHeight)
		if err != nil {
			return err
		}
		printPayments(payments)
		return nil
	},
}

var incomingType string

var incomingCmd = &cobra.Command{
	Use:   "incoming",
	Short: "List outputs received by the wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		transfers, err := client.IncomingTransfers(ctx, incomingType)
		if err != nil {
			return err
		}
		if len(transfers) == 0 {
			fmt.Println("No incoming transfers.")
			return nil
		}
		for _, tr := range transfers {
			printField("Tx hash", tr.TxHash)
			printField("Amount", wallet.AtomicToXMR(tr.Amount)+" XMR")
			printField("Spent", strconv.FormatBool(tr.Spent))
			fmt.Println()
		}
		return nil
	},
}

func printPayments(payments []wallet.Payment) {
	if len(payments) == 0 {
		fmt.Println("No payments found.")
		return
	}
	for _, p := range payments {
		printField("Payment id", p.PaymentID)
		printField("Tx hash", p.TxHash)
		printField("Amount", wallet.AtomicToXMR(p.Amount)+" XMR")
		printField("Height", strconv.FormatUint(p.BlockHeight, 10))
		fmt.Println()
	}
}

func init() {
	bulkPaymentsCmd.Flags().Uint64Var(&bulkMinHeight, "min-height", 0, "minimum block height to look from")
	incomingCmd.Flags().StringVar(&incomingType, "type", wallet.TransferAll, "transfer type: all, available or unavailable")
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(bulkPaymentsCmd)
	rootCmd.AddCommand(incomingCmd)
}
