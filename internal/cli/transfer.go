package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/internal/config"
	"github.com/chaica/gomonerowallet/internal/txlog"
	"github.com/chaica/gomonerowallet/wallet"
)

var (
	transferPaymentID  string
	transferMixin      uint64
	transferUnlockTime uint64
)

var transferCmd = &cobra.Command{
	Use:   "transfer <address> <amount-xmr>",
	Short: "Send monero to an address",
	Long: `Send monero to an address. The amount is given in XMR, e.g.
"walletctl transfer 9address 0.5". The transaction is recorded in the
local history log when one is configured.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := args[0]
		amount, err := wallet.XMRToAtomic(args[1])
		if err != nil {
			return err
		}

		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		opts := &wallet.TransferOptions{GetTxKey: wallet.Bool(true)}
		if cmd.Flags().Changed("payment-id") {
			opts.PaymentID = wallet.String(transferPaymentID)
		}
		if cmd.Flags().Changed("mixin") {
			opts.Mixin = wallet.Uint64(transferMixin)
		}
		if cmd.Flags().Changed("unlock-time") {
			opts.UnlockTime = wallet.Uint64(transferUnlockTime)
		}

		destinations := []wallet.Destination{{Amount: amount, Address: address}}
		result, err := client.Transfer(ctx, destinations, opts)
		if err != nil {
			return err
		}

		printField("Tx hash", result.TxHash)
		printField("Fee", wallet.AtomicToXMR(result.Fee)+" XMR")
		if result.TxKey != "" {
			printField("Tx key", result.TxKey)
		}

		if err := recordTransfer(cfg, result.TxHash, address, amount, result.Fee, transferPaymentID); err != nil {
			// The transfer went through; a broken history log must not
			// make the command look failed.
			fmt.Printf("warning: could not record transfer in history: %v\n", err)
		}
		return nil
	},
}

func recordTransfer(cfg *config.Config, txHash, address string, amount, fee uint64, paymentID string) error {
	store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return nil
	}
	defer store.Close()

	ctx, cancel := callContext()
	defer cancel()
	return store.Record(ctx, txlog.Entry{
		TxHash:    txHash,
		Address:   address,
		Amount:    amount,
		Fee:       fee,
		PaymentID: paymentID,
	})
}

func init() {
	transferCmd.Flags().StringVar(&transferPaymentID, "payment-id", "", "64-char hex payment id")
	transferCmd.Flags().Uint64Var(&transferMixin, "mixin", 0, "outputs to mix with")
	transferCmd.Flags().Uint64Var(&transferUnlockTime, "unlock-time", 0, "blocks before the monero can be spent")
	rootCmd.AddCommand(transferCmd)
}
