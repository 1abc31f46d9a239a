package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show transfers sent through walletctl",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		if store == nil {
			return fmt.Errorf("no history log configured: set history.path in the config file")
		}
		defer store.Close()

		ctx, cancel := callContext()
		defer cancel()

		entries, err := store.List(ctx, historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No recorded transfers.")
			return nil
		}
		for _, e := range entries {
			printField("Date", e.CreatedAt.Local().Format(time.RFC1123))
			printField("Tx hash", e.TxHash)
			printField("To", e.Address)
			printField("Amount", wallet.AtomicToXMR(e.Amount)+" XMR")
			printField("Fee", wallet.AtomicToXMR(e.Fee)+" XMR")
			if e.PaymentID != "" {
				printField("Payment id", e.PaymentID)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
