package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var sweepDustCmd = &cobra.Command{
	Use:   "sweep-dust",
	Short: "Send all dust outputs back to the wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		hashes, err := client.SweepDust(ctx)
		if err != nil {
			return err
		}
		if len(hashes) == 0 {
			fmt.Println("No dust to sweep.")
			return nil
		}
		for _, hash := range hashes {
			printField("Tx hash", hash)
		}
		return nil
	},
}

var sweepBelowAmount string

var sweepAllCmd = &cobra.Command{
	Use:   "sweep-all <address>",
	Short: "Send the entire unlocked balance to an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		opts := &wallet.SweepAllOptions{GetTxKeys: wallet.Bool(true)}
		if cmd.Flags().Changed("below-amount") {
			below, err := wallet.XMRToAtomic(sweepBelowAmount)
			if err != nil {
				return err
			}
			opts.BelowAmount = wallet.Uint64(below)
		}

		result, err := client.SweepAll(ctx, args[0], opts)
		if err != nil {
			return err
		}
		for i, hash := range result.TxHashList {
			printField("Tx hash", hash)
			if i < len(result.AmountList) {
				printField("Amount", wallet.AtomicToXMR(result.AmountList[i])+" XMR")
			}
			if i < len(result.FeeList) {
				printField("Fee", wallet.AtomicToXMR(result.FeeList[i])+" XMR")
			}
		}
		return nil
	},
}

func init() {
	sweepAllCmd.Flags().StringVar(&sweepBelowAmount, "below-amount", "", "only sweep outputs below this XMR amount")
	rootCmd.AddCommand(sweepDustCmd)
	rootCmd.AddCommand(sweepAllCmd)
}
