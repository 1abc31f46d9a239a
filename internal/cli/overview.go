package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chaica/gomonerowallet/wallet"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show balance, address and height in one go",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		var (
			balance wallet.Balance
			address string
			height  uint64
		)

		// Independent reads, so fan them out.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			balance, err = client.GetBalance(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			address, err = client.GetAddress(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			height, err = client.GetHeight(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		printField("Address", address)
		printField("Balance", wallet.AtomicToXMR(balance.Balance)+" XMR")
		printField("Unlocked", wallet.AtomicToXMR(balance.UnlockedBalance)+" XMR")
		printField("Height", strconv.FormatUint(height, 10))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
