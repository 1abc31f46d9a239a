package cli

import (
	"github.com/spf13/cobra"

	"github.com/chaica/gomonerowallet/wallet"
)

var integratedPaymentID string

var integratedMakeCmd = &cobra.Command{
	Use:   "integrated-make",
	Short: "Make an integrated address from the wallet address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		addr, err := client.MakeIntegratedAddress(ctx, integratedPaymentID)
		if err != nil {
			return err
		}
		printField("Integrated address", addr.IntegratedAddress)
		printField("Payment id", addr.PaymentID)
		return nil
	},
}

var integratedSplitCmd = &cobra.Command{
	Use:   "integrated-split <integrated-address>",
	Short: "Split an integrated address into address and payment id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		split, err := client.SplitIntegratedAddress(ctx, args[0])
		if err != nil {
			return err
		}
		printField("Standard address", split.StandardAddress)
		printField("Payment id", split.PaymentID)
		return nil
	},
}

var uriFlags struct {
	amount      string
	paymentID   string
	name        string
	description string
}

var uriCmd = &cobra.Command{
	Use:   "uri <address>",
	Short: "Create a payment URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var amount uint64
		if uriFlags.amount != "" {
			var err error
			amount, err = wallet.XMRToAtomic(uriFlags.amount)
			if err != nil {
				return err
			}
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callContext()
		defer cancel()

		uri, err := client.MakeURI(ctx, wallet.URIRequest{
			Address:       args[0],
			Amount:        amount,
			PaymentID:     uriFlags.paymentID,
			RecipientName: uriFlags.name,
			TxDescription: uriFlags.description,
		})
		if err != nil {
			return err
		}
		printField("URI", uri)
		return nil
	},
}

func init() {
	integratedMakeCmd.Flags().StringVar(&integratedPaymentID, "payment-id", "", "payment id to embed (random when empty)")
	uriCmd.Flags().StringVar(&uriFlags.amount, "amount", "", "XMR amount")
	uriCmd.Flags().StringVar(&uriFlags.paymentID, "payment-id", "", "payment id")
	uriCmd.Flags().StringVar(&uriFlags.name, "name", "", "recipient name")
	uriCmd.Flags().StringVar(&uriFlags.description, "description", "", "transaction description")
	rootCmd.AddCommand(integratedMakeCmd)
	rootCmd.AddCommand(integratedSplitCmd)
	rootCmd.AddCommand(uriCmd)
}
