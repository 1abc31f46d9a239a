package wallet

import "context"

// Payment is one incoming payment as reported by the daemon.
type Payment struct {
	PaymentID   string `json:"payment_id"`
	TxHash      string `json:"tx_hash"`
	Amount      uint64 `json:"amount"`
	BlockHeight uint64 `json:"block_height"`
	UnlockTime  uint64 `json:"unlock_time"`
}

// GetPayments returns the incoming payments carrying the given payment
// id. No matches yields an empty list, not an error.
func (c *Client) GetPayments(ctx context.Context, paymentID string) ([]Payment, error) {
	var out struct {
		Payments []Payment `json:"payments"`
	}
	err := c.call(ctx, "get_payments", Params{"payment_id": paymentID}, &out)
	if err != nil {
		return nil, err
	}
	if out.Payments == nil {
		return []Payment{}, nil
	}
	return out.Payments, nil
}

// GetBulkPayments returns incoming payments for a list of payment ids
// from a given height. An empty id list matches every payment. Preferred
// over GetPayments upstream; either works for a single id.
func (c *Client) GetBulkPayments(ctx context.Context, paymentIDs []string, minBlockHeight uint64) ([]Payment, error) {
	if paymentIDs == nil {
		// An explicitly empty list is sent, matching all payments.
		paymentIDs = []string{}
	}
	var out struct {
		Payments []Payment `json:"payments"`
	}
	err := c.call(ctx, "get_bulk_payments", Params{
		"payment_ids":      paymentIDs,
		"min_block_height": minBlockHeight,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Payments == nil {
		return []Payment{}, nil
	}
	return out.Payments, nil
}

// Transfer types accepted by IncomingTransfers.
const (
	TransferAll         = "all"
	TransferAvailable   = "available"
	TransferUnavailable = "unavailable"
)

// IncomingTransfer is one output received by the wallet.
type IncomingTransfer struct {
	Amount      uint64 `json:"amount"`
	Spent       bool   `json:"spent"`
	GlobalIndex uint64 `json:"global_index"`
	TxHash      string `json:"tx_hash"`
	TxSize      uint64 `json:"tx_size"`
}

// IncomingTransfers returns the outputs received by the wallet,
// filtered by transferType. A wallet with no matching outputs yields an
// empty list, not an error.
func (c *Client) IncomingTransfers(ctx context.Context, transferType string) ([]IncomingTransfer, error) {
	if transferType == "" {
		transferType = TransferAll
	}
	var out struct {
		Transfers []IncomingTransfer `json:"transfers"`
	}
	err := c.call(ctx, "incoming_transfers", Params{"transfer_type": transferType}, &out)
	if err != nil {
		return nil, err
	}
	if out.Transfers == nil {
		return []IncomingTransfer{}, nil
	}
	return out.Transfers, nil
}
