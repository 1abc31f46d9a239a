package wallet

import "context"

// Destination is one recipient of a transfer: an amount in atomic units
// and a public address. Passed through to the daemon unchanged.
type Destination struct {
	Amount  uint64 `json:"amount"`
	Address string `json:"address"`
}

// TransferOptions are the optional parameters of Transfer. Nil pointer
// fields are left unset and omitted from the request; the daemon then
// applies its own defaults.
type TransferOptions struct {
	Mixin      *uint64 // outputs from the chain to mix with
	PaymentID  *string // 64-char hex; daemon generates one when unset
	UnlockTime *uint64 // blocks before the monero can be spent
	GetTxKey   *bool
	GetTxHex   *bool
}

// TransferResult is the daemon's reply to a transfer.
type TransferResult struct {
	TxHash string `json:"tx_hash"`
	TxKey  string `json:"tx_key"`
	TxBlob string `json:"tx_blob"`
	Fee    uint64 `json:"fee"`
}

// Transfer sends monero to one or more recipients in a single
// transaction.
func (c *Client) Transfer(ctx context.Context, destinations []Destination, opts *TransferOptions) (TransferResult, error) {
	if opts == nil {
		opts = &TransferOptions{}
	}
	var out TransferResult
	err := c.call(ctx, "transfer", Params{
		"destinations": destinations,
		"mixin":        opts.Mixin,
		"payment_id":   opts.PaymentID,
		"unlock_time":  opts.UnlockTime,
		"get_tx_key":   opts.GetTxKey,
		"get_tx_hex":   opts.GetTxHex,
	}, &out)
	return out, err
}

// TransferSplitOptions are the optional parameters of TransferSplit.
type TransferSplitOptions struct {
	Mixin        *uint64
	PaymentID    *string
	UnlockTime   *uint64
	GetTxKeys    *bool
	GetTxHex     *bool
	NewAlgorithm *bool
}

// TransferSplitResult carries per-transaction lists; the daemon may have
// split the payment into several transactions.
type TransferSplitResult struct {
	AmountList []uint64 `json:"amount_list"`
	FeeList    []uint64 `json:"fee_list"`
	TxHashList []string `json:"tx_hash_list"`
	TxKeyList  []string `json:"tx_key_list"`
}

// normalize replaces lists the daemon omitted with empty ones so callers
// can range over them without nil checks.
func (r *TransferSplitResult) normalize() {
	if r.AmountList == nil {
		r.AmountList = []uint64{}
	}
	if r.FeeList == nil {
		r.FeeList = []uint64{}
	}
	if r.TxHashList == nil {
		r.TxHashList = []string{}
	}
	if r.TxKeyList == nil {
		r.TxKeyList = []string{}
	}
}

// TransferSplit sends monero to one or more recipients, splitting into
// several transactions when a single one would be too large.
func (c *Client) TransferSplit(ctx context.Context, destinations []Destination, opts *TransferSplitOptions) (TransferSplitResult, error) {
	if opts == nil {
		opts = &TransferSplitOptions{}
	}
	var out TransferSplitResult
	err := c.call(ctx, "transfer_split", Params{
		"destinations":  destinations,
		"mixin":         opts.Mixin,
		"payment_id":    opts.PaymentID,
		"unlock_time":   opts.UnlockTime,
		"get_tx_keys":   opts.GetTxKeys,
		"get_tx_hex":    opts.GetTxHex,
		"new_algorithm": opts.NewAlgorithm,
	}, &out)
	if err != nil {
		return out, err
	}
	out.normalize()
	return out, nil
}

// SweepDust sends all dust outputs back to the wallet to make them
// easier to spend and mix. Returns the transaction hashes; a wallet
// with no dust yields an empty list, not an error.
func (c *Client) SweepDust(ctx context.Context) ([]string, error) {
	var out struct {
		TxHashList []string `json:"tx_hash_list"`
	}
	if err := c.call(ctx, "sweep_dust", nil, &out); err != nil {
		return nil, err
	}
	if out.TxHashList == nil {
		return []string{}, nil
	}
	return out.TxHashList, nil
}

// SweepAllOptions are the optional parameters of SweepAll.
type SweepAllOptions struct {
	Mixin       *uint64
	PaymentID   *string
	UnlockTime  *uint64
	BelowAmount *uint64 // only sweep outputs below this amount
	GetTxKeys   *bool
}

// SweepAll sends the wallet's entire unlocked balance to address. Like
// TransferSplit it may emit several transactions.
func (c *Client) SweepAll(ctx context.Context, address string, opts *SweepAllOptions) (TransferSplitResult, error) {
	if opts == nil {
		opts = &SweepAllOptions{}
	}
	var out TransferSplitResult
	err := c.call(ctx, "sweep_all", Params{
		"address":      address,
		"mixin":        opts.Mixin,
		"payment_id":   opts.PaymentID,
		"unlock_time":  opts.UnlockTime,
		"below_amount": opts.BelowAmount,
		"get_tx_keys":  opts.GetTxKeys,
	}, &out)
	if err != nil {
		return out, err
	}
	out.normalize()
	return out, nil
}
