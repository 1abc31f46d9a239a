package wallet

import "context"

// IntegratedAddress pairs an integrated address with the payment id
// embedded in it.
type IntegratedAddress struct {
	IntegratedAddress string `json:"integrated_address"`
	PaymentID         string `json:"payment_id"`
}

// MakeIntegratedAddress builds an integrated address from the wallet
// address and paymentID. An empty paymentID lets the daemon generate a
// random one.
func (c *Client) MakeIntegratedAddress(ctx context.Context, paymentID string) (IntegratedAddress, error) {
	var out IntegratedAddress
	err := c.call(ctx, "make_integrated_address", Params{"payment_id": paymentID}, &out)
	return out, err
}

// SplitAddress is the standard address and payment id recovered from an
// integrated address.
type SplitAddress struct {
	StandardAddress string `json:"standard_address"`
	PaymentID       string `json:"payment_id"`
}

// SplitIntegratedAddress recovers the standard address and payment id
// behind an integrated address. The split is a pure daemon computation,
// so results are memoized in a bounded cache; repeat lookups do not hit
// the network.
func (c *Client) SplitIntegratedAddress(ctx context.Context, integratedAddress string) (SplitAddress, error) {
	if cached, ok := c.splitCache.Get(integratedAddress); ok {
		return cached, nil
	}
	var out SplitAddress
	err := c.call(ctx, "split_integrated_address", Params{
		"integrated_address": integratedAddress,
	}, &out)
	if err != nil {
		return SplitAddress{}, err
	}
	c.splitCache.Add(integratedAddress, out)
	return out, nil
}

// CreateAccountResult identifies a newly created subaddress account.
type CreateAccountResult struct {
	AccountIndex uint64 `json:"account_index"`
	Address      string `json:"address"`
}

// CreateAccount creates a new subaddress account with an optional label.
func (c *Client) CreateAccount(ctx context.Context, label string) (CreateAccountResult, error) {
	var out CreateAccountResult
	err := c.call(ctx, "create_account", Params{"label": label}, &out)
	return out, err
}

// SubaddressAccount describes one subaddress account of the wallet.
type SubaddressAccount struct {
	AccountIndex    uint64 `json:"account_index"`
	BaseAddress     string `json:"base_address"`
	Balance         uint64 `json:"balance"`
	UnlockedBalance uint64 `json:"unlocked_balance"`
	Label           string `json:"label"`
	Tag             string `json:"tag"`
}

// AccountsResult lists the wallet's subaddress accounts with totals.
type AccountsResult struct {
	SubaddressAccounts   []SubaddressAccount `json:"subaddress_accounts"`
	TotalBalance         uint64              `json:"total_balance"`
	TotalUnlockedBalance uint64              `json:"total_unlocked_balance"`
}

// GetAccounts returns all subaddress accounts of the wallet.
func (c *Client) GetAccounts(ctx context.Context) (AccountsResult, error) {
	var out AccountsResult
	err := c.call(ctx, "get_accounts", nil, &out)
	if err != nil {
		return out, err
	}
	if out.SubaddressAccounts == nil {
		out.SubaddressAccounts = []SubaddressAccount{}
	}
	return out, nil
}

// CreateAddressResult identifies a newly created subaddress.
type CreateAddressResult struct {
	Address      string `json:"address"`
	AddressIndex uint64 `json:"address_index"`
}

// CreateAddress creates a new subaddress under the given account, with
// an optional label.
func (c *Client) CreateAddress(ctx context.Context, accountIndex uint64, label string) (CreateAddressResult, error) {
	var out CreateAddressResult
	err := c.call(ctx, "create_address", Params{
		"account_index": accountIndex,
		"label":         label,
	}, &out)
	return out, err
}

// LabelAddress sets the label of the subaddress identified by account
// and address index.
func (c *Client) LabelAddress(ctx context.Context, accountIndex, addressIndex uint64, label string) error {
	return c.call(ctx, "label_address", Params{
		"index": map[string]uint64{
			"major": accountIndex,
			"minor": addressIndex,
		},
		"label": label,
	}, nil)
}

// URIRequest describes a payment URI. Address is required; the daemon
// accepts empty values for the remaining fields.
type URIRequest struct {
	Address       string
	Amount        uint64 // atomic units
	PaymentID     string
	RecipientName string
	TxDescription string
}

// MakeURI creates a payment URI in the official URI format.
func (c *Client) MakeURI(ctx context.Context, req URIRequest) (string, error) {
	var out struct {
		URI string `json:"uri"`
	}
	err := c.call(ctx, "make_uri", Params{
		"address":        req.Address,
		"amount":         req.Amount,
		"payment_id":     req.PaymentID,
		"recipient_name": req.RecipientName,
		"tx_description": req.TxDescription,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.URI, nil
}
