package wallet

import "context"

// Balance is the wallet's total and spendable balance in atomic units.
type Balance struct {
	Balance         uint64 `json:"balance"`
	UnlockedBalance uint64 `json:"unlocked_balance"`
}

// GetBalance returns the wallet's balance.
func (c *Client) GetBalance(ctx context.Context) (Balance, error) {
	var out Balance
	err := c.call(ctx, "getbalance", nil, &out)
	return out, err
}

// GetAddress returns the wallet's standard address.
func (c *Client) GetAddress(ctx context.Context) (string, error) {
	var out struct {
		Address string `json:"address"`
	}
	if err := c.call(ctx, "getaddress", nil, &out); err != nil {
		return "", err
	}
	return out.Address, nil
}

// GetHeight returns the wallet's current block height.
func (c *Client) GetHeight(ctx context.Context) (uint64, error) {
	var out struct {
		Height uint64 `json:"height"`
	}
	if err := c.call(ctx, "getheight", nil, &out); err != nil {
		return 0, err
	}
	return out.Height, nil
}

// Store saves the wallet file.
func (c *Client) Store(ctx context.Context) error {
	return c.call(ctx, "store", nil, nil)
}

// StopWallet stops the wallet daemon, storing the current state.
func (c *Client) StopWallet(ctx context.Context) error {
	return c.call(ctx, "stop_wallet", nil, nil)
}

// Key types accepted by QueryKey.
const (
	KeyMnemonic = "mnemonic"
	KeyView     = "view_key"
)

// QueryKey returns the wallet's mnemonic seed or private view key,
// depending on keyType.
func (c *Client) QueryKey(ctx context.Context, keyType string) (string, error) {
	if keyType == "" {
		keyType = KeyMnemonic
	}
	var out struct {
		Key string `json:"key"`
	}
	err := c.call(ctx, "query_key", Params{"key_type": keyType}, &out)
	if err != nil {
		return "", err
	}
	return out.Key, nil
}

// OpenWallet opens the named wallet file on the daemon. The daemon only
// serves one wallet at a time; opening a wallet closes the previous one.
func (c *Client) OpenWallet(ctx context.Context, filename, password string) error {
	return c.call(ctx, "open_wallet", Params{
		"filename": filename,
		"password": password,
	}, nil)
}

// CreateWallet creates a new wallet file on the daemon. language selects
// the mnemonic seed language, e.g. "English".
func (c *Client) CreateWallet(ctx context.Context, filename, password, language string) error {
	return c.call(ctx, "create_wallet", Params{
		"filename": filename,
		"password": password,
		"language": language,
	}, nil)
}
