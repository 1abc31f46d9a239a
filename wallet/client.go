// Package wallet is a client for the Monero wallet daemon's JSON-RPC
// interface (monero-wallet-rpc). It speaks JSON-RPC 2.0 over HTTP(S)
// with digest authentication and maps the daemon's numeric error codes
// onto a closed set of error kinds.
package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/icholy/digest"
)

// Defaults match the stock monero-wallet-rpc listener.
const (
	DefaultScheme = "http"
	DefaultHost   = "127.0.0.1"
	DefaultPort   = 18082
	DefaultPath   = "/json_rpc"
)

// splitCacheSize bounds the integrated-address split cache.
const splitCacheSize = 256

// Config holds the endpoint configuration for a wallet RPC server.
// Zero-valued fields fall back to the daemon defaults. Immutable once
// passed to New.
type Config struct {
	Scheme   string
	Host     string
	Port     int
	Path     string
	Username string
	Password string

	// HTTPClient optionally replaces the digest-authenticating client
	// built from Username/Password. Callers needing timeouts or custom
	// TLS configure them here.
	HTTPClient *http.Client
}

// Client performs JSON-RPC round trips against one wallet daemon.
// Safe for concurrent use: each call is a self-contained request and
// the underlying http.Client manages its own connection pool.
type Client struct {
	endpoint   string
	http       *http.Client
	splitCache *lru.Cache[string, SplitAddress]
}

// New builds a client for the configured endpoint.
func New(cfg Config) (*Client, error) {
	if cfg.Scheme == "" {
		cfg.Scheme = DefaultScheme
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Scheme != "http" && cfg.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q (use http or https)", cfg.Scheme)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &digest.Transport{
				Username: cfg.Username,
				Password: cfg.Password,
			},
		}
	}

	splitCache, err := lru.New[string, SplitAddress](splitCacheSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		endpoint:   fmt.Sprintf("%s://%s:%d%s", cfg.Scheme, cfg.Host, cfg.Port, cfg.Path),
		http:       httpClient,
		splitCache: splitCache,
	}, nil
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// JSON-RPC 2.0 request envelope. The id is the constant "0": calls are
// synchronous with one request in flight, so correlation is unneeded.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  Params `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call performs one JSON-RPC round trip and returns the raw result
// object. Every failure is a *WalletError distinguishable by kind; no
// retries are attempted at this layer.
func (c *Client) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	if method == "" {
		return nil, fmt.Errorf("method name cannot be empty")
	}

	envelope := rpcRequest{
		JSONRPC: "2.0",
		ID:      "0",
		Method:  method,
		Params:  filterParams(params),
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshaling request for %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newTransportError("requesting "+c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError("reading response body", err)
	}

	var parsed rpcResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, newTransportError("decoding response body", err)
	}
	if parsed.Error != nil {
		return nil, newRPCError(parsed.Error.Code, parsed.Error.Message, payload)
	}
	if parsed.Result == nil {
		// A well-formed response carries exactly one of result/error.
		return nil, newTransportError("response carries neither result nor error", nil)
	}
	return parsed.Result, nil
}

// call unmarshals the result object of one round trip into out.
func (c *Client) call(ctx context.Context, method string, params Params, out any) error {
	result, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return newTransportError("decoding "+method+" result", err)
	}
	return nil
}

// Pointer helpers for optional parameters on option structs.

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
