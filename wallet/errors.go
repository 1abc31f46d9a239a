package wallet

import (
	"errors"
	"fmt"
)

// Wallet RPC error codes - matching monero-wallet-rpc as shipped with
// Monero v0.11 "Helium Hydra" (wallet_rpc_server_error_codes.h).
// The numbering changed across daemon releases; this table targets that
// one version and must not be edited to track another without bumping
// the library version.
const (
	WalletErrUnknownError    = -1
	WalletErrWrongAddress    = -2
	WalletErrDaemonIsBusy    = -3
	WalletErrGenericTransfer = -4
	WalletErrWrongPaymentID  = -5
	WalletErrTransferType    = -6
	WalletErrDenied          = -7
	WalletErrWrongTxID       = -8
	WalletErrWrongSignature  = -9
	WalletErrWrongKeyImage   = -10
	WalletErrWrongURI        = -11
	WalletErrWrongIndex      = -12
	WalletErrNotOpen         = -13
	WalletErrTxTooLarge      = -14
)

// JSON-RPC 2.0 protocol-level codes, handled before the wallet table.
const (
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
)

// ErrorKind identifies one failure class of a wallet RPC round trip.
// Callers branch on the kind rather than matching message strings.
type ErrorKind int

const (
	// ErrKindTransport covers network-level failures (connection refused,
	// DNS, timeout) and malformed response bodies. The request may or may
	// not have reached the daemon.
	ErrKindTransport ErrorKind = iota

	// ErrKindUnauthorized is HTTP 401 from the daemon.
	ErrKindUnauthorized

	// ErrKindStatusCode is any other non-200 HTTP status.
	ErrKindStatusCode

	// ErrKindMethodNotFound is JSON-RPC -32601.
	ErrKindMethodNotFound

	// ErrKindInvalidParams is JSON-RPC -32602.
	ErrKindInvalidParams

	// Wallet domain errors, one per daemon error code.
	ErrKindUnknownError
	ErrKindWrongAddress
	ErrKindDaemonIsBusy
	ErrKindGenericTransfer
	ErrKindWrongPaymentID
	ErrKindTransferType
	ErrKindDenied
	ErrKindWrongTxID
	ErrKindWrongSignature
	ErrKindWrongKeyImage
	ErrKindWrongURI
	ErrKindWrongIndex
	ErrKindNotOpen
	ErrKindTxTooLarge

	// ErrKindUnclassified is a server-signaled RPC error whose code is
	// not in the table.
	ErrKindUnclassified
)

var errorKindNames = map[ErrorKind]string{
	ErrKindTransport:       "transport failure",
	ErrKindUnauthorized:    "unauthorized",
	ErrKindStatusCode:      "unexpected status code",
	ErrKindMethodNotFound:  "method not found",
	ErrKindInvalidParams:   "invalid params",
	ErrKindUnknownError:    "unknown wallet error",
	ErrKindWrongAddress:    "wrong address",
	ErrKindDaemonIsBusy:    "daemon is busy",
	ErrKindGenericTransfer: "transfer error",
	ErrKindWrongPaymentID:  "wrong payment id",
	ErrKindTransferType:    "wrong transfer type",
	ErrKindDenied:          "denied",
	ErrKindWrongTxID:       "wrong transaction id",
	ErrKindWrongSignature:  "wrong signature",
	ErrKindWrongKeyImage:   "wrong key image",
	ErrKindWrongURI:        "wrong uri",
	ErrKindWrongIndex:      "wrong index",
	ErrKindNotOpen:         "wallet not open",
	ErrKindTxTooLarge:      "transaction too large",
	ErrKindUnclassified:    "unclassified rpc error",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unclassified rpc error"
}

// errorKindByCode maps daemon error codes to kinds. Append-only.
var errorKindByCode = map[int]ErrorKind{
	WalletErrUnknownError:    ErrKindUnknownError,
	WalletErrWrongAddress:    ErrKindWrongAddress,
	WalletErrDaemonIsBusy:    ErrKindDaemonIsBusy,
	WalletErrGenericTransfer: ErrKindGenericTransfer,
	WalletErrWrongPaymentID:  ErrKindWrongPaymentID,
	WalletErrTransferType:    ErrKindTransferType,
	WalletErrDenied:          ErrKindDenied,
	WalletErrWrongTxID:       ErrKindWrongTxID,
	WalletErrWrongSignature:  ErrKindWrongSignature,
	WalletErrWrongKeyImage:   ErrKindWrongKeyImage,
	WalletErrWrongURI:        ErrKindWrongURI,
	WalletErrWrongIndex:      ErrKindWrongIndex,
	WalletErrNotOpen:         ErrKindNotOpen,
	WalletErrTxTooLarge:      ErrKindTxTooLarge,
}

// Classify maps a daemon-assigned error code to its kind. Codes absent
// from the table return ErrKindUnclassified; Classify never panics.
func Classify(code int) ErrorKind {
	if kind, ok := errorKindByCode[code]; ok {
		return kind
	}
	return ErrKindUnclassified
}

// WalletError is the single error type returned for classified failures.
type WalletError struct {
	Kind    ErrorKind
	Code    int    // daemon error code, 0 when not server-signaled
	Status  int    // HTTP status, 0 when the failure precedes HTTP semantics
	Message string
	cause   error
}

func (e *WalletError) Error() string {
	switch {
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	case e.Code != 0:
		return fmt.Sprintf("%s (code %d): %s", e.Kind, e.Code, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *WalletError) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a *WalletError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var werr *WalletError
	if !errors.As(err, &werr) {
		return false
	}
	return werr.Kind == kind
}

func newTransportError(msg string, cause error) *WalletError {
	return &WalletError{Kind: ErrKindTransport, Message: msg, cause: cause}
}

func newStatusError(status int) *WalletError {
	if status == 401 {
		return &WalletError{
			Kind:    ErrKindUnauthorized,
			Status:  status,
			Message: "check RPC username and password",
		}
	}
	return &WalletError{
		Kind:    ErrKindStatusCode,
		Status:  status,
		Message: fmt.Sprintf("unexpected returned status code: %d", status),
	}
}

// newRPCError classifies a server-signaled error. The serialized request
// is included for the two protocol codes so the offending call can be
// identified from the message alone.
func newRPCError(code int, message string, request []byte) *WalletError {
	switch code {
	case rpcMethodNotFound:
		return &WalletError{
			Kind:    ErrKindMethodNotFound,
			Code:    code,
			Message: fmt.Sprintf("unexpected method while requesting the server: %s", request),
		}
	case rpcInvalidParams:
		return &WalletError{
			Kind:    ErrKindInvalidParams,
			Code:    code,
			Message: fmt.Sprintf("invalid params while requesting the server: %s", request),
		}
	}
	return &WalletError{Kind: Classify(code), Code: code, Message: message}
}
