package wallet

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDestinations = []Destination{{
	Amount:  10000000,
	Address: "A135xq3GVMdU5qtAm4hN7zjPgz8bRaiSUQmtuDdjZ6CgXayvQruJy3WPe95qj873JhK4YdTQjoR39Leg6esznQk8PckhjRN",
}}

func TestTransfer(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"transfer": `{"fee":20141160000,"tx_blob":"","tx_hash":"04cdf47d7927895cde9d3ddf687f70c68bd6fbbd4a21bfd1c669bb3b4b670823","tx_key":"150926e63b78f788993cb0efd111c95026ced686735fe0daf3b5cff63fd72b0c"}`,
	})

	result, err := client.Transfer(context.Background(), testDestinations, &TransferOptions{
		Mixin:    Uint64(4),
		GetTxKey: Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(20141160000), result.Fee)
	assert.Equal(t, "04cdf47d7927895cde9d3ddf687f70c68bd6fbbd4a21bfd1c669bb3b4b670823", result.TxHash)
	assert.NotEmpty(t, result.TxKey)

	assert.JSONEq(t, `{
		"destinations":[{"amount":10000000,"address":"A135xq3GVMdU5qtAm4hN7zjPgz8bRaiSUQmtuDdjZ6CgXayvQruJy3WPe95qj873JhK4YdTQjoR39Leg6esznQk8PckhjRN"}],
		"mixin":4,
		"get_tx_key":true
	}`, string(seen["transfer"]))
}

func TestTransferNilOptions(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"transfer": `{"tx_hash":"aa","fee":1}`,
	})

	_, err := client.Transfer(context.Background(), testDestinations, nil)
	require.NoError(t, err)

	// Only the destinations survive filtering.
	assert.JSONEq(t, `{
		"destinations":[{"amount":10000000,"address":"A135xq3GVMdU5qtAm4hN7zjPgz8bRaiSUQmtuDdjZ6CgXayvQruJy3WPe95qj873JhK4YdTQjoR39Leg6esznQk8PckhjRN"}]
	}`, string(seen["transfer"]))
}

func TestTransferSplit(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"transfer_split": `{"amount_list":[10000000],"fee_list":[20140120000],"tx_hash_list":["b2bfcffa3c69d9e2cf1bd11bd08929a8353cd72ff1c3b85ed3d049c2aea99264"],"tx_key_list":["f4fc52c2f09661ac2b1c5767889aac2d4636989cafa29ffb29340207080f8a07"]}`,
	})

	result, err := client.TransferSplit(context.Background(), testDestinations, &TransferSplitOptions{
		PaymentID:    String(""),
		NewAlgorithm: Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{10000000}, result.AmountList)
	assert.Equal(t, []uint64{20140120000}, result.FeeList)
	assert.Len(t, result.TxHashList, 1)

	assert.JSONEq(t, `{
		"destinations":[{"amount":10000000,"address":"A135xq3GVMdU5qtAm4hN7zjPgz8bRaiSUQmtuDdjZ6CgXayvQruJy3WPe95qj873JhK4YdTQjoR39Leg6esznQk8PckhjRN"}],
		"payment_id":"",
		"new_algorithm":false
	}`, string(seen["transfer_split"]))
}

func TestTransferSplitOmittedLists(t *testing.T) {
	// The daemon may leave out lists it has nothing for; callers get
	// empty slices, not nil.
	client, _ := methodServer(t, map[string]string{
		"transfer_split": `{"tx_hash_list":["aa"]}`,
	})

	result, err := client.TransferSplit(context.Background(), testDestinations, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa"}, result.TxHashList)
	assert.NotNil(t, result.AmountList)
	assert.Empty(t, result.AmountList)
	assert.NotNil(t, result.FeeList)
	assert.Empty(t, result.FeeList)
	assert.NotNil(t, result.TxKeyList)
	assert.Empty(t, result.TxKeyList)
}

func TestSweepDust(t *testing.T) {
	client, _ := methodServer(t, map[string]string{
		"sweep_dust": `{"tx_hash_list":["0a4562f0bfc4c5e7123e0ff212b1ca810c76a95fa45b18a7d7c4f123456caa12"]}`,
	})

	hashes, err := client.SweepDust(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0a4562f0bfc4c5e7123e0ff212b1ca810c76a95fa45b18a7d7c4f123456caa12"}, hashes)
}

func TestSweepDustNoDust(t *testing.T) {
	// A wallet with nothing to sweep omits the list entirely.
	client, _ := methodServer(t, map[string]string{
		"sweep_dust": `{}`,
	})

	hashes, err := client.SweepDust(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, hashes)
	assert.Empty(t, hashes)
}

func TestSweepAll(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"sweep_all": `{"tx_hash_list":["aa"],"amount_list":[500],"fee_list":[10]}`,
	})

	result, err := client.SweepAll(context.Background(), "9address", &SweepAllOptions{
		BelowAmount: Uint64(1000000),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"aa"}, result.TxHashList)
	assert.NotNil(t, result.TxKeyList)
	assert.Empty(t, result.TxKeyList)

	assert.JSONEq(t, `{"address":"9address","below_amount":1000000}`, string(seen["sweep_all"]))
}

func TestTransferInsufficientFunds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respondError(w, -4, "not enough money")
	})

	_, err := client.Transfer(context.Background(), testDestinations, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrKindGenericTransfer))
	assert.Contains(t, err.Error(), "not enough money")
}
