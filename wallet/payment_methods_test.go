package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPayments(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"get_payments": `{"payments":[{"unlock_time":0,"amount":1000000000,"tx_hash":"db3870905ce3c8ca349e224688c344371addca7be4eb36d5dbc61600c8f75726","block_height":1157951,"payment_id":"fdfcfd993482b58b"}]}`,
	})

	payments, err := client.GetPayments(context.Background(), "fdfcfd993482b58b")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, uint64(1000000000), payments[0].Amount)
	assert.Equal(t, uint64(1157951), payments[0].BlockHeight)
	assert.Equal(t, "fdfcfd993482b58b", payments[0].PaymentID)

	assert.JSONEq(t, `{"payment_id":"fdfcfd993482b58b"}`, string(seen["get_payments"]))
}

func TestGetPaymentsNone(t *testing.T) {
	client, _ := methodServer(t, map[string]string{
		"get_payments": `{}`,
	})

	payments, err := client.GetPayments(context.Background(), "94dd4c2613f5919d")
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestGetBulkPayments(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"get_bulk_payments": `{"payments":[{"amount":1000000000,"payment_id":"fdfcfd993482b58b","block_height":1157951}]}`,
	})

	payments, err := client.GetBulkPayments(context.Background(), []string{"fdfcfd993482b58b"}, 1157950)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	assert.JSONEq(t, `{"payment_ids":["fdfcfd993482b58b"],"min_block_height":1157950}`,
		string(seen["get_bulk_payments"]))
}

func TestGetBulkPaymentsNilMeansAll(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"get_bulk_payments": `{}`,
	})

	payments, err := client.GetBulkPayments(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, payments)

	// A nil id list is promoted to an explicit empty list, and height 0
	// is set, not unset.
	assert.JSONEq(t, `{"payment_ids":[],"min_block_height":0}`, string(seen["get_bulk_payments"]))
}

func TestIncomingTransfers(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"incoming_transfers": `{"transfers":[
			{"amount":30000,"global_index":4593,"spent":false,"tx_hash":"0a4562f0bfc4c5e7123e0ff212b1ca810c76a95fa45b18a7d7c4f123456caa12","tx_size":606},
			{"amount":5000000,"global_index":23572,"spent":true,"tx_hash":"1a4567f0afc7e5e7123e0aa192b2ca101c75a95ba12b53a1d7c4f871234caa11","tx_size":606}
		]}`,
	})

	transfers, err := client.IncomingTransfers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, uint64(4593), transfers[0].GlobalIndex)
	assert.True(t, transfers[1].Spent)

	// Empty type defaults to "all".
	assert.JSONEq(t, `{"transfer_type":"all"}`, string(seen["incoming_transfers"]))
}

func TestIncomingTransfersNone(t *testing.T) {
	client, seen := methodServer(t, map[string]string{
		"incoming_transfers": `{}`,
	})

	transfers, err := client.IncomingTransfers(context.Background(), TransferUnavailable)
	require.NoError(t, err)
	assert.NotNil(t, transfers)
	assert.Empty(t, transfers)
	assert.JSONEq(t, `{"transfer_type":"unavailable"}`, string(seen["incoming_transfers"]))
}
