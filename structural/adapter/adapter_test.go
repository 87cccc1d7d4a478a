package adapter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLegacyGatewayAdapter_Charges verifies field remapping from the legacy
// JSONC export: cents to whole units, snake_case to the target vocabulary,
// and comment stripping.
func TestLegacyGatewayAdapter_Charges(t *testing.T) {
	export := []byte(`
	// nightly export
	[
		{"txn_id": "1", "amount_cents": 9900, "currency_iso": "gbp", "payer_email": "a@example.com"},
	]`)

	charges, err := NewLegacyGatewayAdapter(export).Charges()
	require.NoError(t, err)
	require.Len(t, charges, 1)

	assert.Equal(t, Charge{
		Reference: "legacy-1",
		Amount:    99,
		Currency:  "GBP",
		Customer:  "a@example.com",
	}, charges[0])
}

// TestLegacyGatewayAdapter_MissingMapping verifies a record without the
// fields the target requires is an error, not a silent zero value.
func TestLegacyGatewayAdapter_MissingMapping(t *testing.T) {
	tests := []struct {
		name   string
		export string
	}{
		{"no txn_id", `[{"amount_cents": 100, "currency_iso": "eur"}]`},
		{"no currency", `[{"txn_id": "9", "amount_cents": 100}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLegacyGatewayAdapter([]byte(tt.export)).Charges()
			assert.ErrorIs(t, err, ErrMissingMapping)
		})
	}
}

// TestLegacyGatewayAdapter_BadJSON verifies malformed input surfaces a parse
// error rather than a panic or empty result.
func TestLegacyGatewayAdapter_BadJSON(t *testing.T) {
	_, err := NewLegacyGatewayAdapter([]byte(`{not json`)).Charges()
	assert.Error(t, err)
	assert.ErrorContains(t, err, "parse legacy export")
}

// TestModernClientAdapter_Charges verifies the modern remapping, including
// the customer ID/email preference.
func TestModernClientAdapter_Charges(t *testing.T) {
	withID := ModernCharge{ID: "ch_1", Total: 12.0, Currency: "eur"}
	withID.Customer.ID = "cus_1"
	withID.Customer.Email = "ignored@example.com"

	emailOnly := ModernCharge{ID: "ch_2", Total: 7.0, Currency: "usd"}
	emailOnly.Customer.Email = "b@example.com"

	charges, err := NewModernClientAdapter(NewModernClient(withID, emailOnly)).Charges()
	require.NoError(t, err)
	require.Len(t, charges, 2)

	assert.Equal(t, "modern-ch_1", charges[0].Reference)
	assert.Equal(t, "cus_1", charges[0].Customer)
	assert.Equal(t, int64(12), charges[0].Amount)
	assert.Equal(t, "EUR", charges[0].Currency)
	assert.Equal(t, "b@example.com", charges[1].Customer)
}

// TestModernClientAdapter_MissingCustomer verifies a charge without any
// customer reference is rejected.
func TestModernClientAdapter_MissingCustomer(t *testing.T) {
	anon := ModernCharge{ID: "ch_3", Total: 1, Currency: "eur"}
	_, err := NewModernClientAdapter(NewModernClient(anon)).Charges()
	assert.ErrorIs(t, err, ErrMissingMapping)
}

// TestDemo runs the demonstration against the embedded fixture and checks
// both sources appear in the shared format.
func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	out := buf.String()
	assert.Contains(t, out, "legacy-84721")
	assert.Contains(t, out, "42 EUR")
	assert.Contains(t, out, "modern-ch_901")
	assert.Contains(t, out, "cus_7")
}
