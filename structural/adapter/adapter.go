// Package adapter demonstrates the Adapter pattern with a payment domain.
//
// The billing code wants one target interface, PaymentProcessor, expressed in
// the house vocabulary: charges in whole currency units with ISO currency
// codes. Two incompatible sources exist:
//
//   - a legacy gateway whose exports are JSONC files (comments included) with
//     snake_case fields and amounts in cents;
//   - a modern client whose charge type is close to ours but names and nests
//     its fields differently.
//
// An adapter per source remaps fields onto the target Charge type. Neither
// source is modified; the billing code never learns they exist.
package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrMissingMapping is returned when a source record lacks a field the target
// interface requires.
var ErrMissingMapping = errors.New("adapter: source record is missing a required field")

// Charge is the target representation: whole currency units, upper-case ISO
// currency code.
type Charge struct {
	Reference string
	Amount    int64
	Currency  string
	Customer  string
}

// PaymentProcessor is the target interface the billing code consumes.
type PaymentProcessor interface {
	// Charges returns every charge known to the source, already translated
	// into the target vocabulary.
	Charges() ([]Charge, error)
}

// legacyRecord mirrors one entry of the legacy gateway's JSONC export.
// Amounts are in cents and fields are snake_case; both conventions stop at
// this struct.
type legacyRecord struct {
	TxnID       string `json:"txn_id"`
	AmountCents int64  `json:"amount_cents"`
	CurrencyISO string `json:"currency_iso"`
	PayerEmail  string `json:"payer_email"`
}

// LegacyGatewayAdapter adapts a raw legacy JSONC export to PaymentProcessor.
type LegacyGatewayAdapter struct {
	raw []byte
}

// NewLegacyGatewayAdapter wraps a legacy export. The bytes may contain
// comments and trailing commas; they are stripped before JSON parsing.
func NewLegacyGatewayAdapter(export []byte) *LegacyGatewayAdapter {
	return &LegacyGatewayAdapter{raw: export}
}

// Charges parses the legacy export and remaps each record. Cents become
// whole units (truncating is fine here: the legacy gateway only ever wrote
// whole-unit amounts), currency codes are upper-cased, and the payer email
// becomes the customer reference.
func (a *LegacyGatewayAdapter) Charges() ([]Charge, error) {
	clean := jsonc.ToJSON(a.raw)

	var records []legacyRecord
	if err := json.Unmarshal(clean, &records); err != nil {
		return nil, fmt.Errorf("parse legacy export: %w", err)
	}

	out := make([]Charge, 0, len(records))
	for i, r := range records {
		if r.TxnID == "" {
			return nil, fmt.Errorf("%w: txn_id (record %d)", ErrMissingMapping, i)
		}
		if r.CurrencyISO == "" {
			return nil, fmt.Errorf("%w: currency_iso (record %d)", ErrMissingMapping, i)
		}
		out = append(out, Charge{
			Reference: "legacy-" + r.TxnID,
			Amount:    r.AmountCents / 100,
			Currency:  strings.ToUpper(r.CurrencyISO),
			Customer:  r.PayerEmail,
		})
	}
	return out, nil
}

// ModernCharge is the modern client's native type. It is close to Charge but
// not compatible: the amount is a float, the currency is lower-case, and the
// customer is nested.
type ModernCharge struct {
	ID       string
	Total    float64
	Currency string
	Customer struct {
		ID    string
		Email string
	}
}

// ModernClient stands in for the modern payment provider's SDK client.
type ModernClient struct {
	charges []ModernCharge
}

// NewModernClient returns a client holding the given charges.
func NewModernClient(charges ...ModernCharge) *ModernClient {
	return &ModernClient{charges: charges}
}

// ListCharges returns the charges in the client's own vocabulary.
func (c *ModernClient) ListCharges() []ModernCharge { return c.charges }

// ModernClientAdapter adapts a ModernClient to PaymentProcessor.
type ModernClientAdapter struct {
	client *ModernClient
}

// NewModernClientAdapter wraps a modern client.
func NewModernClientAdapter(client *ModernClient) *ModernClientAdapter {
	return &ModernClientAdapter{client: client}
}

// Charges remaps each modern charge onto the target type, preferring the
// customer ID over the email when both are present.
func (a *ModernClientAdapter) Charges() ([]Charge, error) {
	native := a.client.ListCharges()
	out := make([]Charge, 0, len(native))
	for i, m := range native {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: id (charge %d)", ErrMissingMapping, i)
		}
		customer := m.Customer.ID
		if customer == "" {
			customer = m.Customer.Email
		}
		if customer == "" {
			return nil, fmt.Errorf("%w: customer (charge %s)", ErrMissingMapping, m.ID)
		}
		out = append(out, Charge{
			Reference: "modern-" + m.ID,
			Amount:    int64(m.Total),
			Currency:  strings.ToUpper(m.Currency),
			Customer:  customer,
		})
	}
	return out, nil
}
