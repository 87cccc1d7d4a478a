// Package factory demonstrates the three factory variants with small
// domains: a simple factory constructing payment methods from a string key,
// a factory method deferring document-exporter construction to the caller,
// and an abstract factory producing whole families of themed UI widgets.
//
// Each variant lives in its own file (simple.go, method.go, abstract.go);
// demo.go runs all three.
package factory

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by the simple factory for an unregistered key.
var ErrUnknownKind = errors.New("factory: unknown payment method kind")

// PaymentMethod is the product of the simple factory.
type PaymentMethod interface {
	// Kind returns the method's registry key.
	Kind() string

	// Pay returns a human-readable confirmation for the given amount in
	// cents, including the method's fee.
	Pay(amountCents int) string

	// FeeCents returns the flat fee this method charges per payment.
	FeeCents() int
}

type card struct{}

func (card) Kind() string  { return "card" }
func (card) FeeCents() int { return 30 }
func (c card) Pay(amount int) string {
	return fmt.Sprintf("charged %d cents to card (+%d fee)", amount, c.FeeCents())
}

type paypal struct{}

func (paypal) Kind() string  { return "paypal" }
func (paypal) FeeCents() int { return 55 }
func (p paypal) Pay(amount int) string {
	return fmt.Sprintf("sent %d cents via paypal (+%d fee)", amount, p.FeeCents())
}

type bankTransfer struct{}

func (bankTransfer) Kind() string  { return "bank-transfer" }
func (bankTransfer) FeeCents() int { return 0 }
func (b bankTransfer) Pay(amount int) string {
	return fmt.Sprintf("queued bank transfer of %d cents", amount)
}

// NewPaymentMethod is the simple factory: one switch mapping keys to
// products. An unknown key is an error, never a nil product.
func NewPaymentMethod(kind string) (PaymentMethod, error) {
	switch kind {
	case "card":
		return card{}, nil
	case "paypal":
		return paypal{}, nil
	case "bank-transfer":
		return bankTransfer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: card, paypal, bank-transfer)", ErrUnknownKind, kind)
	}
}
