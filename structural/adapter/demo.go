package adapter

import (
	_ "embed"
	"fmt"
	"io"
)

// legacyExport is a captured legacy gateway export. It is real-world JSONC:
// comments and a trailing comma, exactly what the legacy system emits.
//
//go:embed testdata/legacy_export.jsonc
var legacyExport []byte

// Demo runs the adapter demonstration: both sources are consumed through the
// one PaymentProcessor interface and rendered identically.
func Demo(w io.Writer) error {
	charge := ModernCharge{ID: "ch_901", Total: 12, Currency: "eur"}
	charge.Customer.ID = "cus_7"
	modern := NewModernClient(charge)

	processors := []PaymentProcessor{
		NewLegacyGatewayAdapter(legacyExport),
		NewModernClientAdapter(modern),
	}

	for _, p := range processors {
		charges, err := p.Charges()
		if err != nil {
			return err
		}
		for _, c := range charges {
			if _, err := fmt.Fprintf(w, "%-14s %4d %s  %s\n", c.Reference, c.Amount, c.Currency, c.Customer); err != nil {
				return err
			}
		}
	}
	return nil
}
