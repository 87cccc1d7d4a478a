package decorator

import (
	"fmt"
	"io"
)

// Demo runs the decorator demonstration: it builds two orders of increasing
// decoration depth and writes each order line and total to w.
//
// This is the package's client code. It only ever talks to the Beverage
// interface; it cannot tell a bare espresso from a triple-decorated one.
func Demo(w io.Writer) error {
	orders := []Beverage{
		NewEspresso(),
		WithMilk(NewHouseBlend()),
		WithWhip(WithMocha(WithMilk(NewEspresso()))),
	}

	for _, b := range orders {
		if _, err := fmt.Fprintf(w, "%-40s $%d.%02d\n", b.Description(), b.Cost()/100, b.Cost()%100); err != nil {
			return err
		}
	}
	return nil
}
