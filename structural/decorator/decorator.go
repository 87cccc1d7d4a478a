// Package decorator demonstrates the Decorator pattern with a coffee-order
// domain.
//
// A Beverage is wrapped by condiment decorators, each forwarding to the inner
// beverage and adding a fixed cost increment and a description suffix. The
// resulting object chain behaves like a single beverage whose cost is the base
// cost plus the sum of all increments, and whose description is the base
// description with each condiment appended in application order.
//
// Instead of subclassing an abstract decorator base class, each condiment is a
// small value implementing the Beverage interface and holding its inner
// Beverage by composition. The chain is assembled by plain function calls:
//
//	b := decorator.WithWhip(decorator.WithMilk(decorator.NewEspresso()))
package decorator

import "fmt"

// Beverage is the component interface shared by base drinks and condiment
// decorators. Cost is expressed in cents to keep arithmetic exact.
type Beverage interface {
	// Description returns the human-readable order line for the beverage,
	// including every condiment applied so far.
	Description() string

	// Cost returns the total price in cents.
	Cost() int
}

// drink is a concrete base beverage. All base drinks share this one struct;
// there is no behavioral difference between them beyond name and price.
type drink struct {
	name  string
	price int
}

func (d drink) Description() string { return d.name }
func (d drink) Cost() int           { return d.price }

// NewEspresso returns a plain espresso base beverage.
func NewEspresso() Beverage { return drink{name: "espresso", price: 250} }

// NewHouseBlend returns the house blend base beverage.
func NewHouseBlend() Beverage { return drink{name: "house blend", price: 180} }

// NewDrink returns a custom base beverage with the given name and price in
// cents. Useful for tests and for menus defined at runtime.
func NewDrink(name string, priceCents int) Beverage {
	return drink{name: name, price: priceCents}
}

// condiment is the single decorator implementation. Every condiment wraps an
// inner Beverage and contributes a fixed suffix and surcharge. Keeping one
// struct instead of one type per condiment avoids a class hierarchy while
// preserving the pattern's shape: the wrapper satisfies the same interface as
// the thing it wraps.
type condiment struct {
	inner     Beverage
	suffix    string
	surcharge int
}

// Description appends this condiment's suffix after the inner description,
// so suffixes accumulate in application order.
func (c condiment) Description() string {
	return fmt.Sprintf("%s + %s", c.inner.Description(), c.suffix)
}

// Cost adds this condiment's surcharge to the inner cost.
func (c condiment) Cost() int {
	return c.inner.Cost() + c.surcharge
}

// Wrap decorates b with an arbitrary condiment. The exported condiment
// constructors below are thin wrappers around it.
func Wrap(b Beverage, suffix string, surchargeCents int) Beverage {
	return condiment{inner: b, suffix: suffix, surcharge: surchargeCents}
}

// WithMilk decorates b with steamed milk.
func WithMilk(b Beverage) Beverage { return Wrap(b, "milk", 50) }

// WithMocha decorates b with mocha syrup.
func WithMocha(b Beverage) Beverage { return Wrap(b, "mocha", 70) }

// WithWhip decorates b with whipped cream.
func WithWhip(b Beverage) Beverage { return Wrap(b, "whip", 60) }
