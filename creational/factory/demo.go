package factory

import (
	"fmt"
	"io"
)

// Demo runs all three factory variants: simple factory with a deliberate
// unknown key, factory method across two exporters, and abstract factory
// across both widget families.
func Demo(w io.Writer) error {
	// Simple factory.
	for _, kind := range []string{"card", "bank-transfer", "bitcoin"} {
		m, err := NewPaymentMethod(kind)
		if err != nil {
			fmt.Fprintf(w, "rejected: %v\n", err)
			continue
		}
		fmt.Fprintln(w, m.Pay(2500))
	}

	// Factory method: one workflow, two deferred product choices.
	doc := Document{Title: "Release Notes", Body: "Nothing broke."}
	md := NewPublisher(func() Exporter { return MarkdownExporter{} })
	html := NewPublisher(func() Exporter { return HTMLExporter{} })
	fmt.Fprint(w, md.Publish(doc))
	fmt.Fprint(w, html.Publish(doc))

	// Abstract factory: the form renderer never names a family.
	for _, theme := range []string{"light", "dark"} {
		f, err := NewWidgetFactory(theme)
		if err != nil {
			return err
		}
		fmt.Fprint(w, RenderForm(f))
	}
	return nil
}
