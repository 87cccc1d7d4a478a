package singleton

import (
	"fmt"
	"io"
)

// Demo runs the singleton demonstration: repeated accessor calls yield the
// identical instance, writes through one handle are visible through the
// other, and a second scope is fully independent.
func Demo(w io.Writer) error {
	scope := NewScope()
	fmt.Fprintf(w, "built before first access: %v\n", scope.Built())

	a := scope.Store()
	b := scope.Store()
	fmt.Fprintf(w, "same instance: %v\n", a == b)

	a.Set("theme", "dark")
	theme, _ := b.Get("theme")
	fmt.Fprintf(w, "written via a, read via b: %q\n", theme)

	other := NewScope().Store()
	_, ok := other.Get("theme")
	fmt.Fprintf(w, "leaked into a fresh scope: %v\n", ok)
	return nil
}
