package builder

import (
	"fmt"
	"io"
)

// Demo runs the builder demonstration: a hand-assembled car, every director
// preset, and a build that fails validation.
func Demo(w io.Writer) error {
	custom, err := NewCarBuilder().
		Model("kit car").
		Seats(1).
		Engine(EnginePetrol).
		TripComputer().
		Build()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "custom: %s\n", custom)

	director, err := NewDirector()
	if err != nil {
		return err
	}
	for _, name := range director.Presets() {
		car, err := director.Construct(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-7s %s\n", name+":", car)
	}

	// A car without an engine never leaves the builder.
	if _, err := NewCarBuilder().Model("ghost").Seats(2).Build(); err != nil {
		fmt.Fprintf(w, "rejected: incomplete configuration\n")
	}
	return nil
}
