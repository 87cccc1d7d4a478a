package prototype

import (
	"fmt"
	"io"
	"strings"
)

// Demo runs the prototype demonstration: two users spawned from the same
// template diverge through overrides without affecting each other or the
// template.
func Demo(w io.Writer) error {
	registry := DefaultRegistry()
	fmt.Fprintf(w, "templates: %s\n", strings.Join(registry.Keys(), ", "))

	ada, err := registry.Spawn("member",
		WithName("ada"),
		WithEmail("ada@example.com"),
		WithRole("billing"),
	)
	if err != nil {
		return err
	}

	grace, err := registry.Spawn("member",
		WithName("grace"),
		WithEmail("grace@example.com"),
		WithSetting("theme", "dark"),
		WithQuota(50),
	)
	if err != nil {
		return err
	}

	for _, u := range []User{ada, grace} {
		fmt.Fprintf(w, "%-6s roles=%v quota=%d theme=%s\n",
			u.Name, u.Roles, u.Quota, u.Settings["theme"])
	}

	// The unknown-template error path.
	if _, err := registry.Spawn("superuser"); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}
	return nil
}
