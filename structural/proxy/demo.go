package proxy

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Demo runs the proxy demonstration: repeated reads showing cache behavior,
// a rejected write from a reader, and an admin write that flushes the cache.
// The simulated latency is kept tiny so the demo stays snappy.
func Demo(w io.Writer) error {
	ctx := context.Background()

	reader := NewDatabaseProxy(RoleReader, time.Millisecond)
	fmt.Fprintf(w, "database opened before first read: %v\n", reader.Opened())

	for i := 0; i < 2; i++ {
		v, err := reader.Get(ctx, "config.theme")
		if err != nil {
			return err
		}
		hits, misses := reader.Stats()
		fmt.Fprintf(w, "read config.theme=%q (hits=%d misses=%d)\n", v, hits, misses)
	}

	// The reader role is rejected before the real database is touched.
	if err := reader.Set(ctx, "config.theme", "light"); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}

	admin := NewDatabaseProxy(RoleAdmin, time.Millisecond)
	if _, err := admin.Get(ctx, "config.locale"); err != nil {
		return err
	}
	if err := admin.Set(ctx, "config.locale", "de-DE"); err != nil {
		return err
	}
	fmt.Fprintf(w, "cache after write: %d entries\n", len(admin.CachedKeys()))

	v, err := admin.Get(ctx, "config.locale")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "reread config.locale=%q\n", v)
	return nil
}
