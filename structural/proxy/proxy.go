// Package proxy demonstrates the Proxy pattern with a cached database
// front-end.
//
// The "real" database is expensive to open and slow to query (simulated with
// a timer), so clients talk to a DatabaseProxy instead. The proxy adds three
// things the real object knows nothing about:
//
//   - lazy construction: the database is opened on the first query, not when
//     the proxy is created;
//   - an access check: only the admin role may write;
//   - an unbounded read cache, invalidated wholesale on any write.
//
// Proxy and real database satisfy the same Database interface, so client code
// is unaware which one it is holding.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrAccessDenied is returned when a role other than admin writes.
	ErrAccessDenied = errors.New("proxy: write requires the admin role")

	// ErrNotFound is returned when a key has no value.
	ErrNotFound = errors.New("proxy: key not found")
)

// Role gates write access through the proxy.
type Role string

const (
	// RoleAdmin may read and write.
	RoleAdmin Role = "admin"

	// RoleReader may only read.
	RoleReader Role = "reader"
)

// Database is the subject interface shared by the real database and its
// proxy. Operations take a context because the real implementation simulates
// network latency and honors cancellation.
type Database interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// heavyDB is the real subject. Opening it and every query costs latency.
type heavyDB struct {
	latency time.Duration
	records map[string]string
}

// openHeavyDB simulates an expensive connection setup and returns the real
// database, pre-seeded so reads have something to find.
func openHeavyDB(ctx context.Context, latency time.Duration) (*heavyDB, error) {
	if err := wait(ctx, 2*latency); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &heavyDB{
		latency: latency,
		records: map[string]string{
			"config.theme":  "dark",
			"config.locale": "en-US",
		},
	}, nil
}

func (db *heavyDB) Get(ctx context.Context, key string) (string, error) {
	if err := wait(ctx, db.latency); err != nil {
		return "", err
	}
	v, ok := db.records[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, nil
}

func (db *heavyDB) Set(ctx context.Context, key, value string) error {
	if err := wait(ctx, db.latency); err != nil {
		return err
	}
	db.records[key] = value
	return nil
}

// wait blocks for d or until ctx is cancelled, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// DatabaseProxy is the proxy subject. It defers opening the real database
// until first use, enforces the role gate on writes, and caches reads.
type DatabaseProxy struct {
	role    Role
	latency time.Duration

	real  *heavyDB
	cache map[string]string

	// stats are exposed so demos and tests can observe the proxy working.
	hits   int
	misses int
}

// NewDatabaseProxy creates a proxy for the given role. The real database is
// not opened yet; latency controls the simulated cost of every real
// operation (tests pass zero).
func NewDatabaseProxy(role Role, latency time.Duration) *DatabaseProxy {
	return &DatabaseProxy{
		role:    role,
		latency: latency,
		cache:   make(map[string]string),
	}
}

// Opened reports whether the real database has been constructed yet.
func (p *DatabaseProxy) Opened() bool { return p.real != nil }

// Stats returns the cache hit and miss counters.
func (p *DatabaseProxy) Stats() (hits, misses int) { return p.hits, p.misses }

// CachedKeys returns the currently cached keys in sorted order.
func (p *DatabaseProxy) CachedKeys() []string {
	keys := make([]string, 0, len(p.cache))
	for k := range p.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ensure lazily opens the real database on first use.
func (p *DatabaseProxy) ensure(ctx context.Context) error {
	if p.real != nil {
		return nil
	}
	db, err := openHeavyDB(ctx, p.latency)
	if err != nil {
		return err
	}
	p.real = db
	return nil
}

// Get serves from the cache when possible, otherwise queries the real
// database and remembers the answer. Misses for absent keys are not cached.
func (p *DatabaseProxy) Get(ctx context.Context, key string) (string, error) {
	if v, ok := p.cache[key]; ok {
		p.hits++
		return v, nil
	}
	if err := p.ensure(ctx); err != nil {
		return "", err
	}
	p.misses++
	v, err := p.real.Get(ctx, key)
	if err != nil {
		return "", err
	}
	p.cache[key] = v
	return v, nil
}

// Set writes through to the real database after the role check, then drops
// the entire cache. Wholesale invalidation is crude but keeps the cache
// trivially consistent.
func (p *DatabaseProxy) Set(ctx context.Context, key, value string) error {
	if p.role != RoleAdmin {
		return fmt.Errorf("%w (role %q)", ErrAccessDenied, p.role)
	}
	if err := p.ensure(ctx); err != nil {
		return err
	}
	if err := p.real.Set(ctx, key, value); err != nil {
		return err
	}
	p.cache = make(map[string]string)
	return nil
}
