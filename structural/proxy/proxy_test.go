package proxy

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProxy returns a proxy with zero simulated latency so tests run fast.
func newTestProxy(role Role) *DatabaseProxy {
	return NewDatabaseProxy(role, 0)
}

// TestDatabaseProxy_LazyOpen verifies the real database is constructed on
// first use, not at proxy creation.
func TestDatabaseProxy_LazyOpen(t *testing.T) {
	p := newTestProxy(RoleReader)
	assert.False(t, p.Opened())

	_, err := p.Get(context.Background(), "config.theme")
	require.NoError(t, err)
	assert.True(t, p.Opened())
}

// TestDatabaseProxy_CacheHit verifies a repeated read is served from the
// cache: one miss, then hits.
func TestDatabaseProxy_CacheHit(t *testing.T) {
	p := newTestProxy(RoleReader)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		v, err := p.Get(ctx, "config.theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	}

	hits, misses := p.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, misses)
}

// TestDatabaseProxy_AccessCheck verifies only the admin role may write, and
// that a rejected write does not open the database.
func TestDatabaseProxy_AccessCheck(t *testing.T) {
	p := newTestProxy(RoleReader)
	err := p.Set(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, p.Opened())
}

// TestDatabaseProxy_WriteInvalidatesCache verifies any write flushes the
// whole cache, so the next read goes to the real database and sees the new
// value.
func TestDatabaseProxy_WriteInvalidatesCache(t *testing.T) {
	p := newTestProxy(RoleAdmin)
	ctx := context.Background()

	_, err := p.Get(ctx, "config.theme")
	require.NoError(t, err)
	_, err = p.Get(ctx, "config.locale")
	require.NoError(t, err)
	require.Len(t, p.CachedKeys(), 2)

	require.NoError(t, p.Set(ctx, "config.theme", "light"))
	assert.Empty(t, p.CachedKeys())

	v, err := p.Get(ctx, "config.theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

// TestDatabaseProxy_NotFound verifies a missing key errors and is not cached.
func TestDatabaseProxy_NotFound(t *testing.T) {
	p := newTestProxy(RoleReader)
	_, err := p.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, p.CachedKeys())
}

// TestDatabaseProxy_ContextCancellation verifies simulated latency honors
// context cancellation instead of sleeping through it.
func TestDatabaseProxy_ContextCancellation(t *testing.T) {
	p := NewDatabaseProxy(RoleReader, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Get(ctx, "config.theme")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDemo runs the demonstration with its small real latency and checks the
// transcript shows lazy opening, cache stats, and the rejected write.
func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	out := buf.String()
	assert.Contains(t, out, "database opened before first read: false")
	assert.Contains(t, out, "(hits=0 misses=1)")
	assert.Contains(t, out, "(hits=1 misses=1)")
	assert.Contains(t, out, "rejected: ")
	assert.Contains(t, out, "cache after write: 0 entries")
	assert.Contains(t, out, `reread config.locale="de-DE"`)
}
