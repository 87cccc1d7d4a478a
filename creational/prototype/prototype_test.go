package prototype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUser_Clone_DeepCopy verifies the clone shares no mutable structure
// with the original: mutating the clone's slice and map leaves the original
// untouched, and vice versa.
func TestUser_Clone_DeepCopy(t *testing.T) {
	original := User{
		Name:     "template",
		Roles:    []string{"read"},
		Settings: map[string]string{"theme": "system"},
		Quota:    10,
	}

	clone := original.Clone()
	clone.Roles[0] = "mutated"
	clone.Roles = append(clone.Roles, "extra")
	clone.Settings["theme"] = "dark"

	assert.Equal(t, []string{"read"}, original.Roles)
	assert.Equal(t, "system", original.Settings["theme"])

	original.Settings["injected"] = "x"
	assert.NotContains(t, clone.Settings, "injected")
}

// TestUser_Clone_FreshID verifies each clone gets its own non-empty ID.
func TestUser_Clone_FreshID(t *testing.T) {
	template := User{Name: "t"}
	a := template.Clone()
	b := template.Clone()

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, template.ID)
}

// TestRegistry_Spawn verifies clone-then-override: the spawned user carries
// the template defaults plus the overrides, in application order.
func TestRegistry_Spawn(t *testing.T) {
	registry := DefaultRegistry()

	u, err := registry.Spawn("member",
		WithName("ada"),
		WithRole("billing"),
		WithSetting("theme", "dark"),
		WithQuota(50),
	)
	require.NoError(t, err)

	assert.Equal(t, "ada", u.Name)
	assert.Equal(t, []string{"read", "billing"}, u.Roles)
	assert.Equal(t, "dark", u.Settings["theme"])
	assert.Equal(t, "weekly", u.Settings["notifications"]) // template default
	assert.Equal(t, 50, u.Quota)
}

// TestRegistry_Spawn_DoesNotMutateTemplate verifies spawned users cannot
// reach back into the registry's templates.
func TestRegistry_Spawn_DoesNotMutateTemplate(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Spawn("member", WithRole("corrupting"), WithSetting("theme", "broken"))
	require.NoError(t, err)

	fresh, err := registry.Spawn("member")
	require.NoError(t, err)
	assert.Equal(t, []string{"read"}, fresh.Roles)
	assert.Equal(t, "system", fresh.Settings["theme"])
}

// TestRegistry_Spawn_Unknown verifies the typed error for a missing key.
func TestRegistry_Spawn_Unknown(t *testing.T) {
	_, err := DefaultRegistry().Spawn("superuser")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.ErrorContains(t, err, "admin")
}

// TestRegistry_Register_Duplicate verifies a key cannot be registered twice.
func TestRegistry_Register_Duplicate(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("a", User{Name: "a"}))
	err := registry.Register("a", User{Name: "other"})
	assert.ErrorIs(t, err, ErrDuplicateTemplate)
}

// TestDemo runs the demonstration and checks both spawned users and the
// rejection line.
func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	out := buf.String()
	assert.Contains(t, out, "templates: admin, member")
	assert.Contains(t, out, "ada    roles=[read billing] quota=10 theme=system")
	assert.Contains(t, out, "grace  roles=[read] quota=50 theme=dark")
	assert.Contains(t, out, "rejected: ")
}
