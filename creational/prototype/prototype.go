// Package prototype demonstrates the Prototype pattern with a user-template
// domain.
//
// Provisioning a user from scratch means knowing every default: roles,
// quotas, notification settings. Instead, a Registry holds fully configured
// template users under string keys, and Spawn clones a template and applies
// per-user overrides.
//
// Clone is an explicit, typed deep copy. Roles and Settings are copied
// element by element so a clone never shares mutable structure with its
// template — the classic prototype bug this package exists to demonstrate
// the absence of.
package prototype

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrUnknownTemplate is returned by Spawn for an unregistered key.
var ErrUnknownTemplate = errors.New("prototype: unknown template")

// ErrDuplicateTemplate is returned when registering a key twice.
var ErrDuplicateTemplate = errors.New("prototype: template already registered")

// User is the prototype product. IDs are assigned at clone time, so
// templates themselves carry an empty ID.
type User struct {
	ID       string
	Name     string
	Email    string
	Roles    []string
	Settings map[string]string
	Quota    int
}

// Clone returns a deep copy of u with a fresh unique ID. Mutating the
// clone's roles or settings never affects the original.
func (u User) Clone() User {
	c := u
	c.ID = uuid.New().String()

	c.Roles = make([]string, len(u.Roles))
	copy(c.Roles, u.Roles)

	c.Settings = make(map[string]string, len(u.Settings))
	for k, v := range u.Settings {
		c.Settings[k] = v
	}
	return c
}

// Override mutates a freshly cloned user before Spawn returns it.
type Override func(*User)

// WithName sets the clone's display name.
func WithName(name string) Override {
	return func(u *User) { u.Name = name }
}

// WithEmail sets the clone's email address.
func WithEmail(email string) Override {
	return func(u *User) { u.Email = email }
}

// WithRole appends a role to the clone.
func WithRole(role string) Override {
	return func(u *User) { u.Roles = append(u.Roles, role) }
}

// WithSetting sets one settings key on the clone.
func WithSetting(key, value string) Override {
	return func(u *User) { u.Settings[key] = value }
}

// WithQuota replaces the clone's quota.
func WithQuota(quota int) Override {
	return func(u *User) { u.Quota = quota }
}

// Registry maps string keys to template users. Templates are stored by
// value and cloned on the way out, so registry contents cannot be mutated
// through spawned users.
type Registry struct {
	templates map[string]User
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]User)}
}

// Register stores template under key. Re-registering a key is an error;
// replacing a live template silently is how provisioning bugs happen.
func (r *Registry) Register(key string, template User) error {
	if _, exists := r.templates[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, key)
	}
	r.templates[key] = template
	return nil
}

// Keys returns the registered template keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Spawn clones the template under key and applies the overrides in order.
func (r *Registry) Spawn(key string, overrides ...Override) (User, error) {
	template, ok := r.templates[key]
	if !ok {
		return User{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownTemplate, key, r.Keys())
	}

	u := template.Clone()
	for _, apply := range overrides {
		apply(&u)
	}
	return u, nil
}

// DefaultRegistry returns a registry pre-loaded with the stock templates
// used by the demo: a member with basic access and an admin with elevated
// roles and a larger quota.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// The stock templates are fixed; registration cannot collide.
	_ = r.Register("member", User{
		Name:  "template-member",
		Roles: []string{"read"},
		Settings: map[string]string{
			"notifications": "weekly",
			"theme":         "system",
		},
		Quota: 10,
	})
	_ = r.Register("admin", User{
		Name:  "template-admin",
		Roles: []string{"read", "write", "admin"},
		Settings: map[string]string{
			"notifications": "instant",
			"theme":         "system",
		},
		Quota: 1000,
	})
	return r
}
