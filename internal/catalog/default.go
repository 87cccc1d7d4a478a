package catalog

import (
	"github.com/mmr-tortoise/gopatterns/behavioral/memento"
	"github.com/mmr-tortoise/gopatterns/behavioral/observer"
	"github.com/mmr-tortoise/gopatterns/creational/builder"
	"github.com/mmr-tortoise/gopatterns/creational/factory"
	"github.com/mmr-tortoise/gopatterns/creational/prototype"
	"github.com/mmr-tortoise/gopatterns/creational/singleton"
	"github.com/mmr-tortoise/gopatterns/internal/model"
	"github.com/mmr-tortoise/gopatterns/structural/adapter"
	"github.com/mmr-tortoise/gopatterns/structural/bridge"
	"github.com/mmr-tortoise/gopatterns/structural/composite"
	"github.com/mmr-tortoise/gopatterns/structural/decorator"
	"github.com/mmr-tortoise/gopatterns/structural/facade"
	"github.com/mmr-tortoise/gopatterns/structural/proxy"
)

// Default assembles the full pattern catalog. Registration failures here
// mean the table below is inconsistent with itself, so Default panics
// instead of returning an error every caller would have to treat as fatal
// anyway.
func Default() *Catalog {
	c := New()

	entries := []Entry{
		{
			Name:     "builder",
			Category: model.CategoryCreational,
			Summary:  "Fluent construction of cars, with YAML-declared director presets",
			Properties: []string{
				"Build validates the product; a half-configured car never escapes",
				"every director preset constructs a valid product",
				"unknown preset names are typed errors",
			},
			Run: builder.Demo,
		},
		{
			Name:     "factory",
			Category: model.CategoryCreational,
			Summary:  "Simple factory, factory method, and abstract widget families",
			Properties: []string{
				"unknown keys and themes are errors, never nil products",
				"every product of one abstract factory shares its theme",
			},
			Run: factory.Demo,
		},
		{
			Name:     "prototype",
			Category: model.CategoryCreational,
			Summary:  "User templates cloned by key, then customized with overrides",
			Properties: []string{
				"clones share no mutable structure with their template",
				"every clone receives a fresh unique ID",
				"spawned users cannot mutate registry templates",
			},
			Run: prototype.Demo,
		},
		{
			Name:     "singleton",
			Category: model.CategoryCreational,
			Summary:  "One settings store per explicitly passed scope",
			Properties: []string{
				"successive accessor calls return the identical instance",
				"direct construction outside the package is impossible",
				"separate scopes are fully isolated",
			},
			Run: singleton.Demo,
		},
		{
			Name:     "adapter",
			Category: model.CategoryStructural,
			Summary:  "Legacy JSONC exports and a modern client behind one payment interface",
			Properties: []string{
				"field remapping normalizes amounts, currencies, and customers",
				"missing source fields are errors, not zero values",
			},
			Run: adapter.Demo,
		},
		{
			Name:     "bridge",
			Category: model.CategoryStructural,
			Summary:  "Remote controls driving interchangeable devices",
			Properties: []string{
				"any remote drives any device through the same primitives",
				"mute restores the exact prior volume",
			},
			Run: bridge.Demo,
		},
		{
			Name:     "composite",
			Category: model.CategoryStructural,
			Summary:  "File trees answering aggregate queries uniformly",
			Properties: []string{
				"a directory's size is the recursive sum of its children",
				"trees stay acyclic with at most one parent per node",
				"FindByExtension matches leaf files only, at any depth",
			},
			Run: composite.Demo,
		},
		{
			Name:     "decorator",
			Category: model.CategoryStructural,
			Summary:  "Coffee orders wrapped in condiment decorators",
			Properties: []string{
				"cost equals base cost plus the sum of all increments",
				"description suffixes append in application order",
			},
			Run: decorator.Demo,
		},
		{
			Name:     "facade",
			Category: model.CategoryStructural,
			Summary:  "One video-conversion call sequencing a fiddly subsystem",
			Properties: []string{
				"subsystem steps always run in the same order",
				"unsupported formats fail before any subsystem work",
			},
			Run: facade.Demo,
		},
		{
			Name:     "proxy",
			Category: model.CategoryStructural,
			Summary:  "A cached, access-checked stand-in for a slow database",
			Properties: []string{
				"the real database is opened lazily, on first use",
				"any write invalidates the whole cache",
				"non-admin writes are rejected without touching the database",
			},
			Run: proxy.Demo,
		},
		{
			Name:     "memento",
			Category: model.CategoryBehavioral,
			Summary:  "Text-editor undo/redo over immutable snapshots",
			Properties: []string{
				"undo/redo round-trips restore each state exactly",
				"undo past the oldest and redo past the newest are no-ops",
				"a save after undos truncates the redo tail",
			},
			Run: memento.Demo,
		},
		{
			Name:     "observer",
			Category: model.CategoryBehavioral,
			Summary:  "A weather station notifying displays and a structured logger",
			Properties: []string{
				"notification order equals attachment order",
				"duplicate attachment does not duplicate notifications",
				"detaching one observer leaves the others untouched",
			},
			Run: observer.Demo,
		},
	}

	for _, e := range entries {
		if err := c.Add(e); err != nil {
			panic(err)
		}
	}
	return c
}
