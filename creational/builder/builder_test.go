package builder

import (
	"bytes"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCarBuilder_Build verifies the fluent chain accumulates every field
// into the product.
func TestCarBuilder_Build(t *testing.T) {
	car, err := NewCarBuilder().
		Model("roadster mk3").
		Seats(2).
		Engine(EnginePetrol).
		GPS().
		TripComputer().
		Build()
	require.NoError(t, err)

	assert.Equal(t, Car{
		Model:        "roadster mk3",
		Seats:        2,
		Engine:       EnginePetrol,
		GPS:          true,
		TripComputer: true,
	}, car)
}

// TestCarBuilder_Build_Invalid verifies validation failures: each case is
// missing or violating one constraint from the Car tags.
func TestCarBuilder_Build_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *CarBuilder
	}{
		{"missing model", NewCarBuilder().Seats(2).Engine(EngineDiesel)},
		{"missing engine", NewCarBuilder().Model("m").Seats(2)},
		{"bad engine", NewCarBuilder().Model("m").Seats(2).Engine("steam")},
		{"zero seats", NewCarBuilder().Model("m").Engine(EnginePetrol)},
		{"too many seats", NewCarBuilder().Model("m").Seats(12).Engine(EnginePetrol)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)

			// The underlying validator error survives the wrap, so callers
			// can inspect individual field violations.
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

// TestCarBuilder_Reusable verifies Build copies the product out: further
// chaining after a Build does not mutate the already-built car.
func TestCarBuilder_Reusable(t *testing.T) {
	b := NewCarBuilder().Model("base").Seats(4).Engine(EngineElectric)

	first, err := b.Build()
	require.NoError(t, err)

	second, err := b.Seats(5).GPS().Build()
	require.NoError(t, err)

	assert.Equal(t, 4, first.Seats)
	assert.False(t, first.GPS)
	assert.Equal(t, 5, second.Seats)
	assert.True(t, second.GPS)
}

// TestDirector_Construct verifies every declared preset builds a valid car
// with the configuration from the YAML file.
func TestDirector_Construct(t *testing.T) {
	director, err := NewDirector()
	require.NoError(t, err)
	require.Equal(t, []string{"city", "hauler", "sports"}, director.Presets())

	sports, err := director.Construct("sports")
	require.NoError(t, err)
	assert.Equal(t, "roadster mk3", sports.Model)
	assert.Equal(t, 2, sports.Seats)
	assert.True(t, sports.GPS)
	assert.True(t, sports.TripComputer)

	hauler, err := director.Construct("hauler")
	require.NoError(t, err)
	assert.Equal(t, 9, hauler.Seats)
	assert.Equal(t, EngineDiesel, hauler.Engine)
	assert.False(t, hauler.GPS)
}

// TestDirector_Construct_Unknown verifies an unknown preset is a typed
// error listing the valid names.
func TestDirector_Construct_Unknown(t *testing.T) {
	director, err := NewDirector()
	require.NoError(t, err)

	_, err = director.Construct("submarine")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.ErrorContains(t, err, "sports")
}

// TestDemo runs the demonstration and checks one line per section.
func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	out := buf.String()
	assert.Contains(t, out, "custom: kit car (1 seats, petrol) +trip-computer")
	assert.Contains(t, out, "sports: roadster mk3 (2 seats, petrol) +gps +trip-computer")
	assert.Contains(t, out, "rejected: incomplete configuration")
}
