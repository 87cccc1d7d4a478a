// Package builder demonstrates the Builder pattern with a car-configuration
// domain.
//
// A Car has enough optional parts that a positional constructor would be
// unreadable. CarBuilder accumulates the configuration through a fluent
// chain and validates the finished product in Build, so a half-configured
// car can never escape. A Director encodes the well-known fixed presets,
// which are declared in an embedded YAML file rather than in code.
package builder

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all Build calls. The validator caches struct
// metadata, so one instance per package is the intended usage.
var validate = validator.New()

// Engine kinds accepted by the product validation.
const (
	EnginePetrol   = "petrol"
	EngineDiesel   = "diesel"
	EngineElectric = "electric"
)

// Car is the product. The validate tags are the single source of truth for
// what a well-formed car is; Build enforces them.
type Car struct {
	Model        string `validate:"required"`
	Seats        int    `validate:"min=1,max=9"`
	Engine       string `validate:"required,oneof=petrol diesel electric"`
	GPS          bool
	TripComputer bool
}

// String renders the car as a one-line configuration for transcripts.
func (c Car) String() string {
	extras := ""
	if c.GPS {
		extras += " +gps"
	}
	if c.TripComputer {
		extras += " +trip-computer"
	}
	return fmt.Sprintf("%s (%d seats, %s)%s", c.Model, c.Seats, c.Engine, extras)
}

// CarBuilder accumulates a car configuration. Every setter returns the
// builder so calls chain; nothing is validated until Build.
type CarBuilder struct {
	car Car
}

// NewCarBuilder returns an empty builder.
func NewCarBuilder() *CarBuilder {
	return &CarBuilder{}
}

// Model sets the model name.
func (b *CarBuilder) Model(model string) *CarBuilder {
	b.car.Model = model
	return b
}

// Seats sets the seat count.
func (b *CarBuilder) Seats(n int) *CarBuilder {
	b.car.Seats = n
	return b
}

// Engine sets the engine kind.
func (b *CarBuilder) Engine(kind string) *CarBuilder {
	b.car.Engine = kind
	return b
}

// GPS adds a navigation unit.
func (b *CarBuilder) GPS() *CarBuilder {
	b.car.GPS = true
	return b
}

// TripComputer adds a trip computer.
func (b *CarBuilder) TripComputer() *CarBuilder {
	b.car.TripComputer = true
	return b
}

// Build validates the accumulated configuration and returns the finished
// car. The builder stays usable afterwards; Build copies the product out.
func (b *CarBuilder) Build() (Car, error) {
	if err := validate.Struct(b.car); err != nil {
		return Car{}, fmt.Errorf("build car: %w", err)
	}
	return b.car, nil
}
