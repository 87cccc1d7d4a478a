package builder

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when the director is asked for a preset that
// is not declared in the preset file.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// presetsYAML declares the director's fixed configurations. Keeping them in
// data rather than code means a new preset is a YAML edit, not a new method.
//
//go:embed presets.yaml
var presetsYAML []byte

// preset mirrors one entry of presets.yaml.
type preset struct {
	Model        string `yaml:"model"`
	Seats        int    `yaml:"seats"`
	Engine       string `yaml:"engine"`
	GPS          bool   `yaml:"gps"`
	TripComputer bool   `yaml:"trip_computer"`
}

// presetFile is the top-level structure of presets.yaml.
type presetFile struct {
	Presets map[string]preset `yaml:"presets"`
}

// Director knows the construction recipes. It owns no builder; a fresh one
// is driven per request so directors are reusable and stateless between
// builds.
type Director struct {
	presets map[string]preset
}

// NewDirector loads the embedded preset declarations. An unparsable preset
// file is a packaging bug, reported as an error rather than a panic.
func NewDirector() (*Director, error) {
	var f presetFile
	if err := yaml.Unmarshal(presetsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, errors.New("builder: preset file declares no presets")
	}
	return &Director{presets: f.Presets}, nil
}

// Presets returns the known preset names in sorted order.
func (d *Director) Presets() []string {
	names := make([]string, 0, len(d.presets))
	for name := range d.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Construct drives a fresh builder through the named preset's steps and
// returns the validated product.
func (d *Director) Construct(name string) (Car, error) {
	p, ok := d.presets[name]
	if !ok {
		return Car{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownPreset, name, d.Presets())
	}

	b := NewCarBuilder().
		Model(p.Model).
		Seats(p.Seats).
		Engine(p.Engine)
	if p.GPS {
		b.GPS()
	}
	if p.TripComputer {
		b.TripComputer()
	}
	return b.Build()
}
