package speedview

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"github.com/roffe/speedview/pkg/gauge"
	"gopkg.in/yaml.v3"
)

type Config struct {
	MinSize fyne.Size
	// Padding around the gauge in fyne units.
	Padding gauge.Insets
	// FontDir holds the display font, empty for the bundled one.
	FontDir string
	// Style overrides gauge.DefaultStyle when set.
	Style *gauge.Style
	// Attributes are applied once, after the defaults.
	Attributes *Attributes
}

// Attributes is the declarative part of the configuration. Unset fields
// keep their defaults.
type Attributes struct {
	MaxSpeed *float64 `yaml:"maxSpeed,omitempty"`
	Speed    *float64 `yaml:"speed,omitempty"`
}

// LoadAttributes decodes YAML attributes. An empty document yields empty
// attributes.
func LoadAttributes(r io.Reader) (*Attributes, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var a Attributes
	if err := dec.Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return &a, nil
		}
		return nil, fmt.Errorf("failed to decode attributes: %w", err)
	}
	return &a, nil
}

// Apply sets the attributes on st. st is left untouched on error.
func (a *Attributes) Apply(st *gauge.State) error {
	next := *st
	if a.MaxSpeed != nil {
		if err := next.SetMaxSpeed(*a.MaxSpeed); err != nil {
			return fmt.Errorf("maxSpeed: %w", err)
		}
	}
	if a.Speed != nil {
		if err := next.SetSpeed(*a.Speed); err != nil {
			return fmt.Errorf("speed: %w", err)
		}
	}
	*st = next
	return nil
}
