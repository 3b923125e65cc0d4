package tracking

import "fmt"

// Sensitivity holds the axis-asymmetric scaling applied to raw offsets.
// Horizontal head movement is amplified more than vertical because the
// usable horizontal range in front of a screen is wider.
type Sensitivity struct {
	Horizontal float32
	Vertical   float32
}

// DefaultSensitivity returns the reference scaling: 3x horizontal,
// 1.5x vertical.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{Horizontal: 3.0, Vertical: 1.5}
}

// Validate rejects non-positive scale factors. A zero or negative
// sensitivity is a programmer error, not a runtime condition.
func (s Sensitivity) Validate() error {
	if s.Horizontal <= 0 {
		return fmt.Errorf("horizontal sensitivity must be positive, got %v", s.Horizontal)
	}
	if s.Vertical <= 0 {
		return fmt.Errorf("vertical sensitivity must be positive, got %v", s.Vertical)
	}
	return nil
}

// Conditioner scales raw tracking samples and bridges sensor dropouts.
// When the detector loses the face for a frame, Condition reuses the last
// known raw sample instead of snapping to zero, which would read as a
// visible camera jump. Before the first valid sample it reports a centered
// view.
//
// Conditioner is not safe for concurrent use; it belongs to the render loop.
type Conditioner struct {
	sens     Sensitivity
	lastRaw  Offset
	hasValue bool
}

func NewConditioner(sens Sensitivity) (*Conditioner, error) {
	if err := sens.Validate(); err != nil {
		return nil, fmt.Errorf("conditioner: %w", err)
	}
	return &Conditioner{sens: sens}, nil
}

// Condition applies the axis scaling to raw. A nil or non-finite raw sample
// counts as a dropout: the previous raw value is conditioned instead.
func (c *Conditioner) Condition(raw *Offset) Offset {
	if raw != nil && raw.Valid() {
		c.lastRaw = *raw
		c.hasValue = true
	}
	if !c.hasValue {
		return Offset{}
	}
	return Offset{
		X: c.lastRaw.X * c.sens.Horizontal,
		Y: c.lastRaw.Y * c.sens.Vertical,
	}
}

// Reset discards the held sample. Until the next valid sample arrives,
// Condition reports a centered view again.
func (c *Conditioner) Reset() {
	c.lastRaw = Offset{}
	c.hasValue = false
}
