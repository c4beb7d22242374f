package biquad

import (
	"errors"
	"fmt"
)

// Errors returned by cascade constructors.
var (
	// ErrNoSections is returned when no coefficient sets are supplied.
	ErrNoSections = errors.New("biquad: no sections")
)

// SectionCoefficientCount is the number of coefficients per section in
// the flat layout accepted by [NewCascadeFromSlice]:
// {b0, b1, b2, a1, a2} with a0 pre-normalized to 1.
const SectionCoefficientCount = 5

// Cascade is an ordered series of biquad sections where each section's
// output feeds the next section's input. It approximates higher-order
// responses with better numerical conditioning than a single
// high-order section.
type Cascade struct {
	sections []Section
	gain     float64
}

// cascadeConfig holds options for NewCascade.
type cascadeConfig struct {
	gain float64
}

// CascadeOption configures a Cascade.
type CascadeOption func(*cascadeConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain(g float64) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.gain = g }
}

// NewCascade creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section. The coefficient values
// are copied; the cascade never mutates or retains caller storage.
func NewCascade(coeffs []Coefficients, opts ...CascadeOption) (*Cascade, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoSections
	}

	cfg := cascadeConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Cascade{
		sections: make([]Section, len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c, nil
}

// NewCascadeFromSlice creates a cascade from a flat coefficient slice of
// 5 values per section, ordered {b0, b1, b2, a1, a2}. This is the layout
// commonly produced by offline filter-design tools.
func NewCascadeFromSlice(flat []float64, opts ...CascadeOption) (*Cascade, error) {
	if len(flat) == 0 {
		return nil, ErrNoSections
	}
	if len(flat)%SectionCoefficientCount != 0 {
		return nil, fmt.Errorf("biquad: flat coefficient length %d is not a multiple of %d",
			len(flat), SectionCoefficientCount)
	}

	coeffs := make([]Coefficients, len(flat)/SectionCoefficientCount)
	for i := range coeffs {
		o := i * SectionCoefficientCount
		coeffs[i] = Coefficients{
			B0: flat[o],
			B1: flat[o+1],
			B2: flat[o+2],
			A1: flat[o+3],
			A2: flat[o+4],
		}
	}

	return NewCascade(coeffs, opts...)
}

// ProcessSample cascades one input sample through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *Cascade) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
// Equivalent to the same samples passed one at a time to ProcessSample.
func (c *Cascade) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length and must not overlap (unchecked precondition).
func (c *Cascade) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	copy(dst, src)
	c.ProcessBlock(dst)
}

// Reset clears all section states.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per section).
func (c *Cascade) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Gain returns the input gain applied before cascading.
func (c *Cascade) Gain() float64 { return c.gain }

// Section returns a pointer to the i-th section for inspection.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Cascade) State() [][4]float64 {
	states := make([][4]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Cascade) SetState(states [][4]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
