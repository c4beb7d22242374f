package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-biofilter/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a signal generator with both processor
// and signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave at the given frequency and amplitude.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Noise generates seeded uniform white noise in [-amplitude, amplitude].
func (g *Generator) Noise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a unit impulse at position 0.
func (g *Generator) Impulse(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: impulse samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	out[0] = 1
	return out, nil
}

// DC generates a constant-valued signal.
func (g *Generator) DC(value float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: dc samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

// PowerlineInterference generates mains pickup at the given fundamental
// (50 or 60 Hz in practice) with the requested number of odd harmonics;
// harmonics = 0 yields a pure sinusoid. Each harmonic k is attenuated
// by 1/k relative to the fundamental.
func (g *Generator) PowerlineInterference(freqHz, amplitude float64, harmonics, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: interference samples must be > 0: %d", samples)
	}
	if harmonics < 0 {
		return nil, fmt.Errorf("signal: harmonics must be >= 0: %d", harmonics)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		phase := step * float64(i)
		v := math.Sin(phase)
		for h := range harmonics {
			k := float64(2*h + 3) // odd harmonics: 3rd, 5th, ...
			v += math.Sin(phase*k) / k
		}
		out[i] = amplitude * v
	}
	return out, nil
}
