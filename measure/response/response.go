package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNilProcessor is returned when no filter instance is supplied.
var ErrNilProcessor = errors.New("response: nil processor")

// SampleProcessor is the single-sample streaming interface shared by
// the filter runtimes (fir.Filter, biquad.Section, biquad.Cascade).
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// Point is one frequency bin of a measured magnitude response.
type Point struct {
	FreqHz      float64
	MagnitudeDB float64
}

// config holds measurement options.
type config struct {
	irLength int
}

// Option configures a measurement.
type Option func(*config)

// WithIRLength sets the number of impulse-response samples captured
// before the transform. Longer captures resolve sharper (high-Q)
// responses; the default is 1024.
func WithIRLength(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.irLength = n
		}
	}
}

// Measure feeds a unit impulse through p, captures the impulse
// response, and returns the magnitude response at the FFT bin
// frequencies from DC to Nyquist inclusive.
func Measure(p SampleProcessor, sampleRate float64, opts ...Option) ([]Point, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("response: sample rate must be > 0: %f", sampleRate)
	}

	cfg := config{irLength: 1024}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ir := make([]float64, cfg.irLength)
	ir[0] = p.ProcessSample(1)
	for i := 1; i < len(ir); i++ {
		ir[i] = p.ProcessSample(0)
	}

	return FromImpulseResponse(ir, sampleRate)
}

// FromImpulseResponse transforms an already-captured impulse response
// into magnitude-response points. The response is zero-padded to the
// next power of two before the FFT.
func FromImpulseResponse(ir []float64, sampleRate float64) ([]Point, error) {
	if len(ir) == 0 {
		return nil, fmt.Errorf("response: empty impulse response")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("response: sample rate must be > 0: %f", sampleRate)
	}

	fftSize := nextPowerOf2(len(ir))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	binWidth := sampleRate / float64(fftSize)
	points := make([]Point, bins)
	for i, m := range mags {
		points[i] = Point{
			FreqHz:      float64(i) * binWidth,
			MagnitudeDB: 20 * math.Log10(m),
		}
	}
	return points, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
