package fir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biofilter/dsp/core"
)

// Errors returned by New.
var (
	// ErrNoCoefficients is returned when the coefficient slice is empty.
	ErrNoCoefficients = errors.New("fir: no coefficients")
)

// Filter implements a direct-form FIR filter over a sliding window of
// input history.
//
// The delay buffer holds numTaps+blockSize-1 samples: the most recent
// numTaps-1 inputs followed by room for one processing block. Larger
// inputs are consumed in chunks of at most the configured block size,
// so per-call memory stays fixed no matter how many samples are passed.
//
// The coefficients are snapshotted at construction; later caller
// mutations of the original slice do not affect the filter.
//
// A Filter carries the history of exactly one sample stream and must not
// be shared between streams or goroutines.
type Filter struct {
	coeffs []float64 // construction order, h[0] first
	kernel []float64 // reversed coefficients, dot-product order
	state  []float64 // numTaps-1 history samples + current chunk
	block  int
}

// New creates a FIR filter from the given coefficient slice.
//
// The coefficients are copied. Use [core.WithBlockSize] to tune the
// internal chunk size for block processing; it does not limit the
// lengths accepted by [Filter.ProcessBlock].
func New(coeffs []float64, opts ...core.ProcessorOption) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	cfg := core.ApplyProcessorOptions(opts...)
	if cfg.BlockSize < 1 {
		return nil, fmt.Errorf("fir: invalid block size %d", cfg.BlockSize)
	}

	numTaps := len(coeffs)

	c := make([]float64, numTaps)
	copy(c, coeffs)

	kernel := make([]float64, numTaps)
	for i, v := range coeffs {
		kernel[numTaps-1-i] = v
	}

	return &Filter{
		coeffs: c,
		kernel: kernel,
		state:  make([]float64, numTaps+cfg.BlockSize-1),
		block:  cfg.BlockSize,
	}, nil
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_{k=0}^{T-1} h[k] * x[n-k]
//
// Equivalent to a ProcessBlock call of length 1.
func (f *Filter) ProcessSample(x float64) float64 {
	t := len(f.kernel)
	f.state[t-1] = x
	y := vecmath.DotProduct(f.kernel, f.state[:t])
	copy(f.state, f.state[1:t])
	return y
}

// ProcessBlock filters a block of samples in-place. Any length is
// accepted, including zero (a no-op); state advances exactly as if each
// sample had been passed to ProcessSample individually.
func (f *Filter) ProcessBlock(buf []float64) {
	f.process(buf, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length and must not overlap; overlap is a caller bug and is not
// checked, to keep the per-sample cost bounded.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	f.process(dst, src)
}

// process consumes src in chunks of at most f.block samples. Within a
// chunk the incoming samples are appended after the numTaps-1 history
// samples, each output is the dot product of the reversed kernel with
// the corresponding window, and the tail of the chunk becomes the new
// history. Writing dst == src is safe: the chunk is copied into the
// state buffer before any output is stored.
func (f *Filter) process(dst, src []float64) {
	t := len(f.kernel)
	hist := t - 1

	for len(src) > 0 {
		n := min(len(src), f.block)

		copy(f.state[hist:], src[:n])
		for i := range n {
			dst[i] = vecmath.DotProduct(f.kernel, f.state[i:i+t])
		}
		copy(f.state, f.state[n:n+hist])

		src = src[n:]
		dst = dst[n:]
	}
}

// Reset clears the delay line to zero. The coefficients are untouched.
func (f *Filter) Reset() {
	core.Zero(f.state)
}

// NumTaps returns the number of filter coefficients.
func (f *Filter) NumTaps() int {
	return len(f.coeffs)
}

// Order returns the filter order (NumTaps - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// BlockSize returns the configured internal chunk size.
func (f *Filter) BlockSize() int {
	return f.block
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
