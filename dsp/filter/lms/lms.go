package lms

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biofilter/dsp/core"
)

// Errors returned by this package.
var (
	// ErrNoWeights is returned when the weight slice is empty.
	ErrNoWeights = errors.New("lms: no weights")

	// ErrLengthMismatch is returned when buffers passed to ProcessBlock
	// or ResetCoefficients do not have matching lengths.
	ErrLengthMismatch = errors.New("lms: buffer length mismatch")
)

// Filter is an adaptive FIR filter using the least-mean-squares update
// rule. The delay line holds exactly NumTaps samples, newest first, so
// the filter output is a single dot product against the weight vector.
//
// All buffers, including the update scratch space, are allocated at
// construction; processing calls never allocate.
//
// A Filter carries the adaptation history of exactly one stream pair
// (input and reference) and must not be shared between streams or
// goroutines.
type Filter struct {
	weights []float64 // caller storage, mutated every processed sample
	hist    []float64 // delay line, hist[k] = x[n-k]
	scratch []float64 // mu*e*hist, accumulated into weights
	mu      float64
}

// New creates an LMS filter over the caller-provided weight vector.
//
// The weights slice is retained, not copied: the filter writes adapted
// weights into it on every processed sample, and the caller observes
// the evolving vector through it (or via [Filter.Weights]). Typical
// starting weights are all zero. The step size mu controls adaptation
// speed; stability for too-large mu is the caller's responsibility and
// is not checked beyond rejecting NaN.
func New(weights []float64, mu float64, opts ...core.ProcessorOption) (*Filter, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}
	if math.IsNaN(mu) {
		return nil, fmt.Errorf("lms: step size is NaN")
	}

	// Options are accepted for symmetry with the fixed-coefficient
	// engines; the LMS delay line needs tap-length history only, so
	// block size does not change the allocation.
	core.ApplyProcessorOptions(opts...)

	numTaps := len(weights)

	return &Filter{
		weights: weights,
		hist:    make([]float64, numTaps),
		scratch: make([]float64, numTaps),
		mu:      mu,
	}, nil
}

// ProcessSample runs one adaptation step:
//
//	y = sum_k w[k] * x[n-k]    (including the current sample x)
//	e = d - y
//	w[k] += mu * e * x[n-k]    for all k
//
// x is the filter input (interference reference in cancellation use)
// and d the desired signal (contaminated primary). Both the filter
// output y and the adaptation error e are returned; e is the cleaned
// signal in cancellation use.
func (f *Filter) ProcessSample(x, d float64) (y, e float64) {
	t := len(f.hist)

	copy(f.hist[1:], f.hist[:t-1])
	f.hist[0] = x

	y = vecmath.DotProduct(f.weights, f.hist)
	e = d - y

	vecmath.ScaleBlock(f.scratch, f.hist, f.mu*e)
	vecmath.AddBlockInPlace(f.weights, f.scratch)

	return y, e
}

// ProcessBlock runs the adaptation over a block of samples, strictly in
// order: the weights evolve within the block, each update feeding the
// next sample's output. All four slices must have the same length
// (zero length is a no-op); out and errOut must not overlap in or ref.
func (f *Filter) ProcessBlock(out, errOut, in, ref []float64) error {
	n := len(in)
	if len(ref) != n || len(out) != n || len(errOut) != n {
		return ErrLengthMismatch
	}

	for i := range n {
		out[i], errOut[i] = f.ProcessSample(in[i], ref[i])
	}

	return nil
}

// StepSize returns the current adaptation step size mu.
func (f *Filter) StepSize() float64 {
	return f.mu
}

// SetStepSize overwrites mu. It takes effect on the next processed
// sample and does not touch weights or delay-line state. No bounds
// checking is performed.
func (f *Filter) SetStepSize(mu float64) {
	f.mu = mu
}

// ResetCoefficients discards all accumulated adaptation: the weights
// are overwritten with newWeights (or with zeros when newWeights is
// nil) and the delay line is cleared. This is the only operation that
// discards adaptation; it is never triggered implicitly.
func (f *Filter) ResetCoefficients(newWeights []float64) error {
	if newWeights != nil && len(newWeights) != len(f.weights) {
		return ErrLengthMismatch
	}

	if newWeights == nil {
		core.Zero(f.weights)
	} else {
		copy(f.weights, newWeights)
	}
	core.Zero(f.hist)

	return nil
}

// Weights returns the live weight vector (the caller storage passed to
// New). It must not be read concurrently with processing.
func (f *Filter) Weights() []float64 {
	return f.weights
}

// NumTaps returns the number of adaptive weights.
func (f *Filter) NumTaps() int {
	return len(f.weights)
}
