// Package biquad provides biquad (second-order IIR) filter runtime
// primitives for streaming biosignal data.
//
// A [Section] implements Direct Form I processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Cascade] to approximate high-selectivity responses
// (notch, sharp band/low/high-pass) with far fewer coefficients than an
// equivalent FIR.
//
// Numerical stability is the caller's responsibility: coefficients must
// come from a stable design. The runtime performs no saturation or
// divergence detection, since clamping would corrupt otherwise-valid
// high-dynamic-range biosignal data.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth, Chebyshev, notch, etc.) is assumed to happen offline.
package biquad
