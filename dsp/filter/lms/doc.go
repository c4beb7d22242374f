// Package lms provides a least-mean-squares adaptive FIR filter for
// streaming biosignal data.
//
// An LMS [Filter] is an FIR filter whose weights are updated on every
// processed sample by a gradient-descent rule, driving the adaptation
// error toward zero. Its main biosignal use is interference
// cancellation: feed the interference reference (for example a mains
// pickup channel) as the filter input x and the contaminated primary
// signal as the desired signal d; the per-sample error e = d - y then
// converges toward the clean signal.
//
// Unlike the fixed-coefficient engines, the weight vector is caller
// storage that the filter owns and mutates for its whole lifetime. The
// caller must not read or write it concurrently with processing: it is
// a live, evolving parameter vector, not a constant.
//
// Block processing is an ordered fold, not a parallel map: each
// sample's weight update feeds the next sample's output, so processing
// order is semantically load-bearing.
package lms
