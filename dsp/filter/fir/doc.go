// Package fir provides a direct-form FIR filter runtime for streaming
// biosignal data.
//
// A [Filter] applies a set of pre-computed coefficients to an unbounded
// input stream, one sample at a time or in arbitrary-length blocks, with
// identical results either way. All state is allocated at construction;
// processing calls never allocate, block, or lock, so the filter can run
// inside a fixed-period acquisition loop.
//
// This package provides the processing runtime only. Coefficient design
// (windowed-sinc, Parks-McClellan, etc.) is a separate concern.
package fir
