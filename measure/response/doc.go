// Package response measures the frequency response of a filter
// instance by feeding a unit impulse through it and transforming the
// captured impulse response.
//
// The filter under measurement is the unit of interest, not the signal
// passing through it; use this to verify that a coefficient set loaded
// at runtime produces the intended response before entering a
// real-time loop. Measurement advances the filter's internal state, so
// measure a freshly constructed (or explicitly reset) instance.
package response
