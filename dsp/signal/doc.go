// Package signal generates deterministic test and demo waveforms for
// exercising the filter runtimes: sines, seeded noise, impulses,
// powerline interference, and a synthetic (non-clinical) ECG trace.
package signal
