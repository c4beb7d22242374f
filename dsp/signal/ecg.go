package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// ECG generates a synthetic, non-clinical ECG-like trace: a slow
// baseline wander plus gaussian P/Q/R/S/T bumps per heartbeat cycle and
// optional seeded noise. Useful as a realistic primary signal when
// exercising the filter runtimes; it carries no physiological accuracy.
func (g *Generator) ECG(heartRateBPM, noiseAmplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: ecg samples must be > 0: %d", samples)
	}
	if heartRateBPM <= 0 {
		return nil, fmt.Errorf("signal: heart rate must be > 0: %f", heartRateBPM)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	cycleHz := heartRateBPM / 60
	phase := 0.0
	for i := range out {
		t := phase // position within the cycle, [0, 1)

		baseline := 0.05 * math.Sin(2*math.Pi*0.33*t)

		// P, Q, R, S, T waves as gaussian bumps at fixed cycle positions.
		v := baseline
		v += 0.08 * gaussBump(t, 0.18, 0.03)
		v -= 0.12 * gaussBump(t, 0.30, 0.01)
		v += 1.00 * gaussBump(t, 0.32, 0.008)
		v -= 0.25 * gaussBump(t, 0.35, 0.012)
		v += 0.25 * gaussBump(t, 0.60, 0.06)

		if noiseAmplitude > 0 {
			v += (rng.Float64()*2 - 1) * noiseAmplitude
		}
		out[i] = v

		phase += cycleHz / g.cfg.SampleRate
		if phase >= 1 {
			phase -= 1
		}
	}
	return out, nil
}

func gaussBump(x, center, width float64) float64 {
	z := (x - center) / width
	return math.Exp(-0.5 * z * z)
}
