package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-biofilter/dsp/core"
	"github.com/cwbudde/algo-biofilter/internal/testutil"
)

func TestSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	out, err := g.Sine(250, 1, 8)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}
	// 250 Hz at 1 kHz sampling: 0, 1, 0, -1, ...
	want := []float64{0, 1, 0, -1, 0, 1, 0, -1}
	testutil.RequireSliceNearlyEqual(t, out, want, 1e-12)

	if _, err := g.Sine(10, 1, 0); err == nil {
		t.Error("Sine with 0 samples: want error")
	}
}

func TestNoise_Deterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(7))
	g2 := NewGeneratorWithOptions(nil, WithSeed(7))

	n1, err := g1.Noise(1, 128)
	if err != nil {
		t.Fatalf("Noise: %v", err)
	}
	n2, _ := g2.Noise(1, 128)
	testutil.RequireSliceNearlyEqual(t, n1, n2, 0)

	for i, v := range n1 {
		if math.Abs(v) > 1 {
			t.Errorf("sample %d exceeds amplitude: %v", i, v)
		}
	}
}

func TestImpulseAndDC(t *testing.T) {
	g := NewGenerator()

	imp, err := g.Impulse(4)
	if err != nil {
		t.Fatalf("Impulse: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, imp, []float64{1, 0, 0, 0}, 0)

	dc, err := g.DC(-0.5, 3)
	if err != nil {
		t.Fatalf("DC: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dc, []float64{-0.5, -0.5, -0.5}, 0)
}

func TestPowerlineInterference(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	pure, err := g.PowerlineInterference(60, 1, 0, 1000)
	if err != nil {
		t.Fatalf("PowerlineInterference: %v", err)
	}
	sine, _ := g.Sine(60, 1, 1000)
	testutil.RequireSliceNearlyEqual(t, pure, sine, 1e-12)

	rich, err := g.PowerlineInterference(60, 1, 2, 1000)
	if err != nil {
		t.Fatalf("PowerlineInterference with harmonics: %v", err)
	}
	testutil.RequireFinite(t, rich)
	if d, _ := testutil.MaxAbsDiff(rich, pure); d == 0 {
		t.Error("harmonics had no effect")
	}

	if _, err := g.PowerlineInterference(60, 1, -1, 100); err == nil {
		t.Error("negative harmonics: want error")
	}
}

func TestECG(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(250))

	out, err := g.ECG(72, 0.02, 2500)
	if err != nil {
		t.Fatalf("ECG: %v", err)
	}
	testutil.RequireFinite(t, out)

	// The R peak dominates; the trace must show clear positive peaks
	// well above the baseline activity.
	maxVal := 0.0
	for _, v := range out {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal < 0.5 {
		t.Errorf("no R-peak-like activity: max %v", maxVal)
	}

	if _, err := g.ECG(0, 0, 100); err == nil {
		t.Error("zero heart rate: want error")
	}
}
