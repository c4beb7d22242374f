package biquad

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-biofilter/internal/testutil"
)

func mustCascade(t *testing.T, coeffs []Coefficients, opts ...CascadeOption) *Cascade {
	t.Helper()
	c, err := NewCascade(coeffs, opts...)
	if err != nil {
		t.Fatalf("NewCascade: %v", err)
	}
	return c
}

func TestNewCascade_Errors(t *testing.T) {
	if _, err := NewCascade(nil); !errors.Is(err, ErrNoSections) {
		t.Errorf("NewCascade(nil): got %v, want ErrNoSections", err)
	}
	if _, err := NewCascadeFromSlice(nil); !errors.Is(err, ErrNoSections) {
		t.Errorf("NewCascadeFromSlice(nil): got %v, want ErrNoSections", err)
	}
	if _, err := NewCascadeFromSlice(make([]float64, 7)); err == nil {
		t.Error("NewCascadeFromSlice(len 7): want error for partial section")
	}
}

func TestNewCascadeFromSlice(t *testing.T) {
	flat := []float64{
		0.25, 0.5, 0.25, -0.2, 0.04, // section 0
		1, 0, -1, -0.5, 0.25, // section 1
	}
	c, err := NewCascadeFromSlice(flat)
	if err != nil {
		t.Fatalf("NewCascadeFromSlice: %v", err)
	}
	if c.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", c.NumSections())
	}
	if c.Order() != 4 {
		t.Fatalf("Order: got %d, want 4", c.Order())
	}

	want0 := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	if c.Section(0).Coefficients != want0 {
		t.Errorf("section 0: got %+v, want %+v", c.Section(0).Coefficients, want0)
	}
	want1 := Coefficients{B0: 1, B1: 0, B2: -1, A1: -0.5, A2: 0.25}
	if c.Section(1).Coefficients != want1 {
		t.Errorf("section 1: got %+v, want %+v", c.Section(1).Coefficients, want1)
	}
}

func TestCascade_MatchesManualChaining(t *testing.T) {
	coeffs := []Coefficients{
		testCoeffs,
		{B0: 1, B1: 0, B2: -1, A1: -0.5, A2: 0.25},
	}
	input := testutil.DeterministicNoise(11, 1, 199)

	c := mustCascade(t, coeffs)
	got := make([]float64, len(input))
	c.ProcessBlockTo(got, input)

	s0 := NewSection(coeffs[0])
	s1 := NewSection(coeffs[1])
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = s1.ProcessSample(s0.ProcessSample(x))
	}

	testutil.RequireSliceNearlyEqual(t, got, want, eps)
}

func TestCascade_BlockMatchesSample(t *testing.T) {
	coeffs := []Coefficients{testCoeffs, stableHighpass}
	input := testutil.DeterministicNoise(13, 1, 301)

	c1 := mustCascade(t, coeffs)
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = c1.ProcessSample(x)
	}

	c2 := mustCascade(t, coeffs)
	block := make([]float64, len(input))
	copy(block, input)
	c2.ProcessBlock(block)

	testutil.RequireSliceNearlyEqual(t, block, ref, 1e-9)
}

func TestCascade_Gain(t *testing.T) {
	// Unity sections: cascade output equals gain * input.
	identity := Coefficients{B0: 1}
	c := mustCascade(t, []Coefficients{identity, identity}, WithGain(0.5))
	if c.Gain() != 0.5 {
		t.Fatalf("Gain: got %v, want 0.5", c.Gain())
	}

	if got := c.ProcessSample(2); !almostEqual(got, 1, eps) {
		t.Errorf("ProcessSample(2) with gain 0.5: got %v, want 1", got)
	}

	buf := []float64{1, -2, 4}
	c.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.5, -1, 2}, eps)
}

func TestCascade_Reset(t *testing.T) {
	c := mustCascade(t, []Coefficients{testCoeffs, testCoeffs})
	c.ProcessSample(1)
	c.ProcessSample(-1)
	c.Reset()

	for i, st := range c.State() {
		if st != [4]float64{} {
			t.Errorf("section %d state after reset: got %v, want zeros", i, st)
		}
	}
}

func TestCascade_StateRoundTrip(t *testing.T) {
	c := mustCascade(t, []Coefficients{testCoeffs, stableHighpass})
	for _, x := range []float64{1, 0.5, -0.25} {
		c.ProcessSample(x)
	}

	saved := c.State()
	next := c.ProcessSample(0.75)

	c.SetState(saved)
	if got := c.ProcessSample(0.75); !almostEqual(got, next, eps) {
		t.Errorf("replay after SetState: got %v, want %v", got, next)
	}
}
