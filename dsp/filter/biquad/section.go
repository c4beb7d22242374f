package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored;
// callers must normalize before construction.
//
// The difference equation follows Direct Form I:
//
//	y = B0*x + B1*x1 + B2*x2 - A1*y1 - A2*y2
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form I processing with explicit delay lines for
// the two most recent inputs and outputs.
//
// A Section carries the history of exactly one sample stream and must
// not be shared between streams or goroutines.
type Section struct {
	Coefficients

	x1, x2 float64 // previous inputs
	y1, y2 float64 // previous outputs
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc; any
// length is accepted, including zero.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	x1, x2 := s.x1, s.x2
	y1, y2 := s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2 = x1, x2
	s.y1, s.y2 = y1, y2
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length and must not overlap (unchecked precondition). Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay lines to zero.
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current delay-line state [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [4]float64) {
	s.x1 = state[0]
	s.x2 = state[1]
	s.y1 = state[2]
	s.y2 = state[3]
}
