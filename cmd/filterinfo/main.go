// Command filterinfo prints the magnitude response of a filter
// coefficient set over a log-spaced frequency grid.
//
// Usage:
//
//	filterinfo fir -c 0.25,0.5,0.25
//	filterinfo biquad -c 0.99778102,-1.99556205,0.99778102,-1.99555712,0.99556697
//	filterinfo biquad -c <5 values per section> -r 500 -n 40 -lo 0.1 -hi 250
//
// Biquad coefficients use the flat {b0, b1, b2, a1, a2} per-section
// layout with a0 normalized to 1.
package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/integrii/flaggy"

	"github.com/cwbudde/algo-biofilter/dsp/core"
	"github.com/cwbudde/algo-biofilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-biofilter/dsp/filter/fir"
)

type options struct {
	coeffs     string
	sampleRate float64
	points     int
	loHz       float64
	hiHz       float64
}

// responder is satisfied by both filter runtimes.
type responder interface {
	Response(freqHz, sampleRate float64) complex128
}

func main() {
	opts := options{
		sampleRate: core.DefaultProcessorConfig().SampleRate,
		points:     30,
		loHz:       0.1,
	}

	parser := flaggy.NewParser("filterinfo")
	parser.Description = "print the magnitude response of a filter coefficient set"

	firCmd := flaggy.Subcommand{
		Name:        "fir",
		Description: "treat the coefficients as FIR taps",
	}
	parser.AttachSubcommand(&firCmd, 1)

	biquadCmd := flaggy.Subcommand{
		Name:        "biquad",
		Description: "treat the coefficients as biquad sections ({b0,b1,b2,a1,a2} per section)",
	}
	parser.AttachSubcommand(&biquadCmd, 1)

	for _, cmd := range []*flaggy.Subcommand{&firCmd, &biquadCmd} {
		cmd.String(&opts.coeffs, "c", "coeffs", "comma-separated coefficient list")
		cmd.Float64(&opts.sampleRate, "r", "rate", "sample rate in Hz")
		cmd.Int(&opts.points, "n", "points", "number of frequency points")
		cmd.Float64(&opts.loHz, "lo", "low", "lowest frequency in Hz")
		cmd.Float64(&opts.hiHz, "hi", "high", "highest frequency in Hz (default Nyquist)")
	}

	if err := parser.Parse(); err != nil {
		fatal(err)
	}

	if !firCmd.Used && !biquadCmd.Used {
		parser.ShowHelp()
		os.Exit(2)
	}

	values, err := parseCoeffs(opts.coeffs)
	if err != nil {
		fatal(err)
	}

	var (
		r    responder
		kind string
	)
	switch {
	case firCmd.Used:
		f, err := fir.New(values)
		if err != nil {
			fatal(err)
		}
		r = f
		kind = fmt.Sprintf("FIR, %d taps", f.NumTaps())
	case biquadCmd.Used:
		c, err := biquad.NewCascadeFromSlice(values)
		if err != nil {
			fatal(err)
		}
		r = c
		kind = fmt.Sprintf("biquad cascade, %d sections (order %d)", c.NumSections(), c.Order())
	}

	if err := printResponse(r, kind, opts); err != nil {
		fatal(err)
	}
}

func parseCoeffs(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no coefficients given (use -c)")
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q: %w", p, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func printResponse(r responder, kind string, opts options) error {
	if opts.sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %f", opts.sampleRate)
	}
	if opts.points < 2 {
		return fmt.Errorf("need at least 2 frequency points: %d", opts.points)
	}

	lo := opts.loHz
	hi := opts.hiHz
	if hi <= 0 {
		hi = opts.sampleRate / 2
	}
	if lo <= 0 || lo >= hi {
		return fmt.Errorf("invalid frequency range: %g .. %g Hz", lo, hi)
	}

	fmt.Printf("%s @ %g Hz\n\n", kind, opts.sampleRate)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "freq (Hz)\tmag (dB)\tphase (deg)\t")

	ratio := math.Pow(hi/lo, 1/float64(opts.points-1))
	freq := lo
	for range opts.points {
		h := r.Response(freq, opts.sampleRate)
		magDB := 20 * math.Log10(cmplx.Abs(h))
		phaseDeg := cmplx.Phase(h) * 180 / math.Pi
		fmt.Fprintf(w, "%.3f\t%.2f\t%.1f\t\n", freq, magDB, phaseDeg)
		freq *= ratio
	}

	return w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "filterinfo:", err)
	os.Exit(1)
}
