// Command roominfo prints the resolved configuration and the measured
// impulse response of the room reverb at a given sample rate.
//
// Usage:
//
//	roominfo [flags]
//
// Examples:
//
//	roominfo
//	roominfo -rate 48000 -paths -coeffs
//	roominfo -rate 22050 -seconds 2 -bands
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-roomverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-roomverb/dsp/room"
	"github.com/cwbudde/algo-roomverb/dsp/spectrum"
	"github.com/cwbudde/algo-roomverb/measure/ir"
	timestats "github.com/cwbudde/algo-roomverb/stats/time"
)

const impulseAmplitude = 1 << 24

var octaveCenters = []float64{125, 250, 500, 1000, 2000, 4000, 8000}

type options struct {
	rate    int
	seconds float64
	paths   bool
	coeffs  bool
	bands   bool
}

func main() {
	var opts options
	flag.IntVar(&opts.rate, "rate", 44100, "sample rate in Hz")
	flag.Float64Var(&opts.seconds, "seconds", 1, "impulse response capture length in seconds")
	flag.BoolVar(&opts.paths, "paths", false, "print per-reflector path lengths")
	flag.BoolVar(&opts.coeffs, "coeffs", false, "print the quantized absorption coefficients")
	flag.BoolVar(&opts.bands, "bands", false, "print octave-band levels of the impulse response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roominfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints delay-line layout, absorption filters and decay metrics of the room reverb.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  roominfo -rate 48000 -paths -coeffs\n")
		fmt.Fprintf(os.Stderr, "  roominfo -seconds 2 -bands\n")
	}
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	if opts.seconds <= 0 {
		return fmt.Errorf("capture length must be > 0: %g", opts.seconds)
	}

	rv, err := reverb.New(opts.rate)
	if err != nil {
		return err
	}
	defer rv.Release()

	rm := room.Default()
	out := &sticky{w: w}

	printLayout(out, rv.Layout())

	if opts.paths {
		printPaths(out, rm, opts.rate)
	}

	if opts.coeffs {
		printCoefficients(out, rv.Layout())
	}

	frames := int(opts.seconds * float64(opts.rate))
	resp, err := ir.Capture(rv, frames, impulseAmplitude, 0)
	if err != nil {
		return err
	}

	printMetrics(out, resp, opts.rate)

	if opts.bands {
		if err := printBands(out, resp, opts.rate); err != nil {
			return err
		}
	}

	return out.err
}

// sticky is a writer that remembers the first error and drops later
// writes, so table output is checked once at the end.
type sticky struct {
	w   io.Writer
	err error
}

func (s *sticky) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	n, err := s.w.Write(p)
	s.err = err

	return n, err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printLayout(w io.Writer, l reverb.Layout) {
	fmt.Fprintf(w, "Sample rate: %d Hz\n\n", l.SampleRate)

	tw := newTable(w)
	fmt.Fprintf(tw, "Line\tSize\tFrom left\tFrom right\tReinject\n")
	fmt.Fprintf(tw, "----\t----\t---------\t----------\t--------\n")
	for _, s := range []struct {
		name string
		side reverb.SideLayout
	}{
		{"left", l.Left},
		{"right", l.Right},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\n", s.name, s.side.Size, s.side.FromLeft, s.side.FromRight, s.side.Reinject)
	}
	_ = tw.Flush()
}

func printPaths(w io.Writer, rm room.Room, rate int) {
	p := rm.Resolve()

	fmt.Fprintf(w, "\nDirect: left %.3f m, right %.3f m\n\n", p.DirectLeft, p.DirectRight)

	tw := newTable(w)
	fmt.Fprintf(tw, "Reflector\tPosition\tLeft excess [m]\tRight excess [m]\tRound trip [m]\tRound trip [smp]\n")
	fmt.Fprintf(tw, "---------\t--------\t---------------\t----------------\t--------------\t----------------\n")
	for i, refl := range rm.Reflectors {
		fmt.Fprintf(tw, "%d\t(%.2f, %.2f)\t%.4f\t%.4f\t%.4f\t%d\n",
			i, refl.X, refl.Y,
			p.LeftSpeaker[i], p.RightSpeaker[i], p.Reflection[i],
			rm.Samples(p.Reflection[i], rate),
		)
	}
	_ = tw.Flush()
}

func printCoefficients(w io.Writer, l reverb.Layout) {
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintf(tw, "Band [Hz]\tGain [dB]\tb0\tb1\tb2\ta1\ta2\n")
	fmt.Fprintf(tw, "---------\t---------\t--\t--\t--\t--\t--\n")
	for i, b := range reverb.AbsorptionBands() {
		c := l.Coefficients[i]
		fmt.Fprintf(tw, "%.0f\t%.0f\t%d\t%d\t%d\t%d\t%d\n", b.FreqHz, b.GainDB, c.B0, c.B1, c.B2, c.A1, c.A2)
	}
	_ = tw.Flush()
}

func printMetrics(w io.Writer, resp ir.Response, rate int) {
	fmt.Fprintf(w, "\nTail: %d frames (silent: %v)\n\n", resp.Tail, resp.Silent)

	a := ir.NewAnalyzer(float64(rate))

	tw := newTable(w)
	fmt.Fprintf(tw, "Channel\tPeak [dB]\tRMS [dB]\tRT60 [s]\tEDT [s]\tC80 [dB]\tD50\tCenter [ms]\n")
	fmt.Fprintf(tw, "-------\t---------\t--------\t--------\t-------\t--------\t---\t-----------\n")
	for _, ch := range []struct {
		name  string
		data  []float64
		stats timestats.Stats
	}{
		{"left", resp.Left, resp.LeftStats},
		{"right", resp.Right, resp.RightStats},
	} {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f", ch.name, ch.stats.Peak_dB, ch.stats.RMS_dB)

		m, err := a.Analyze(ch.data)
		if err != nil {
			fmt.Fprintf(tw, "\t%v\n", err)
			continue
		}

		fmt.Fprintf(tw, "\t%.3f\t%.3f\t%.2f\t%.3f\t%.1f\n",
			m.RT60, m.EDT, m.C80, m.D50, 1000*m.CenterTime)
	}
	_ = tw.Flush()
}

func printBands(w io.Writer, resp ir.Response, rate int) error {
	var centers []float64
	for _, fc := range octaveCenters {
		if fc < float64(rate)/2 {
			centers = append(centers, fc)
		}
	}

	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintf(tw, "Channel")
	for _, fc := range centers {
		fmt.Fprintf(tw, "\t%.0f Hz", fc)
	}
	fmt.Fprintln(tw)

	for _, ch := range []struct {
		name string
		data []float64
	}{
		{"left", resp.Left},
		{"right", resp.Right},
	} {
		// The first frame carries the dry impulse.
		tail := append([]float64(nil), ch.data...)
		tail[0] = 0
		spectrum.Taper(tail, len(tail)/8)

		s, err := spectrum.FromSignal(tail, float64(rate), 0)
		if err != nil {
			return err
		}

		levels, err := s.OctaveBandLevels(centers)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s", ch.name)
		for _, l := range levels {
			fmt.Fprintf(tw, "\t%.1f dB", l)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
