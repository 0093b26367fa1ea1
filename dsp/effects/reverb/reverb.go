package reverb

import (
	"math"

	"github.com/cwbudde/algo-roomverb/dsp/delay"
	"github.com/cwbudde/algo-roomverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-roomverb/dsp/room"
)

const (
	// injectionDivisor attenuates samples entering the delay lines.
	injectionDivisor = 32

	defaultWetGain = 4
)

// Reverb is a fixed-point stereo room reverb.
type Reverb struct {
	layout   Layout
	left     side
	right    side
	wetGain  int64
	released bool
}

// side is one delay line with its cursors and absorption filters.
type side struct {
	line      *delay.Line
	read      int
	fromLeft  [room.SidePaths]int
	fromRight [room.SidePaths]int
	reinject  [room.SidePaths]int
	bank      [NumBands]biquad.Section
}

// Cursors is a snapshot of every cursor of a Reverb.
//
// LeftSpeaker and RightSpeaker hold the taps fed by each speaker: entries
// 0-3 point into the left line and 4-7 into the right line.
type Cursors struct {
	LeftRead      int
	RightRead     int
	LeftSpeaker   [room.NumReflectors]int
	RightSpeaker  [room.NumReflectors]int
	LeftReinject  [room.SidePaths]int
	RightReinject [room.SidePaths]int
}

// New creates a room reverb for sampleRate (Hz) with all delay lines and
// filter history cleared.
func New(sampleRate int, opts ...Option) (*Reverb, error) {
	cfg := applyOptions(opts)

	layout, err := ResolveLayout(cfg.room, sampleRate)
	if err != nil {
		return nil, err
	}

	r := &Reverb{
		layout:  layout,
		wetGain: defaultWetGain,
	}

	if err := r.left.init(layout.Left, layout.Coefficients); err != nil {
		return nil, err
	}

	if err := r.right.init(layout.Right, layout.Coefficients); err != nil {
		return nil, err
	}

	r.Reset()

	return r, nil
}

func (s *side) init(l SideLayout, coeffs [NumBands]biquad.Fixed) error {
	line, err := delay.New(l.Size)
	if err != nil {
		return err
	}

	s.line = line
	s.read = 0
	s.fromLeft = l.FromLeft
	s.fromRight = l.FromRight
	s.reinject = l.Reinject

	for i := range s.bank {
		s.bank[i] = biquad.Section{Fixed: coeffs[i]}
	}

	return nil
}

// Reset clears every delay cell and all filter history. Cursors and
// coefficients are kept.
func (r *Reverb) Reset() {
	r.mustBeLive("Reset")
	r.left.reset()
	r.right.reset()
}

func (s *side) reset() {
	s.line.Reset()
	for i := range s.bank {
		s.bank[i].Reset()
	}
}

// Silent reports whether every delay cell and all filter history are zero,
// i.e. whether further silent input would produce silent output.
func (r *Reverb) Silent() bool {
	r.mustBeLive("Silent")
	return r.left.silent() && r.right.silent()
}

func (s *side) silent() bool {
	if !s.line.IsZero() {
		return false
	}

	for i := range s.bank {
		if !s.bank[i].IsZero() {
			return false
		}
	}

	return true
}

// ProcessInPlace adds the reverb to an interleaved stereo buffer
// (even indices left, odd indices right).
//
// Only complete frames are processed: if len(buf) is odd the trailing sample
// is left untouched and consumes no reverb state. Wet-inclusive samples
// saturate at the int32 range.
func (r *Reverb) ProcessInPlace(buf []int32) {
	r.mustBeLive("ProcessInPlace")

	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		dryL := int64(buf[i])
		dryR := int64(buf[i+1])

		injL := dryL / injectionDivisor
		injR := dryR / injectionDivisor
		r.left.inject(injL, injR)
		r.right.inject(injL, injR)

		outL := dryL + r.left.drain()
		outR := dryR + r.right.drain()

		buf[i] = saturate(outL)
		buf[i+1] = saturate(outR)

		// Each side's wet output diffuses into the opposite line.
		r.left.diffuse(outR / injectionDivisor)
		r.right.diffuse(outL / injectionDivisor)
	}
}

func (s *side) inject(l, r int64) {
	for j := range s.fromLeft {
		s.fromLeft[j] = s.line.Add(s.fromLeft[j], l)
		s.fromRight[j] = s.line.Add(s.fromRight[j], r)
	}
}

// drain empties the cell under the read cursor and returns the sum of all
// absorption bands applied to it. The bands run in parallel, not cascaded.
func (s *side) drain() int64 {
	var x int64
	x, s.read = s.line.Drain(s.read)

	var wet int64
	for j := range s.bank {
		wet += s.bank[j].ProcessSample(x)
	}

	return wet
}

func (s *side) diffuse(v int64) {
	for j := range s.reinject {
		s.reinject[j] = s.line.Add(s.reinject[j], v)
	}
}

// Release drops the delay lines and filter state. The Reverb must not be
// used afterwards; any further call panics.
func (r *Reverb) Release() {
	r.mustBeLive("Release")
	r.left = side{}
	r.right = side{}
	r.released = true
}

func (r *Reverb) mustBeLive(op string) {
	if r.released {
		panic("reverb: " + op + " called on released Reverb")
	}
}

// SampleRate returns the sample rate in Hz.
func (r *Reverb) SampleRate() int { return r.layout.SampleRate }

// Layout returns the resolved construction-time layout.
func (r *Reverb) Layout() Layout { return r.layout }

// LeftSize returns the left delay-line size in samples.
func (r *Reverb) LeftSize() int { return r.layout.Left.Size }

// RightSize returns the right delay-line size in samples.
func (r *Reverb) RightSize() int { return r.layout.Right.Size }

// WetGain returns the wet-path gain divisor. It is carried as part of the
// reverb configuration and is not applied by ProcessInPlace.
func (r *Reverb) WetGain() int64 { return r.wetGain }

// Cursors returns the current position of every cursor.
func (r *Reverb) Cursors() Cursors {
	r.mustBeLive("Cursors")

	c := Cursors{
		LeftRead:      r.left.read,
		RightRead:     r.right.read,
		LeftReinject:  r.left.reinject,
		RightReinject: r.right.reinject,
	}
	copy(c.LeftSpeaker[:room.SidePaths], r.left.fromLeft[:])
	copy(c.LeftSpeaker[room.SidePaths:], r.right.fromLeft[:])
	copy(c.RightSpeaker[:room.SidePaths], r.left.fromRight[:])
	copy(c.RightSpeaker[room.SidePaths:], r.right.fromRight[:])

	return c
}

func saturate(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}

	if v < math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}
