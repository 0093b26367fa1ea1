package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-roomverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-roomverb/dsp/room"
)

// SideLayout describes one delay line and the initial positions of the
// cursors that write into it. Every offset lies in [0, Size).
type SideLayout struct {
	Size int

	// FromLeft and FromRight are the taps fed by the left and right
	// speakers through this side's four reflectors.
	FromLeft  [room.SidePaths]int
	FromRight [room.SidePaths]int

	// Reinject are the taps fed with the opposite channel's wet output.
	Reinject [room.SidePaths]int
}

// Layout is the resolved, immutable configuration of a Reverb.
type Layout struct {
	SampleRate   int
	Left         SideLayout
	Right        SideLayout
	Coefficients [NumBands]biquad.Fixed
}

// ResolveLayout derives delay-line sizes, tap offsets and quantized
// absorption coefficients for rm at sampleRate.
//
// Each line holds the longest path of its side plus one guard cell, so
// every tap offset is already inside the line.
func ResolveLayout(rm room.Room, sampleRate int) (Layout, error) {
	if sampleRate <= 0 {
		return Layout{}, fmt.Errorf("reverb: sample rate must be > 0: %d", sampleRate)
	}

	if err := rm.Validate(); err != nil {
		return Layout{}, fmt.Errorf("reverb: invalid room: %w", err)
	}

	p := rm.Resolve()

	l := Layout{SampleRate: sampleRate}
	l.Left.Size = rm.Samples(p.MaxLeft, sampleRate) + 1
	l.Right.Size = rm.Samples(p.MaxRight, sampleRate) + 1

	offset := func(distance float64, size int) int {
		return rm.Samples(distance, sampleRate) % size
	}

	for j := range room.SidePaths {
		k := j + room.SidePaths

		l.Left.FromLeft[j] = offset(p.LeftSpeaker[j], l.Left.Size)
		l.Left.FromRight[j] = offset(p.RightSpeaker[j], l.Left.Size)
		l.Left.Reinject[j] = offset(p.Reflection[j], l.Left.Size)

		l.Right.FromLeft[j] = offset(p.LeftSpeaker[k], l.Right.Size)
		l.Right.FromRight[j] = offset(p.RightSpeaker[k], l.Right.Size)
		l.Right.Reinject[j] = offset(p.Reflection[k], l.Right.Size)
	}

	coeffs, err := designAbsorption(sampleRate)
	if err != nil {
		return Layout{}, err
	}

	l.Coefficients = coeffs

	return l, nil
}
