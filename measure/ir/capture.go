package ir

import (
	"fmt"

	"github.com/cwbudde/algo-roomverb/dsp/effects/reverb"
	timestats "github.com/cwbudde/algo-roomverb/stats/time"
)

// captureBlock is the number of frames processed per call while capturing.
const captureBlock = 1024

// Response is a captured stereo impulse response, normalized so that the
// impulse amplitude maps to 1.
type Response struct {
	Left  []float64
	Right []float64
	// Tail is the number of frames up to and including the last non-zero
	// output frame.
	Tail int
	// Silent reports whether the reverb had fully drained by the end of the
	// capture.
	Silent bool

	// LeftStats and RightStats are the level statistics of each channel.
	LeftStats  timestats.Stats
	RightStats timestats.Stats
}

// Capture clears r, feeds one (left, right) impulse followed by silence for
// a total of frames frames, and records the output. r is cleared again
// before returning. Because every cursor advances in lockstep, the response
// does not depend on how far r had advanced before the call.
func Capture(r *reverb.Reverb, frames int, left, right int32) (Response, error) {
	if frames <= 0 {
		return Response{}, fmt.Errorf("ir: capture length must be > 0: %d", frames)
	}

	scale := float64(max(abs32(left), abs32(right)))
	if scale == 0 {
		return Response{}, ErrZeroImpulse
	}

	r.Reset()
	defer r.Reset()

	resp := Response{
		Left:  make([]float64, frames),
		Right: make([]float64, frames),
	}

	leftStats := timestats.NewStreamingStats()
	rightStats := timestats.NewStreamingStats()

	buf := make([]int32, 2*captureBlock)
	for start := 0; start < frames; start += captureBlock {
		n := min(captureBlock, frames-start)
		block := buf[:2*n]
		clear(block)

		if start == 0 {
			block[0], block[1] = left, right
		}

		r.ProcessInPlace(block)

		for i := range n {
			resp.Left[start+i] = float64(block[2*i]) / scale
			resp.Right[start+i] = float64(block[2*i+1]) / scale
		}

		leftStats.Update(resp.Left[start : start+n])
		rightStats.Update(resp.Right[start : start+n])
	}

	resp.LeftStats = leftStats.Result()
	resp.RightStats = rightStats.Result()
	resp.Tail = max(resp.LeftStats.LastNonZero, resp.RightStats.LastNonZero) + 1
	resp.Silent = r.Silent()

	return resp, nil
}

func abs32(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}

	return int64(v)
}
