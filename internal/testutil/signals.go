package testutil

import (
	"math"
	"math/rand"
)

// StereoImpulse returns an interleaved stereo buffer of frames frames with a
// single (left, right) pair at frame 0.
func StereoImpulse(frames int, left, right int32) []int32 {
	out := make([]int32, 2*frames)
	if frames > 0 {
		out[0] = left
		out[1] = right
	}
	return out
}

// Silence returns frames frames of interleaved stereo zeros.
func Silence(frames int) []int32 {
	return make([]int32, 2*frames)
}

// DeterministicStereoNoise generates interleaved stereo white noise in
// [-amplitude, amplitude] with a fixed seed for reproducibility.
func DeterministicStereoNoise(seed int64, amplitude int32, frames int) []int32 {
	out := make([]int32, 2*frames)
	rng := rand.New(rand.NewSource(seed))
	span := int64(amplitude)*2 + 1
	for i := range out {
		out[i] = int32(rng.Int63n(span) - int64(amplitude))
	}
	return out
}

// DeterministicStereoSine generates an interleaved stereo sine with the
// right channel a quarter period behind the left.
func DeterministicStereoSine(freqHz, sampleRate float64, amplitude int32, frames int) []int32 {
	out := make([]int32, 2*frames)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range frames {
		out[2*i] = int32(float64(amplitude) * math.Sin(step*float64(i)))
		out[2*i+1] = int32(float64(amplitude) * math.Cos(step*float64(i)))
	}
	return out
}

// Deinterleave splits an interleaved stereo buffer into float channels
// scaled by 1/scale. A trailing odd sample is ignored.
func Deinterleave(buf []int32, scale float64) (left, right []float64) {
	frames := len(buf) / 2
	left = make([]float64, frames)
	right = make([]float64, frames)
	for i := range frames {
		left[i] = float64(buf[2*i]) / scale
		right[i] = float64(buf[2*i+1]) / scale
	}
	return left, right
}

// DC generates a constant-valued float signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
