package reverb

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-roomverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-roomverb/dsp/filter/design"
)

// NumBands is the number of surface-absorption filter bands.
const NumBands = 6

// absorptionBandwidth is the bandwidth of every absorption band in octaves.
const absorptionBandwidth = 2.0

// Band is one surface-absorption band: a peaking filter at FreqHz with
// GainDB attenuation. Lower frequencies lose less energy on reflection.
type Band struct {
	FreqHz float64
	GainDB float64
}

var absorptionBands = [NumBands]Band{
	{125, 0},
	{250, -6},
	{500, -13},
	{1000, -21},
	{2000, -30},
	{4000, -40},
}

// AbsorptionBands returns the surface-absorption profile.
func AbsorptionBands() [NumBands]Band {
	return absorptionBands
}

// designAbsorption designs and quantizes the absorption bank. Bands at or
// above Nyquist come out as zero coefficients and contribute nothing.
func designAbsorption(sampleRate int) ([NumBands]biquad.Fixed, error) {
	var out [NumBands]biquad.Fixed

	for i, b := range absorptionBands {
		c := design.PeakBandwidth(b.FreqHz, b.GainDB, absorptionBandwidth, float64(sampleRate))

		f, err := biquad.Quantize(c, biquad.DefaultScale)
		if err != nil {
			return out, fmt.Errorf("reverb: absorption band %d: %w", i, err)
		}

		out[i] = f
	}

	return out, nil
}

// AbsorptionImpulseResponse returns n samples of the absorption bank's
// response to an impulse of the given amplitude. Every sample is the sum of
// the six band outputs, computed in fixed point exactly as the stream
// processor does.
func (l Layout) AbsorptionImpulseResponse(n int, amplitude int64) []int64 {
	if n <= 0 {
		return nil
	}

	var bank [NumBands]biquad.Section
	for i := range bank {
		bank[i] = biquad.Section{Fixed: l.Coefficients[i]}
	}

	out := make([]int64, n)
	x := amplitude
	for i := range out {
		var y int64
		for b := range bank {
			y += bank[b].ProcessSample(x)
		}

		out[i] = y
		x = 0
	}

	return out
}

// AbsorptionResponseDB returns the magnitude in dB of the parallel sum of
// the quantized absorption bands at freqHz.
func (l Layout) AbsorptionResponseDB(freqHz float64) float64 {
	var h complex128
	for _, f := range l.Coefficients {
		c := f.Float()
		h += c.Response(freqHz, float64(l.SampleRate))
	}

	return 20 * math.Log10(cmplx.Abs(h))
}
