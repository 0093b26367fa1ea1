package design

import (
	"math"

	"github.com/cwbudde/algo-roomverb/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Peak designs a peaking-EQ biquad with gain in dB and quality factor q.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	alpha := math.Sin(w0) / (2 * q)

	return peak(w0, alpha, gainDB)
}

// PeakBandwidth designs a peaking-EQ biquad with gain in dB whose bandwidth
// is given in octaves between the -gainDB/2 points, using the RBJ
// digital bandwidth warping:
//
//	alpha = sin(w0) * sinh(ln(2)/2 * bw * w0/sin(w0))
//
// A non-positive or non-finite bandwidth yields zero coefficients.
func PeakBandwidth(freq, gainDB, octaves, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	if octaves <= 0 || math.IsNaN(octaves) || math.IsInf(octaves, 0) {
		return biquad.Coefficients{}
	}

	sw := math.Sin(w0)
	alpha := sw * math.Sinh(math.Ln2/2*octaves*w0/sw)

	return peak(w0, alpha, gainDB)
}

// BandwidthToQ converts a bandwidth in octaves at the normalized center
// frequency w0 (rad/sample) to the equivalent quality factor.
func BandwidthToQ(octaves, w0 float64) float64 {
	sw := math.Sin(w0)
	if sw == 0 || octaves <= 0 {
		return defaultQ
	}

	return 1 / (2 * math.Sinh(math.Ln2/2*octaves*w0/sw))
}

func peak(w0, alpha, gainDB float64) biquad.Coefficients {
	cw := math.Cos(w0)
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
