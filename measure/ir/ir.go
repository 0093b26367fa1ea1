package ir

import (
	"errors"
	"math"
)

// Errors returned by IR analysis functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrInvalidTime       = errors.New("ir: time must be positive")
	ErrNoDecay           = errors.New("ir: insufficient decay for RT calculation")
	ErrZeroImpulse       = errors.New("ir: impulse amplitude must be non-zero")
)

// decayFloorDB is the value used for points of the decay curve with no
// remaining energy.
const decayFloorDB = -200.0

// Metrics holds impulse response analysis results.
type Metrics struct {
	RT60       float64 // seconds, T30 if available, else T20
	EDT        float64 // seconds
	T20        float64 // seconds
	T30        float64 // seconds
	C80        float64 // dB
	D50        float64 // ratio 0-1
	CenterTime float64 // seconds
	PeakIndex  int     // sample index of the absolute maximum
}

// Analyzer computes IR metrics at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an IR analyzer with the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}

	if a.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// Analyze computes all metrics, measured from the response peak onward.
// Decay times that cannot be determined are reported as zero.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.check(ir); err != nil {
		return Metrics{}, err
	}

	peak := peakIndex(ir)
	tail := ir[peak:]
	curve := decayCurve(tail)

	m := Metrics{
		PeakIndex:  peak,
		EDT:        a.reverbTime(curve, 0, -10),
		T20:        a.reverbTime(curve, -5, -25),
		T30:        a.reverbTime(curve, -5, -35),
		CenterTime: a.centerTime(tail),
	}

	m.RT60 = m.T30
	if m.RT60 == 0 {
		m.RT60 = m.T20
	}

	early, late := a.splitEnergy(tail, 80)
	m.C80 = clarityDB(early, late)

	early, late = a.splitEnergy(tail, 50)
	if total := early + late; total > 0 {
		m.D50 = early / total
	}

	return m, nil
}

// DecayCurve returns the Schroeder backward integral of the squared
// response in dB, normalized to 0 dB at the first sample.
//
//	S(t) = 10*log10( ∫_t^∞ h²(τ) dτ / ∫_0^∞ h²(τ) dτ )
func (a *Analyzer) DecayCurve(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	return decayCurve(ir), nil
}

// RT60 returns the reverberation time from T30, falling back to T20.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	curve := decayCurve(ir)
	if rt := a.reverbTime(curve, -5, -35); rt > 0 {
		return rt, nil
	}

	if rt := a.reverbTime(curve, -5, -25); rt > 0 {
		return rt, nil
	}

	return 0, ErrNoDecay
}

// Clarity returns C(t) = 10*log10(early/late) for a boundary in ms.
func (a *Analyzer) Clarity(ir []float64, timeMs float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	if timeMs <= 0 {
		return 0, ErrInvalidTime
	}

	early, late := a.splitEnergy(ir, timeMs)
	return clarityDB(early, late), nil
}

// Definition returns D(t) = early/total for a boundary in ms.
func (a *Analyzer) Definition(ir []float64, timeMs float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	if timeMs <= 0 {
		return 0, ErrInvalidTime
	}

	early, late := a.splitEnergy(ir, timeMs)
	if early+late <= 0 {
		return 0, nil
	}

	return early / (early + late), nil
}

func decayCurve(ir []float64) []float64 {
	out := make([]float64, len(ir))

	var sum float64
	for i := len(ir) - 1; i >= 0; i-- {
		sum += ir[i] * ir[i]
		out[i] = sum
	}

	total := out[0]
	if total <= 0 {
		return out
	}

	for i, e := range out {
		if e <= 0 {
			out[i] = decayFloorDB
			continue
		}

		out[i] = 10 * math.Log10(e/total)
	}

	return out
}

// reverbTime fits a line to the decay curve between startDB and endDB and
// extrapolates it to -60 dB. It returns zero when the range is not reached.
func (a *Analyzer) reverbTime(curve []float64, startDB, endDB float64) float64 {
	start, end := -1, -1
	for i, v := range curve {
		if start < 0 && v <= startDB {
			start = i
		}

		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}

	if start < 0 || end <= start {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := start; i <= end; i++ {
		x := float64(i - start)
		sumX += x
		sumY += curve[i]
		sumXX += x * x
		sumXY += x * curve[i]
	}

	n := float64(end - start + 1)

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	slope := (n*sumXY - sumX*sumY) / denom // dB per sample
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func (a *Analyzer) splitEnergy(ir []float64, timeMs float64) (early, late float64) {
	boundary := int(math.Round(timeMs * 0.001 * a.SampleRate))

	for i, v := range ir {
		if i < boundary {
			early += v * v
		} else {
			late += v * v
		}
	}

	return early, late
}

func clarityDB(early, late float64) float64 {
	switch {
	case late <= 0:
		return math.Inf(1)
	case early <= 0:
		return math.Inf(-1)
	default:
		return 10 * math.Log10(early/late)
	}
}

func (a *Analyzer) centerTime(ir []float64) float64 {
	var num, den float64
	for i, v := range ir {
		e := v * v
		num += float64(i) / a.SampleRate * e
		den += e
	}

	if den <= 0 {
		return 0
	}

	return num / den
}

func peakIndex(ir []float64) int {
	idx := 0
	peak := 0.0
	for i, v := range ir {
		if av := math.Abs(v); av > peak {
			peak = av
			idx = i
		}
	}

	return idx
}
