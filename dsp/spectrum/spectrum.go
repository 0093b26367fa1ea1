package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum functions.
var (
	ErrEmptySignal       = errors.New("spectrum: signal is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
	ErrFFTSize           = errors.New("spectrum: fft size must be a power of two not smaller than the signal")
	ErrEmptyBand         = errors.New("spectrum: octave band contains no bins")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Spectrum holds the non-negative frequency bins [0, FFTSize/2] of a real
// signal.
type Spectrum struct {
	Bins       []complex128
	FFTSize    int
	SampleRate float64
}

// FromSignal zero-pads x to fftSize and returns its spectrum. An fftSize of
// zero selects the next power of two that holds x.
func FromSignal(x []float64, sampleRate float64, fftSize int) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	if fftSize == 0 {
		fftSize = nextPowerOf2(len(x))
	}

	if fftSize < len(x) || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d for %d samples", ErrFFTSize, fftSize, len(x))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return &Spectrum{
		Bins:       out[:fftSize/2+1],
		FFTSize:    fftSize,
		SampleRate: sampleRate,
	}, nil
}

// BinFrequency returns the center frequency of bin k in Hz.
func (s *Spectrum) BinFrequency(k int) float64 {
	return float64(k) * s.SampleRate / float64(s.FFTSize)
}

// Power returns |X[k]|^2 for every bin.
func (s *Spectrum) Power() []float64 {
	out := make([]float64, len(s.Bins))
	re, im, buf := s.split()
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Magnitude returns |X[k]| for every bin.
func (s *Spectrum) Magnitude() []float64 {
	out := make([]float64, len(s.Bins))
	re, im, buf := s.split()
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

func (s *Spectrum) split() (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(s.Bins))
	for i, c := range s.Bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// OctaveBandLevels returns the mean power per bin, in dB, of the octave
// band [fc/√2, fc·√2) around each center frequency. Averaging per bin keeps
// levels of bands with different widths comparable.
func (s *Spectrum) OctaveBandLevels(centers []float64) ([]float64, error) {
	power := s.Power()
	out := make([]float64, len(centers))

	for i, fc := range centers {
		lo, hi := fc/math.Sqrt2, fc*math.Sqrt2

		var sum float64
		var n int
		for k, p := range power {
			f := s.BinFrequency(k)
			if f >= lo && f < hi {
				sum += p
				n++
			}
		}

		if n == 0 {
			return nil, fmt.Errorf("%w: %g Hz", ErrEmptyBand, fc)
		}

		out[i] = 10 * math.Log10(sum/float64(n))
	}

	return out, nil
}

// Taper fades out the last n samples of x in place with a half-Hann ramp.
func Taper(x []float64, n int) {
	n = min(n, len(x))
	if n <= 0 {
		return
	}

	ramp := make([]float64, n)
	for i := range ramp {
		ramp[i] = 0.5 * (1 + math.Cos(math.Pi*float64(i+1)/float64(n)))
	}

	tail := x[len(x)-n:]
	vecmath.MulBlockInPlace(tail, ramp)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
