package time

import "math"

// Stats holds level statistics of one channel.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	RMS            float64
	RMS_dB         float64
	CrestFactor_dB float64 // peak / RMS
	Energy         float64 // sum of squares
	// LastNonZero is the index of the last non-zero sample, -1 if every
	// sample is zero.
	LastNonZero int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes the statistics of signal in a single pass.
func Calculate(signal []float64) Stats {
	s := NewStreamingStats()
	s.Update(signal)

	return s.Result()
}

// StreamingStats accumulates statistics across consecutive blocks of one
// channel.
type StreamingStats struct {
	n       int
	sum     float64
	sumSq   float64
	peak    float64
	peakPos int
	last    int
}

// NewStreamingStats returns an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{last: -1}
}

// Update adds the next block of samples.
func (s *StreamingStats) Update(samples []float64) {
	for i, x := range samples {
		s.sum += x
		s.sumSq += x * x

		if a := math.Abs(x); a > s.peak {
			s.peak = a
			s.peakPos = s.n + i
		}

		if x != 0 {
			s.last = s.n + i
		}
	}

	s.n += len(samples)
}

// Result computes the statistics of everything added so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{
			Peak_dB:        math.Inf(-1),
			RMS_dB:         math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
			LastNonZero:    -1,
		}
	}

	rms := math.Sqrt(s.sumSq / float64(s.n))

	crest := math.Inf(-1)
	if rms > 0 {
		crest = ampTodB(s.peak / rms)
	}

	return Stats{
		Length:         s.n,
		DC:             s.sum / float64(s.n),
		Peak:           s.peak,
		PeakPos:        s.peakPos,
		Peak_dB:        ampTodB(s.peak),
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		CrestFactor_dB: crest,
		Energy:         s.sumSq,
		LastNonZero:    s.last,
	}
}

// Reset clears all accumulated data.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{last: -1}
}
