package biquad

import "fmt"

// DefaultScale is the fixed-point scale used by the room reverb filters.
const DefaultScale = 1024

// Fixed holds biquad coefficients quantized to integers with a common scale:
// B0, B1, B2, A1, A2 are the normalized coefficients multiplied by Scale and
// truncated toward zero.
type Fixed struct {
	B0, B1, B2 int64
	A1, A2     int64
	Scale      int64
}

// Quantize converts c to fixed point by multiplying every coefficient by
// scale and truncating toward zero.
func Quantize(c Coefficients, scale int64) (Fixed, error) {
	if scale <= 0 {
		return Fixed{}, fmt.Errorf("biquad: fixed-point scale must be > 0: %d", scale)
	}

	s := float64(scale)

	return Fixed{
		B0:    int64(c.B0 * s),
		B1:    int64(c.B1 * s),
		B2:    int64(c.B2 * s),
		A1:    int64(c.A1 * s),
		A2:    int64(c.A2 * s),
		Scale: scale,
	}, nil
}

// Float returns the coefficients the fixed-point values represent.
func (f Fixed) Float() Coefficients {
	if f.Scale == 0 {
		return Coefficients{}
	}

	s := float64(f.Scale)

	return Coefficients{
		B0: float64(f.B0) / s,
		B1: float64(f.B1) / s,
		B2: float64(f.B2) / s,
		A1: float64(f.A1) / s,
		A2: float64(f.A2) / s,
	}
}

// Array returns the coefficients in b0, b1, b2, a1, a2 order.
func (f Fixed) Array() [5]int64 {
	return [5]int64{f.B0, f.B1, f.B2, f.A1, f.A2}
}

// Section is a fixed-point biquad in Direct Form I. It keeps the two most
// recent inputs and outputs; every step uses integer arithmetic only and
// divides the accumulated sum by the coefficient scale with truncation
// toward zero.
type Section struct {
	Fixed

	x1, x2 int64
	y1, y2 int64
}

// NewSection returns a Section with zero history.
func NewSection(f Fixed) *Section {
	return &Section{Fixed: f}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x int64) int64 {
	y := (x*s.B0 + s.x1*s.B1 + s.x2*s.B2 - s.y1*s.A1 - s.y2*s.A2) / s.Scale

	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y

	return y
}

// Reset clears the filter history.
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// IsZero reports whether all history cells are zero.
func (s *Section) IsZero() bool {
	return s.x1 == 0 && s.x2 == 0 && s.y1 == 0 && s.y2 == 0
}

// History returns the input and output history, most recent first.
func (s *Section) History() (in, out [2]int64) {
	return [2]int64{s.x1, s.x2}, [2]int64{s.y1, s.y2}
}

// ImpulseResponse computes n samples of the impulse response for an impulse
// of the given amplitude. The section history is saved and restored.
func (s *Section) ImpulseResponse(n int, amplitude int64) []int64 {
	if n <= 0 {
		return nil
	}

	saved := *s
	s.Reset()

	ir := make([]int64, n)
	ir[0] = s.ProcessSample(amplitude)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}

	*s = saved
	return ir
}
