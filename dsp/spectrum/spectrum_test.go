package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestFromSignalValidation(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		rate float64
		size int
		want error
	}{
		{"empty", nil, 48000, 0, ErrEmptySignal},
		{"zero rate", []float64{1}, 0, 0, ErrInvalidSampleRate},
		{"nan rate", []float64{1}, math.NaN(), 0, ErrInvalidSampleRate},
		{"not power of two", []float64{1, 2, 3}, 48000, 6, ErrFFTSize},
		{"too small", []float64{1, 2, 3}, 48000, 2, ErrFFTSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSignal(tt.x, tt.rate, tt.size)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}
}

func TestFromSignalDefaultSize(t *testing.T) {
	s, err := FromSignal(make([]float64, 1000), 48000, 0)
	if err != nil {
		t.Fatal(err)
	}

	if s.FFTSize != 1024 {
		t.Fatalf("FFTSize=%d want 1024", s.FFTSize)
	}

	if len(s.Bins) != 513 {
		t.Fatalf("len(Bins)=%d want 513", len(s.Bins))
	}
}

func TestImpulseIsFlat(t *testing.T) {
	x := make([]float64, 256)
	x[0] = 1

	s, err := FromSignal(x, 48000, 0)
	if err != nil {
		t.Fatal(err)
	}

	for k, p := range s.Power() {
		if math.Abs(p-1) > 1e-12 {
			t.Fatalf("power[%d]=%g want 1", k, p)
		}
	}
}

func TestSinePeaksAtItsBin(t *testing.T) {
	const (
		n   = 1024
		bin = 37
	)

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * bin * float64(i) / n)
	}

	s, err := FromSignal(x, 48000, n)
	if err != nil {
		t.Fatal(err)
	}

	mag := s.Magnitude()
	peak := 0
	for k := range mag {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	if peak != bin {
		t.Fatalf("peak at bin %d want %d", peak, bin)
	}

	if math.Abs(mag[bin]-n/2) > 1e-6 {
		t.Fatalf("|X[%d]|=%g want %d", bin, mag[bin], n/2)
	}

	want := bin * 48000.0 / n
	if got := s.BinFrequency(bin); math.Abs(got-want) > 1e-9 {
		t.Fatalf("BinFrequency=%g want %g", got, want)
	}
}

func TestMagnitudeSquaredMatchesPower(t *testing.T) {
	x := []float64{0.3, -1.2, 0.8, 0.05, -0.4, 0.9, 0, 0.1}

	s, err := FromSignal(x, 8000, 0)
	if err != nil {
		t.Fatal(err)
	}

	mag := s.Magnitude()
	pow := s.Power()
	for k := range mag {
		if math.Abs(mag[k]*mag[k]-pow[k]) > 1e-12 {
			t.Fatalf("bin %d: mag²=%g power=%g", k, mag[k]*mag[k], pow[k])
		}
	}
}

func TestOctaveBandLevels(t *testing.T) {
	x := make([]float64, 4096)
	x[0] = 0.5

	s, err := FromSignal(x, 44100, 0)
	if err != nil {
		t.Fatal(err)
	}

	levels, err := s.OctaveBandLevels([]float64{125, 1000, 8000})
	if err != nil {
		t.Fatal(err)
	}

	want := 20 * math.Log10(0.5)
	for i, l := range levels {
		if math.Abs(l-want) > 1e-9 {
			t.Fatalf("level[%d]=%g want %g", i, l, want)
		}
	}
}

func TestOctaveBandLevelsEmptyBand(t *testing.T) {
	s, err := FromSignal([]float64{1, 0, 0, 0}, 44100, 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.OctaveBandLevels([]float64{125}); !errors.Is(err, ErrEmptyBand) {
		t.Fatalf("err=%v want ErrEmptyBand", err)
	}
}

func TestTaper(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	Taper(x, 4)

	for i := range 4 {
		if x[i] != 1 {
			t.Fatalf("x[%d]=%g want untouched", i, x[i])
		}
	}

	if math.Abs(x[7]) > 1e-15 {
		t.Fatalf("last sample %g want 0", x[7])
	}

	for i := 4; i < 7; i++ {
		if x[i] <= x[i+1] || x[i] >= 1 {
			t.Fatalf("ramp not decreasing at %d: %v", i, x)
		}
	}

	short := []float64{2, 2}
	Taper(short, 10)
	if short[1] != 0 || math.Abs(short[0]-1) > 1e-12 {
		t.Fatalf("short taper=%v want [1 0]", short)
	}

	Taper(nil, 3)
}

func BenchmarkFromSignal(b *testing.B) {
	x := make([]float64, 32768)
	x[0] = 1

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := FromSignal(x, 44100, 0); err != nil {
			b.Fatal(err)
		}
	}
}
