package room

import (
	"math"
	"testing"
)

func TestDefaultResolveMaxima(t *testing.T) {
	p := Default().Resolve()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"DirectLeft", p.DirectLeft, math.Hypot(2.5, 10)},
		{"DirectRight", p.DirectRight, math.Hypot(2.5, 10)},
		{"MaxLeft", p.MaxLeft, 2 * math.Hypot(5, 25)},
		{"MaxRight", p.MaxRight, 2 * math.Hypot(15, 25)},
	}
	for _, tc := range tests {
		if math.Abs(tc.got-tc.want) > 1e-9 {
			t.Fatalf("%s: got %v want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestResolveExcessPathsNonNegative(t *testing.T) {
	p := Default().Resolve()

	for i := range NumReflectors {
		if p.LeftSpeaker[i] < 0 || p.RightSpeaker[i] < 0 || p.Reflection[i] <= 0 {
			t.Fatalf("reflector %d: negative path left=%v right=%v refl=%v",
				i, p.LeftSpeaker[i], p.RightSpeaker[i], p.Reflection[i])
		}
	}
}

func TestResolveMaximaCoverSidePaths(t *testing.T) {
	p := Default().Resolve()

	for i := range NumReflectors {
		limit := p.MaxLeft
		if i >= SidePaths {
			limit = p.MaxRight
		}

		for _, d := range []float64{p.LeftSpeaker[i], p.RightSpeaker[i], p.Reflection[i]} {
			if d > limit {
				t.Fatalf("reflector %d: path %v exceeds side maximum %v", i, d, limit)
			}
		}
	}
}

func TestResolveExcessPath(t *testing.T) {
	r := Default()
	p := r.Resolve()

	refl := r.Reflectors[1]
	want := r.LeftSpeaker.Distance(refl) + r.Listener.Distance(refl) - r.LeftSpeaker.Distance(r.Listener)

	if math.Abs(p.LeftSpeaker[1]-want) > 1e-12 {
		t.Fatalf("LeftSpeaker[1]: got %v want %v", p.LeftSpeaker[1], want)
	}

	if math.Abs(p.Reflection[1]-2*r.Listener.Distance(refl)) > 1e-12 {
		t.Fatalf("Reflection[1]: got %v", p.Reflection[1])
	}
}

func TestSamples(t *testing.T) {
	tests := []struct {
		distance float64
		rate     int
		want     int
	}{
		{340.29, 44100, 44100},
		{2 * math.Hypot(5, 25), 44100, 6608},
		{2 * math.Hypot(15, 25), 48000, 8225},
		{0, 44100, 0},
		{1, 0, 0},
	}
	for _, tc := range tests {
		if got := Samples(tc.distance, tc.rate, DefaultSpeedOfSound); got != tc.want {
			t.Fatalf("Samples(%v, %d): got %d want %d", tc.distance, tc.rate, got, tc.want)
		}
	}
}

func TestSamplesMonotonicInRate(t *testing.T) {
	r := Default()
	p := r.Resolve()

	prev := 0
	for rate := 1000; rate <= 192000; rate += 500 {
		n := r.Samples(p.MaxRight, rate)
		if n < prev {
			t.Fatalf("rate %d: samples decreased %d -> %d", rate, prev, n)
		}
		prev = n
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default room: %v", err)
	}

	r := Default()
	r.SpeedOfSound = 0
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for zero speed of sound")
	}

	r = Default()
	r.Reflectors[5].X = math.NaN()
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for NaN reflector")
	}

	r = Default()
	r.Listener.Y = math.Inf(1)
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for infinite listener")
	}
}
