package room

import (
	"fmt"
	"math"
)

// NumReflectors is the number of reflective surface points in a room.
const NumReflectors = 8

// SidePaths is the number of reflectors associated with each side.
const SidePaths = NumReflectors / 2

// DefaultSpeedOfSound is the speed of sound in m/s.
const DefaultSpeedOfSound = 340.29

// Point is a position on the room plane in meters.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Room is an immutable room model.
type Room struct {
	LeftSpeaker  Point
	RightSpeaker Point
	Listener     Point
	Reflectors   [NumReflectors]Point
	SpeedOfSound float64 // m/s
}

// Default returns the built-in 30 m × 40 m room.
func Default() Room {
	return Room{
		LeftSpeaker:  Point{2.5, 5.0},
		RightSpeaker: Point{7.5, 5.0},
		Listener:     Point{5.0, 15.0},
		Reflectors: [NumReflectors]Point{
			{10.0, 0.0},
			{0.0, 13.3333},
			{0.0, 26.6666},
			{10.0, 40.0},
			{20.0, 40.0},
			{30.0, 13.3333},
			{30.0, 26.6666},
			{20.0, 0.0},
		},
		SpeedOfSound: DefaultSpeedOfSound,
	}
}

// Validate reports whether the room can be resolved.
func (r Room) Validate() error {
	if r.SpeedOfSound <= 0 || math.IsNaN(r.SpeedOfSound) || math.IsInf(r.SpeedOfSound, 0) {
		return fmt.Errorf("room: speed of sound must be > 0: %f", r.SpeedOfSound)
	}

	if err := checkPoint("left speaker", r.LeftSpeaker); err != nil {
		return err
	}

	if err := checkPoint("right speaker", r.RightSpeaker); err != nil {
		return err
	}

	if err := checkPoint("listener", r.Listener); err != nil {
		return err
	}

	for i, p := range r.Reflectors {
		if err := checkPoint(fmt.Sprintf("reflector %d", i), p); err != nil {
			return err
		}
	}

	return nil
}

// Paths holds the resolved path lengths of a room in meters.
type Paths struct {
	// LeftSpeaker[i] is the excess length of the path
	// left speaker → reflector i → listener over the direct path.
	LeftSpeaker [NumReflectors]float64
	// RightSpeaker[i] is the same for the right speaker.
	RightSpeaker [NumReflectors]float64
	// Reflection[i] is twice the listener ↔ reflector i distance.
	Reflection [NumReflectors]float64

	// DirectLeft and DirectRight are the speaker → listener distances.
	DirectLeft  float64
	DirectRight float64

	// MaxLeft and MaxRight are the longest paths on each side, seeded with
	// the direct distance of that side.
	MaxLeft  float64
	MaxRight float64
}

// Resolve computes all reflection paths of r.
func (r Room) Resolve() Paths {
	var p Paths

	p.DirectLeft = r.LeftSpeaker.Distance(r.Listener)
	p.DirectRight = r.RightSpeaker.Distance(r.Listener)
	p.MaxLeft = p.DirectLeft
	p.MaxRight = p.DirectRight

	for i, refl := range r.Reflectors {
		toListener := r.Listener.Distance(refl)

		p.LeftSpeaker[i] = r.LeftSpeaker.Distance(refl) + toListener - p.DirectLeft
		p.RightSpeaker[i] = r.RightSpeaker.Distance(refl) + toListener - p.DirectRight
		p.Reflection[i] = 2 * toListener

		longest := max(p.LeftSpeaker[i], p.RightSpeaker[i], p.Reflection[i])
		if i < SidePaths {
			p.MaxLeft = max(p.MaxLeft, longest)
		} else {
			p.MaxRight = max(p.MaxRight, longest)
		}
	}

	return p
}

// Samples converts a path length to a delay in samples, rounded to the
// nearest sample.
func (r Room) Samples(distance float64, sampleRate int) int {
	return Samples(distance, sampleRate, r.SpeedOfSound)
}

// Samples converts distance (m) to a delay in samples at sampleRate for the
// given speed of sound (m/s).
func Samples(distance float64, sampleRate int, speedOfSound float64) int {
	if distance <= 0 || sampleRate <= 0 || speedOfSound <= 0 {
		return 0
	}

	return int(math.Round(float64(sampleRate) * distance / speedOfSound))
}

func checkPoint(name string, p Point) error {
	if !finite(p.X) || !finite(p.Y) {
		return fmt.Errorf("room: %s position must be finite: (%f, %f)", name, p.X, p.Y)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
