package delay

import "fmt"

// Line is a fixed-point circular delay line.
//
// Unlike a classic single-writer delay line, a Line has no write head of its
// own. Callers keep any number of cursors into it: writers accumulate energy
// at their cursor with Add, and a reader empties cells with Drain so later
// writes can accumulate into them again. Every cursor returned by a Line lies
// in [0, Len()).
type Line struct {
	buffer []int64
}

// New returns a zeroed delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}

	return &Line{buffer: make([]int64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Wrap maps any non-negative offset into [0, Len()).
func (d *Line) Wrap(pos int) int {
	return pos % len(d.buffer)
}

// Add accumulates v into the cell at pos and returns the advanced cursor.
func (d *Line) Add(pos int, v int64) int {
	d.buffer[pos] += v

	pos++
	if pos == len(d.buffer) {
		pos = 0
	}

	return pos
}

// Drain returns the cell at pos, clears it and returns the advanced cursor.
func (d *Line) Drain(pos int) (int64, int) {
	v := d.buffer[pos]
	d.buffer[pos] = 0

	pos++
	if pos == len(d.buffer) {
		pos = 0
	}

	return v, pos
}

// At returns the cell at pos without modifying it.
func (d *Line) At(pos int) int64 {
	return d.buffer[pos]
}

// Reset clears all cells.
func (d *Line) Reset() {
	clear(d.buffer)
}

// IsZero reports whether every cell is zero.
func (d *Line) IsZero() bool {
	for _, v := range d.buffer {
		if v != 0 {
			return false
		}
	}

	return true
}
