package delay

import "testing"

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size=0")
	}

	if _, err := New(-1); err == nil {
		t.Fatal("expected error for size=-1")
	}
}

func TestNewZeroed(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 16 {
		t.Fatalf("Len: got %d want 16", d.Len())
	}

	if !d.IsZero() {
		t.Fatal("new line not zeroed")
	}
}

// --- accumulate and drain ---

func TestAddAccumulates(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	d.Add(3, 5)
	d.Add(3, -2)
	d.Add(3, 10)

	if got := d.At(3); got != 13 {
		t.Fatalf("At(3): got %d want 13", got)
	}
}

func TestAddAdvancesAndWraps(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	pos := 2
	for i := range 6 {
		pos = d.Add(pos, int64(i+1))
		if pos < 0 || pos >= d.Len() {
			t.Fatalf("cursor out of range: %d", pos)
		}
	}
	// writes landed at 2,3,0,1,2,3
	want := []int64{3, 4, 1 + 5, 2 + 6}
	for i, w := range want {
		if got := d.At(i); got != w {
			t.Fatalf("At(%d): got %d want %d", i, got, w)
		}
	}

	if pos != 0 {
		t.Fatalf("final cursor: got %d want 0", pos)
	}
}

func TestDrainClearsCell(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatal(err)
	}

	d.Add(2, 7)

	v, next := d.Drain(2)
	if v != 7 {
		t.Fatalf("Drain value: got %d want 7", v)
	}

	if next != 0 {
		t.Fatalf("Drain cursor: got %d want 0", next)
	}

	if d.At(2) != 0 {
		t.Fatalf("cell not cleared: %d", d.At(2))
	}
}

func TestDelayedReadback(t *testing.T) {
	// A writer offset by k cells ahead of the reader is heard k steps later.
	const size, k = 10, 4

	d, err := New(size)
	if err != nil {
		t.Fatal(err)
	}

	write, read := k, 0
	var out []int64
	for i := range 3 * size {
		in := int64(0)
		if i == 0 {
			in = 100
		}

		write = d.Add(write, in)

		var v int64
		v, read = d.Drain(read)
		out = append(out, v)
	}

	for i, v := range out {
		want := int64(0)
		if i == k {
			want = 100
		}

		if v != want {
			t.Fatalf("out[%d]: got %d want %d", i, v, want)
		}
	}
}

func TestWrap(t *testing.T) {
	d, err := New(5)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct{ in, want int }{{0, 0}, {4, 4}, {5, 0}, {12, 2}} {
		if got := d.Wrap(tc.in); got != tc.want {
			t.Fatalf("Wrap(%d): got %d want %d", tc.in, got, tc.want)
		}
	}
}

func TestReset(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Add(0, 1)
	d.Add(3, -2)
	d.Reset()

	if !d.IsZero() {
		t.Fatal("after reset: line not zero")
	}
}

// --- benchmarks ---

func BenchmarkAddDrain(b *testing.B) {
	d, _ := New(4096)
	write, read := 1000, 0
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		write = d.Add(write, int64(i))
		_, read = d.Drain(read)
	}
}
