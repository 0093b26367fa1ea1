// Package reverb provides a fixed-point stereo room reverb.
//
// [Reverb] models the early reflections of a small room described by
// dsp/room: two speakers, a listener and eight reflective surfaces. At
// construction the room geometry is resolved once into delay-line lengths
// and tap offsets, and a six-band peaking-EQ bank approximating surface
// absorption is designed and quantized to integers. Processing is integer
// only: dry samples are injected into both delay lines, the drained
// reflections are filtered and added to the dry signal, and the result is fed
// back into the opposite side's lines for diffusion.
//
// A Reverb is not safe for concurrent use. Independent instances share no
// state and may run on separate goroutines.
package reverb
