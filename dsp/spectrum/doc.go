// Package spectrum provides FFT-based spectrum analysis of impulse
// responses.
//
// [FromSignal] transforms a real signal with algo-fft and keeps the
// non-negative frequency bins. [Spectrum.Power] and [Spectrum.Magnitude]
// use algo-vecmath kernels, and [Spectrum.OctaveBandLevels] averages power
// per octave band. [Taper] fades out the end of a truncated response before
// analysis.
package spectrum
