// Package ir captures and analyzes impulse responses of the room reverb.
//
// [Capture] drives a reverb with a single stereo impulse and records both
// channels. [Analyzer] derives decay and energy-ratio metrics from the
// Schroeder backward integral of a response:
//
//   - EDT: early decay time (0 to -10 dB, extrapolated to -60 dB)
//   - T20, T30: reverberation time from -5 to -25 dB and -5 to -35 dB
//   - RT60: T30 when available, T20 otherwise
//   - C80: clarity (early-to-late energy ratio at 80 ms)
//   - D50: definition (early energy fraction at 50 ms)
//   - Center time: temporal energy centroid
//
// # Usage
//
//	r, _ := reverb.New(44100)
//	resp, _ := ir.Capture(r, 44100, 10000, 0)
//	metrics, _ := ir.NewAnalyzer(44100).Analyze(resp.Left)
package ir
