// Package biquad provides second-order IIR filter primitives.
//
// [Coefficients] describe a normalized biquad in floating point and can
// evaluate its frequency response. [Quantize] turns them into [Fixed]
// integer coefficients, and [Section] runs a fixed-point Direct Form I
// filter over integer samples with truncating division by the scale, so the
// per-sample path never touches floating point and is bit-reproducible.
//
// Coefficient design (peaking EQ, etc.) lives in dsp/filter/design.
package biquad
