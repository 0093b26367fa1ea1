// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad. [Peak] and [PeakBandwidth] implement the RBJ
// peaking-EQ formulas, parameterized by quality factor or by bandwidth in
// octaves respectively.
package design
