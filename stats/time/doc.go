// Package time computes level statistics of audio channels in the time
// domain: peak, RMS, crest factor, energy and the position of the last
// non-zero sample, in one pass or block by block with [StreamingStats].
package time
