package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-roomverb/dsp/filter/biquad"
)

func ExampleQuantize() {
	f, err := biquad.Quantize(biquad.Coefficients{B0: 0.76, B1: -1.457, B2: 0.712, A1: -1.457, A2: 0.472}, biquad.DefaultScale)
	if err != nil {
		panic(err)
	}

	s := biquad.NewSection(f)
	fmt.Println(f.Array())
	fmt.Println(s.ProcessSample(1000), s.ProcessSample(0), s.ProcessSample(0))
	// Output:
	// [778 -1491 729 -1491 483]
	// 759 -350 -155
}
