package fir_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-biofilter/dsp/filter/fir"
)

func ExampleFilter_ProcessSample() {
	// 3-tap moving average filter.
	f, err := fir.New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	if err != nil {
		log.Fatal(err)
	}

	input := []float64{0, 1, 2, 3, 3, 3}
	for i, x := range input {
		y := f.ProcessSample(x)
		fmt.Printf("y[%d] = %.4f\n", i, y)
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.3333
	// y[2] = 1.0000
	// y[3] = 2.0000
	// y[4] = 2.6667
	// y[5] = 3.0000
}

func ExampleFilter_ProcessBlockTo() {
	// Differentiator over a block of samples.
	f, err := fir.New([]float64{1, -1})
	if err != nil {
		log.Fatal(err)
	}

	in := []float64{0, 1, 3, 6, 10}
	out := make([]float64, len(in))
	f.ProcessBlockTo(out, in)

	fmt.Println(out)
	// Output:
	// [0 1 2 3 4]
}
