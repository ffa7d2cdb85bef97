package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-ms/dsp/buffer"
)

func ExampleBuffer() {
	peaks, err := buffer.FromSlice([]float64{
		500.2, 1200, 0.1,
		501.2, 640, 0.1,
	}, 3)
	if err != nil {
		panic(err)
	}

	fmt.Println(peaks.Len(), peaks.Cell(), peaks.Dim())
	fmt.Println(peaks.Row(1))
	fmt.Println(peaks.Column(1))

	// Output:
	// 2 3 2
	// [501.2 640 0.1]
	// [1200 640]
}
