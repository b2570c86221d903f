package conv_test

import (
	"fmt"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/conv"
	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

func ExampleConv2() {
	src := grid.RealFromRows([][]float64{{1, 2, 3, 4}})
	kernel := grid.RealFromRows([][]float64{{0.5, 0, 0.5}})

	for _, shape := range []conv.Shape{conv.Full, conv.Same, conv.Valid} {
		out, err := conv.Conv2(src, kernel, shape)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(out.Row(0))
	}
	// Output:
	// [0.5 1 2 3 1.5 2]
	// [1 2 3 1.5]
	// [2 3]
}
