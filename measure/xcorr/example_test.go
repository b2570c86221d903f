package xcorr_test

import (
	"fmt"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
	"github.com/almondyoung/depth-aware-motion-deblurring/measure/xcorr"
)

func ExampleScore() {
	x := grid.RealFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	y := grid.RealFromRows([][]float64{
		{2, 4, 6},
		{8, 10, 12},
	})

	score, err := xcorr.Score(x, y, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", score)
	// Output:
	// 1.00
}
