package geometry_test

import (
	"fmt"

	"github.com/draftline/draftline/pkg/geometry"
)

func ExampleUnion() {
	// Two cabinets side by side with a countertop above them.
	bounds := geometry.Union([]geometry.Rect{
		{X: 0, Y: 0, Width: 36, Height: 36},
		{X: 36, Y: 0, Width: 30, Height: 36},
		{X: 0, Y: 36, Width: 66, Height: 1.5},
	})

	fmt.Printf("bounds: %gx%g at (%g, %g)\n",
		bounds.Width, bounds.Height, bounds.X, bounds.Y)
	// Output:
	// bounds: 66x37.5 at (0, 0)
}

func ExampleParseClearance() {
	c, err := geometry.ParseClearance(`27" H x 30" W x 17" D`)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("height=%g width=%g depth=%g\n", c.Height, c.Width, c.Depth)
	// Output:
	// height=27 width=30 depth=17
}

func ExampleLengthSumDelta() {
	// Four modules plus two fillers should account for a 144" wall.
	delta := geometry.LengthSumDelta([]float64{36, 30, 36, 40}, 1, 1, 144)

	fmt.Println("off by", delta)
	fmt.Println("within 1/8\" tolerance:", geometry.WithinTolerance(delta, 0, 0.125))
	// Output:
	// off by 0
	// within 1/8" tolerance: true
}
