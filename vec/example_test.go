package vec_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linmath/vec"
)

func ExampleVector3_Cross() {
	x := vec.UnitX3[float64]()
	y := vec.UnitY3[float64]()

	fmt.Println(x.Cross(y))
	// Output: {0 0 1}
}

func ExampleVector2_RotatedBy() {
	v := vec.New2(1.0, 0.0).RotatedBy(math.Pi)

	fmt.Printf("%.0f %.0f\n", v.X, v.Y)
	// Output: -1 0
}

func ExampleVector3_Lerp() {
	a := vec.Zero3[float64]()
	b := vec.New3(10.0, 20.0, 30.0)

	fmt.Println(a.Lerp(b, 0.5))
	// Output: {5 10 15}
}

func ExampleComplexFromAngle() {
	c := vec.ComplexFromAngle(math.Pi / 2)

	fmt.Printf("%.0f %.0f\n", c.Real, c.Imag)
	// Output: 0 1
}
