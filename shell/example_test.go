package shell_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/shell"
)

// ExampleRadii lists the nested shells of a five-dimension engine and clamps
// one oversized D4 coordinate into its shell.
func ExampleRadii() {
	cfg, err := hyperspace.New(
		hyperspace.WithLimitDimensions(5),
		hyperspace.WithBaseSlope(2),
		hyperspace.WithSlopeGrowth(1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	shells, _ := shell.Radii(cfg, cfg.LimitDimensions())
	for _, s := range shells {
		fmt.Printf("D%d r=%g\n", s.Dim, s.Radius)
	}

	v, clamped := shell.Clamp(5, shells[0].Radius)
	fmt.Printf("clamp(5)=%g clamped=%t\n", v, clamped)
	// Output:
	// D4 r=2
	// D5 r=3
	// clamp(5)=2 clamped=true
}
