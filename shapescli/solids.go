package shapescli

import (
	"fmt"

	"oss.terrastruct.com/shapes/lib/numeric"
	"oss.terrastruct.com/shapes/lib/solid"
	"oss.terrastruct.com/shapes/lib/xmain"
)

func cubeCmd(ms *xmain.State, args []string) error {
	side, err := readDimension(ms, args, "side", "Please enter the side length of the cube: ")
	if err != nil {
		return err
	}
	c, err := solid.NewCube(side)
	if err != nil {
		return err
	}
	fmt.Fprintf(ms.Stdout, "Volume: %.2f\n", c.Volume())
	fmt.Fprintf(ms.Stdout, "Surface Area: %.2f\n", c.SurfaceArea())
	fmt.Fprintf(ms.Stdout, "Total Edge Length: %.2f\n", c.Perimeter())
	return nil
}

func sphereCmd(ms *xmain.State, args []string) error {
	radius, err := readDimension(ms, args, "radius", "Please enter the radius of the sphere: ")
	if err != nil {
		return err
	}
	s, err := solid.NewSphere(radius)
	if err != nil {
		return err
	}
	fmt.Fprintf(ms.Stdout, "Volume: %.2f\n", s.Volume())
	fmt.Fprintf(ms.Stdout, "Surface Area: %.2f\n", s.SurfaceArea())
	fmt.Fprintf(ms.Stdout, "Circumference: %.2f\n", s.Circumference())
	return nil
}

// readDimension takes the dimension from args, or prompts for it on stdin.
func readDimension(ms *xmain.State, args []string, name, prompt string) (float64, error) {
	var s string
	switch len(args) {
	case 0:
		var err error
		s, err = ms.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", name, err)
		}
	case 1:
		s = args[0]
	default:
		return 0, xmain.UsageErrorf("expected at most one %s argument, got %d", name, len(args))
	}
	return numeric.Parse(name, s)
}
