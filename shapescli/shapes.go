package shapescli

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/shapes/lib/numeric"
	"oss.terrastruct.com/shapes/lib/shape"
	"oss.terrastruct.com/shapes/lib/xmain"
)

func circleCmd(ms *xmain.State, f flags, args []string) error {
	if len(args) > 0 {
		return xmain.UsageErrorf("circle accepts no arguments, use --x, --y and --radius")
	}
	x, y, err := parsePosition(f)
	if err != nil {
		return err
	}
	r, err := numeric.Parse("radius", *f.radius)
	if err != nil {
		return err
	}
	c, err := shape.NewCircle(x, y, r)
	if err != nil {
		return err
	}
	fmt.Fprintln(ms.Stdout, c)
	fmt.Fprintf(ms.Stdout, "Is unit circle? %v\n", c.IsUnitCircle())
	return translateCmd(ms, f, c)
}

func rectangleCmd(ms *xmain.State, f flags, args []string) error {
	if len(args) > 0 {
		return xmain.UsageErrorf("rectangle accepts no arguments, use --x, --y, --width and --height")
	}
	x, y, err := parsePosition(f)
	if err != nil {
		return err
	}
	w, err := numeric.Parse("width", *f.width)
	if err != nil {
		return err
	}
	h, err := numeric.Parse("height", *f.height)
	if err != nil {
		return err
	}
	r, err := shape.NewRectangle(x, y, w, h)
	if err != nil {
		return err
	}
	fmt.Fprintln(ms.Stdout, r)
	fmt.Fprintf(ms.Stdout, "Is square? %v\n", r.IsSquare())
	return translateCmd(ms, f, r)
}

// translateCmd moves s when --dx or --dy was passed and prints where it landed.
func translateCmd(ms *xmain.State, f flags, s shape.Shape) error {
	if !ms.Opts.Flags.Changed("dx") && !ms.Opts.Flags.Changed("dy") {
		return nil
	}
	dx, err := numeric.Parse("dx", *f.dx)
	if err != nil {
		return err
	}
	dy, err := numeric.Parse("dy", *f.dy)
	if err != nil {
		return err
	}
	if err := s.Translate(dx, dy); err != nil {
		return err
	}
	pos := s.Position()
	fmt.Fprintf(ms.Stdout, "Moved to: %s\n", pos.String())
	return nil
}

func sortCmd(ms *xmain.State, f flags, args []string) error {
	if len(args) > 0 {
		return xmain.UsageErrorf("sort accepts no arguments, use --circle and --rect")
	}
	shapes, err := parseShapes(f)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		return xmain.UsageErrorf("sort needs at least one --circle or --rect")
	}
	if err := shape.Sort(shapes); err != nil {
		return err
	}
	for i, s := range shapes {
		fmt.Fprintf(ms.Stdout, "%d. %s\n", i+1, s)
	}
	return nil
}

func parsePosition(f flags) (x, y float64, err error) {
	x, err = numeric.Parse("x", *f.x)
	if err != nil {
		return 0, 0, err
	}
	y, err = numeric.Parse("y", *f.y)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseShapes builds the shapes passed with --circle and --rect, circles first.
func parseShapes(f flags) ([]shape.Shape, error) {
	var shapes []shape.Shape
	for _, arg := range *f.circles {
		s, err := parseShape(shape.CIRCLE_TYPE, arg, "x", "y", "radius")
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	for _, arg := range *f.rects {
		s, err := parseShape(shape.RECTANGLE_TYPE, arg, "x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// parseShape reads a comma separated list of numbers named by fields, position
// first.
func parseShape(shapeType, arg string, fields ...string) (shape.Shape, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != len(fields) {
		return nil, xmain.UsageErrorf("invalid %s %q: expected %s", strings.ToLower(shapeType), arg, strings.Join(fields, ","))
	}
	vals := make([]interface{}, len(parts))
	for i, p := range parts {
		v, err := numeric.Parse(fields[i], p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", strings.ToLower(shapeType), arg, err)
		}
		vals[i] = v
	}
	return shape.NewShape(shapeType, vals[0], vals[1], vals[2:]...)
}
