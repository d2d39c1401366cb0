package shape

import (
	"fmt"
	"math"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/numeric"
)

// Circle is centered on its position. A zero radius is a valid point circle.
type Circle struct {
	baseShape
	radius float64
}

func NewCircle(x, y, radius interface{}) (*Circle, error) {
	base, err := newBaseShape(CIRCLE_TYPE, x, y)
	if err != nil {
		return nil, err
	}
	c := &Circle{baseShape: base}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCircle returns the unit circle at the origin.
func DefaultCircle() *Circle {
	return &Circle{
		baseShape: baseShape{Type: CIRCLE_TYPE},
		radius:    1,
	}
}

func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) SetRadius(v interface{}) error {
	r, err := numeric.NonNegative("radius", v)
	if err != nil {
		return err
	}
	c.radius = r
	return nil
}

// Is and GetType hold for a zero Circle too.
func (c *Circle) Is(shapeType string) bool {
	return shapeType == CIRCLE_TYPE
}

func (c *Circle) GetType() string {
	return CIRCLE_TYPE
}

func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter is the circumference.
func (c *Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

// IsUnitCircle is a convenience check for radius 1 centered on the origin,
// compared with numeric.Close rather than exactly.
func (c *Circle) IsUnitCircle() bool {
	return numeric.Close(c.radius, 1) &&
		numeric.Close(c.pos.X, 0) &&
		numeric.Close(c.pos.Y, 0)
}

func (c *Circle) GetBox() *geo.Box {
	return geo.NewBox(geo.NewPoint(c.pos.X-c.radius, c.pos.Y-c.radius), 2*c.radius, 2*c.radius)
}

func (c *Circle) GoString() string {
	return fmt.Sprintf("Circle(%s, radius=%s)", c.positionArgs(), geo.FormatFloat(c.radius))
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle at %s with radius %s. Area: %.2f, Perimeter: %.2f",
		c.pos.String(), geo.FormatFloat(c.radius), c.Area(), c.Perimeter())
}
