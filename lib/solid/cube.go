// Package solid holds standalone 3D solids. They have no position and are not
// comparable with shapes or with each other.
package solid

import (
	"fmt"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/numeric"
)

type Cube struct {
	side float64
}

// NewCube returns a cube with the given side length, which must be larger
// than zero.
func NewCube(side interface{}) (*Cube, error) {
	c := &Cube{}
	if err := c.SetSide(side); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cube) Side() float64 {
	return c.side
}

func (c *Cube) SetSide(v interface{}) error {
	s, err := numeric.Positive("side", v)
	if err != nil {
		return err
	}
	c.side = s
	return nil
}

func (c *Cube) Volume() float64 {
	return c.side * c.side * c.side
}

func (c *Cube) SurfaceArea() float64 {
	return 6 * c.side * c.side
}

// Perimeter is the total length of the 12 edges.
func (c *Cube) Perimeter() float64 {
	return 12 * c.side
}

func (c *Cube) GoString() string {
	return fmt.Sprintf("Cube(side=%s)", geo.FormatFloat(c.side))
}

func (c *Cube) String() string {
	return fmt.Sprintf("Cube with side=%.2f, volume=%.2f, surface_area=%.2f", c.side, c.Volume(), c.SurfaceArea())
}
