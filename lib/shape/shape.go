// Package shape defines 2D shapes with a validated position, an area and a
// perimeter. Shapes are ordered by area, then perimeter.
package shape

import (
	"fmt"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/numeric"
)

const (
	CIRCLE_TYPE    = "Circle"
	RECTANGLE_TYPE = "Rectangle"
)

type Shape interface {
	Is(shapeType string) bool
	GetType() string

	X() float64
	Y() float64
	SetX(v interface{}) error
	SetY(v interface{}) error
	Position() geo.Point
	// Translate moves the shape by (dx, dy). Both deltas are validated before
	// the position changes.
	Translate(dx, dy interface{}) error

	Area() float64
	Perimeter() float64

	// GetBox returns the axis aligned bounds of the shape
	GetBox() *geo.Box

	// String is the display form, GoString the debug form used by %#v.
	String() string
	GoString() string
}

type baseShape struct {
	Type string
	pos  geo.Point
}

func newBaseShape(shapeType string, x, y interface{}) (baseShape, error) {
	s := baseShape{Type: shapeType}
	if err := s.SetX(x); err != nil {
		return baseShape{}, err
	}
	if err := s.SetY(y); err != nil {
		return baseShape{}, err
	}
	return s, nil
}

func (s *baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s *baseShape) GetType() string {
	return s.Type
}

func (s *baseShape) X() float64 {
	return s.pos.X
}

func (s *baseShape) Y() float64 {
	return s.pos.Y
}

func (s *baseShape) SetX(v interface{}) error {
	x, err := numeric.Field("x", v)
	if err != nil {
		return err
	}
	s.pos.X = x
	return nil
}

func (s *baseShape) SetY(v interface{}) error {
	y, err := numeric.Field("y", v)
	if err != nil {
		return err
	}
	s.pos.Y = y
	return nil
}

func (s *baseShape) Position() geo.Point {
	return s.pos
}

func (s *baseShape) Translate(dx, dy interface{}) error {
	fdx, err := numeric.Field("dx", dx)
	if err != nil {
		return err
	}
	fdy, err := numeric.Field("dy", dy)
	if err != nil {
		return err
	}
	p := s.pos.Translated(fdx, fdy)
	if !geo.IsFinite(p.X) || !geo.IsFinite(p.Y) {
		return numeric.ValueErrorf("position", p, "overflows after translation")
	}
	s.pos = p
	return nil
}

func (s *baseShape) GoString() string {
	return fmt.Sprintf("%s(%s)", s.Type, s.positionArgs())
}

func (s *baseShape) String() string {
	return fmt.Sprintf("%s at position %s", s.Type, s.pos.String())
}

func (s *baseShape) positionArgs() string {
	return fmt.Sprintf("x=%s, y=%s", geo.FormatFloat(s.pos.X), geo.FormatFloat(s.pos.Y))
}

// NewShape builds a shape by type name. dims are the variant's dimensions in
// constructor order: radius for a Circle, width and height for a Rectangle.
func NewShape(shapeType string, x, y interface{}, dims ...interface{}) (Shape, error) {
	switch shapeType {
	case CIRCLE_TYPE:
		if len(dims) != 1 {
			return nil, fmt.Errorf("%s takes 1 dimension, got %d", shapeType, len(dims))
		}
		c, err := NewCircle(x, y, dims[0])
		if err != nil {
			return nil, err
		}
		return c, nil
	case RECTANGLE_TYPE:
		if len(dims) != 2 {
			return nil, fmt.Errorf("%s takes 2 dimensions, got %d", shapeType, len(dims))
		}
		r, err := NewRectangle(x, y, dims[0], dims[1])
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", shapeType)
	}
}
