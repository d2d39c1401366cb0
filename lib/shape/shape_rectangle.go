package shape

import (
	"fmt"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/numeric"
)

// Rectangle is anchored at its position and extends width along x and height
// along y. Zero sides are allowed and give a zero area.
type Rectangle struct {
	baseShape
	width  float64
	height float64
}

func NewRectangle(x, y, width, height interface{}) (*Rectangle, error) {
	base, err := newBaseShape(RECTANGLE_TYPE, x, y)
	if err != nil {
		return nil, err
	}
	r := &Rectangle{baseShape: base}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	if err := r.SetHeight(height); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRectangle returns the 1x1 rectangle anchored at the origin.
func DefaultRectangle() *Rectangle {
	return &Rectangle{
		baseShape: baseShape{Type: RECTANGLE_TYPE},
		width:     1,
		height:    1,
	}
}

func (r *Rectangle) Width() float64 {
	return r.width
}

func (r *Rectangle) SetWidth(v interface{}) error {
	w, err := numeric.NonNegative("width", v)
	if err != nil {
		return err
	}
	r.width = w
	return nil
}

func (r *Rectangle) Height() float64 {
	return r.height
}

func (r *Rectangle) SetHeight(v interface{}) error {
	h, err := numeric.NonNegative("height", v)
	if err != nil {
		return err
	}
	r.height = h
	return nil
}

// Is and GetType hold for a zero Rectangle too.
func (r *Rectangle) Is(shapeType string) bool {
	return shapeType == RECTANGLE_TYPE
}

func (r *Rectangle) GetType() string {
	return RECTANGLE_TYPE
}

func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r *Rectangle) IsSquare() bool {
	return numeric.Close(r.width, r.height)
}

func (r *Rectangle) GetBox() *geo.Box {
	return geo.NewBox(geo.NewPoint(r.pos.X, r.pos.Y), r.width, r.height)
}

func (r *Rectangle) GoString() string {
	return fmt.Sprintf("Rectangle(%s, width=%s, height=%s)",
		r.positionArgs(), geo.FormatFloat(r.width), geo.FormatFloat(r.height))
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle (w=%s, h=%s) at %s. Area: %.2f, Perimeter: %.2f",
		geo.FormatFloat(r.width), geo.FormatFloat(r.height), r.pos.String(), r.Area(), r.Perimeter())
}
