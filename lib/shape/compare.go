package shape

import (
	"reflect"

	"golang.org/x/exp/slices"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/numeric"
)

// CompareByAreaThenPerimeter orders shapes by area and breaks ties by
// perimeter. Floats are compared exactly. Both shapes must be non-nil.
func CompareByAreaThenPerimeter(a, b Shape) int {
	if c := geo.Compare(a.Area(), b.Area()); c != 0 {
		return c
	}
	return geo.Compare(a.Perimeter(), b.Perimeter())
}

// Compare is CompareByAreaThenPerimeter for operands that may not be shapes.
// A nil operand, typed or untyped, is reported as a TypeKind error.
func Compare(a, b Shape) (int, error) {
	if err := checkComparable(a); err != nil {
		return 0, err
	}
	if err := checkComparable(b); err != nil {
		return 0, err
	}
	return CompareByAreaThenPerimeter(a, b), nil
}

// Equal reports whether a and b have the same area and perimeter. Position
// and variant are ignored: a circle may equal a rectangle.
func Equal(a, b Shape) (bool, error) {
	c, err := Compare(a, b)
	return c == 0, err
}

func Less(a, b Shape) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

func LessOrEqual(a, b Shape) (bool, error) {
	c, err := Compare(a, b)
	return c <= 0, err
}

func Greater(a, b Shape) (bool, error) {
	c, err := Compare(a, b)
	return c > 0, err
}

func GreaterOrEqual(a, b Shape) (bool, error) {
	c, err := Compare(a, b)
	return c >= 0, err
}

// Sort orders shapes in place from smallest to largest. Shapes that compare
// equal keep their relative order.
func Sort(shapes []Shape) error {
	for _, s := range shapes {
		if err := checkComparable(s); err != nil {
			return err
		}
	}
	slices.SortStableFunc(shapes, func(a, b Shape) bool {
		return CompareByAreaThenPerimeter(a, b) < 0
	})
	return nil
}

func checkComparable(s Shape) error {
	if s == nil {
		return numeric.TypeErrorf("", s, "cannot compare a shape with a non-shape")
	}
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return numeric.TypeErrorf("", s, "cannot compare a shape with a nil "+rv.Type().Elem().Name())
	}
	return nil
}
