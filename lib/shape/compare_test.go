package shape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapes/lib/numeric"
	"oss.terrastruct.com/shapes/lib/shape"
)

func mustCircle(t *testing.T, x, y, r interface{}) *shape.Circle {
	t.Helper()
	c, err := shape.NewCircle(x, y, r)
	require.NoError(t, err)
	return c
}

func mustRectangle(t *testing.T, x, y, w, h interface{}) *shape.Rectangle {
	t.Helper()
	r, err := shape.NewRectangle(x, y, w, h)
	require.NoError(t, err)
	return r
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	unit := mustCircle(t, 0, 0, 1)
	rect := mustRectangle(t, 0, 0, 4, 1)

	less, err := shape.Less(unit, rect)
	require.NoError(t, err)
	assert.True(t, less, "pi < 4")

	greater, err := shape.Greater(rect, unit)
	require.NoError(t, err)
	assert.True(t, greater)

	le, err := shape.LessOrEqual(unit, rect)
	require.NoError(t, err)
	assert.True(t, le)

	ge, err := shape.GreaterOrEqual(unit, rect)
	require.NoError(t, err)
	assert.False(t, ge)
}

func TestPerimeterBreaksTies(t *testing.T) {
	t.Parallel()

	square := mustRectangle(t, 0, 0, 2, 2)
	long := mustRectangle(t, 0, 0, 4, 1)

	c, err := shape.Compare(square, long)
	require.NoError(t, err)
	assert.Equal(t, -1, c, "equal areas, 8 < 10")

	c, err = shape.Compare(long, square)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestEqualIgnoresPosition(t *testing.T) {
	t.Parallel()

	a := mustRectangle(t, 0, 0, 2, 3)
	b := mustRectangle(t, 10, -5, 3, 2)

	eq, err := shape.Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	le, err := shape.LessOrEqual(a, b)
	require.NoError(t, err)
	assert.True(t, le)

	ge, err := shape.GreaterOrEqual(a, b)
	require.NoError(t, err)
	assert.True(t, ge)

	less, err := shape.Less(a, b)
	require.NoError(t, err)
	assert.False(t, less)

	require.NoError(t, b.SetWidth(3.0000001))
	eq, err = shape.Equal(a, b)
	require.NoError(t, err)
	assert.False(t, eq, "equality is exact")
}

func TestCompareNonShape(t *testing.T) {
	t.Parallel()

	unit := shape.DefaultCircle()
	var nilCircle *shape.Circle

	testCases := []struct {
		name string
		a, b shape.Shape
	}{
		{name: "nil_right", a: unit, b: nil},
		{name: "nil_left", a: nil, b: unit},
		{name: "typed_nil", a: unit, b: nilCircle},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := shape.Compare(tc.a, tc.b)
			assert.True(t, errors.Is(err, numeric.ErrType), "got %v", err)

			_, err = shape.Equal(tc.a, tc.b)
			assert.True(t, errors.Is(err, numeric.ErrType))
			_, err = shape.Less(tc.a, tc.b)
			assert.True(t, errors.Is(err, numeric.ErrType))
		})
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	shapes := []shape.Shape{
		mustRectangle(t, 0, 0, 4, 1),
		mustCircle(t, 5, 5, 4),
		mustCircle(t, 0, 0, 1),
		mustRectangle(t, 0, 0, 2, 2),
		mustRectangle(t, 1, 1, 0, 0),
		mustRectangle(t, 9, 9, 2, 2),
	}
	require.NoError(t, shape.Sort(shapes))

	var got []string
	for _, s := range shapes {
		got = append(got, fmt.Sprintf("%#v", s))
	}
	exp := []string{
		"Rectangle(x=1, y=1, width=0, height=0)",
		"Circle(x=0, y=0, radius=1)",
		"Rectangle(x=0, y=0, width=2, height=2)",
		"Rectangle(x=9, y=9, width=2, height=2)",
		"Rectangle(x=0, y=0, width=4, height=1)",
		"Circle(x=5, y=5, radius=4)",
	}
	if d := cmp.Diff(exp, got); d != "" {
		t.Fatalf("unexpected order (-exp +got):\n%s", d)
	}

	err := shape.Sort([]shape.Shape{shape.DefaultCircle(), nil})
	assert.True(t, errors.Is(err, numeric.ErrType))
}
