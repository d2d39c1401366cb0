package shapeplot_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/shape"
	"oss.terrastruct.com/shapes/lib/shapeplot"
)

type blob struct {
	*shape.Circle
}

func demoShapes(t *testing.T) []shape.Shape {
	t.Helper()
	c1, err := shape.NewCircle(5, 5, 4)
	require.NoError(t, err)
	r1, err := shape.NewRectangle(0, 0, 3, 6)
	require.NoError(t, err)
	c2, err := shape.NewCircle(-3, -2, 1.5)
	require.NoError(t, err)
	r2, err := shape.NewRectangle(-8, 2, 2, 2)
	require.NoError(t, err)
	return []shape.Shape{c1, r1, c2, r2}
}

func TestRenderSVG(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	p, err := shapeplot.New("Test Plot of My Shapes", nil)
	require.NoError(t, err)
	for _, s := range demoShapes(t) {
		assert.True(t, p.Add(ctx, s))
	}
	assert.Equal(t, 4, p.Len())

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf, "svg"))
	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"), out)
	assert.True(t, strings.Contains(out, "Test Plot of My Shapes"))
}

func TestRenderPNG(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	p, err := shapeplot.New(shapeplot.DEFAULT_TITLE, &shapeplot.Options{
		CircleColor:    "#00ff00",
		RectangleColor: "rgb(255, 165, 0)",
		Alpha:          1,
		Size:           2,
	})
	require.NoError(t, err)
	p.Add(ctx, shape.DefaultCircle())

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf, "PNG"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	err = p.WriteTo(&buf, "bmp")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	p, err := shapeplot.New("saved", nil)
	require.NoError(t, err)
	for _, s := range demoShapes(t) {
		p.Add(ctx, s)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.svg")
	require.NoError(t, p.Save(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(b, []byte("<svg")))

	err = p.Save(filepath.Join(dir, "noext"))
	assert.Error(t, err)
}

func TestUnknownShapeIsSkipped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := log.Human(context.Background(), &buf)

	p, err := shapeplot.New("", nil)
	require.NoError(t, err)

	assert.False(t, p.Add(ctx, blob{shape.DefaultCircle()}))
	assert.False(t, p.Add(ctx, nil))
	var nilRect *shape.Rectangle
	assert.False(t, p.Add(ctx, nilRect))
	assert.Equal(t, 0, p.Len())
	assert.Contains(t, buf.String(), "cannot draw unknown shape type")
	assert.Contains(t, buf.String(), "shapeplot_test.blob")
}

func TestView(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	p, err := shapeplot.New("", nil)
	require.NoError(t, err)

	empty := p.View()
	assert.Equal(t, -1.0, empty.Origin.X)
	assert.Equal(t, -1.0, empty.Origin.Y)
	assert.Equal(t, 2.0, empty.Width)

	r, err := shape.NewRectangle(0, 0, 3, 6)
	require.NoError(t, err)
	p.Add(ctx, shape.DefaultCircle())
	p.Add(ctx, r)

	// bounds x [-1, 3], y [-1, 6], squared to 7 and padded by 0.35
	v := p.View()
	assert.InDelta(t, -2.85, v.Origin.X, 1e-9)
	assert.InDelta(t, -1.35, v.Origin.Y, 1e-9)
	assert.InDelta(t, 7.7, v.Width, 1e-9)
	assert.InDelta(t, 7.7, v.Height, 1e-9)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		opts   shapeplot.Options
		expErr string
	}{
		{name: "bad_color", opts: shapeplot.Options{CircleColor: "notacolor", RectangleColor: "red", Alpha: 1, Size: 1}, expErr: `invalid color "notacolor"`},
		{name: "alpha_range", opts: shapeplot.Options{CircleColor: "blue", RectangleColor: "red", Alpha: 1.5, Size: 1}, expErr: "alpha must be between 0 and 1"},
		{name: "zero_size", opts: shapeplot.Options{CircleColor: "blue", RectangleColor: "red", Alpha: 1, Size: 0}, expErr: "size must be larger than zero"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := tc.opts
			_, err := shapeplot.New("", &opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expErr)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "svg", shapeplot.Format("out/shapes.SVG"))
	assert.Equal(t, "png", shapeplot.Format("a.b.png"))
	assert.Equal(t, "", shapeplot.Format("shapes"))
}
