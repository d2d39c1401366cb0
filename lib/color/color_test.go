package color_test

import (
	imgcolor "image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapes/lib/color"
)

func TestNewStyle(t *testing.T) {
	t.Parallel()

	s, err := color.NewStyle("blue", 0.6)
	require.NoError(t, err)
	assert.Equal(t, imgcolor.NRGBA{R: 0, G: 0, B: 255, A: 153}, s.Fill)
	assert.Equal(t, uint8(255), s.Stroke.A)
	assert.Less(t, s.Stroke.B, s.Fill.B)

	s, err = color.NewStyle("#ff000080", 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), s.Fill.R)
	assert.Equal(t, uint8(128), s.Fill.A)

	_, err = color.NewStyle("notacolor", 1)
	assert.ErrorContains(t, err, `invalid color "notacolor"`)
}

func TestDarken(t *testing.T) {
	t.Parallel()

	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := color.Darken(white, 0).RGB255()
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
	r, g, b = color.Darken(white, 1).RGB255()
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}
