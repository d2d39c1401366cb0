package geo

import (
	"fmt"
	"math"
)

// Box is an axis aligned rectangle. Origin is the corner with the smallest
// coordinates, so with the y axis pointing up it is the bottom left corner.
type Box struct {
	Origin *Point
	Width  float64
	Height float64
}

func NewBox(origin *Point, width, height float64) *Box {
	return &Box{
		Origin: origin,
		Width:  width,
		Height: height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.Origin.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.Origin.X+b.Width/2, b.Origin.Y+b.Height/2)
}

// Max returns the corner opposite Origin.
func (b *Box) Max() *Point {
	return NewPoint(b.Origin.X+b.Width, b.Origin.Y+b.Height)
}

// Union returns the smallest box containing both b and other. A nil box is
// treated as empty.
func (b *Box) Union(other *Box) *Box {
	if b == nil {
		return other.Copy()
	}
	if other == nil {
		return b.Copy()
	}
	minX := math.Min(b.Origin.X, other.Origin.X)
	minY := math.Min(b.Origin.Y, other.Origin.Y)
	bMax, oMax := b.Max(), other.Max()
	maxX := math.Max(bMax.X, oMax.X)
	maxY := math.Max(bMax.Y, oMax.Y)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

// Pad grows the box by frac of its larger side on every edge.
func (b *Box) Pad(frac float64) *Box {
	d := math.Max(b.Width, b.Height) * frac
	return NewBox(NewPoint(b.Origin.X-d, b.Origin.Y-d), b.Width+2*d, b.Height+2*d)
}

// Square grows the shorter side so that both sides are equal, keeping the
// center in place.
func (b *Box) Square() *Box {
	side := math.Max(b.Width, b.Height)
	c := b.Center()
	return NewBox(NewPoint(c.X-side/2, c.Y-side/2), side, side)
}

func (b *Box) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{Origin: %s, Width: %s, Height: %s}", b.Origin.String(), FormatFloat(b.Width), FormatFloat(b.Height))
}
