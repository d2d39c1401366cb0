package geo

import (
	"fmt"
	"strconv"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Translated returns p moved by (dx, dy). p is left untouched.
func (p Point) Translated(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String prints coordinates in their shortest exact form, e.g. (3, -1.5).
func (p *Point) String() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%s, %s)", FormatFloat(p.X), FormatFloat(p.Y))
}

// FormatFloat formats f with the fewest digits that round-trip.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
