package solid

import (
	"fmt"
	"math"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/numeric"
)

type Sphere struct {
	radius float64
}

func NewSphere(radius interface{}) (*Sphere, error) {
	s := &Sphere{}
	if err := s.SetRadius(radius); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sphere) Radius() float64 {
	return s.radius
}

func (s *Sphere) SetRadius(v interface{}) error {
	r, err := numeric.Positive("radius", v)
	if err != nil {
		return err
	}
	s.radius = r
	return nil
}

func (s *Sphere) Volume() float64 {
	return 4. / 3. * math.Pi * s.radius * s.radius * s.radius
}

func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

// Circumference of a great circle.
func (s *Sphere) Circumference() float64 {
	return 2 * math.Pi * s.radius
}

func (s *Sphere) GoString() string {
	return fmt.Sprintf("Sphere(radius=%s)", geo.FormatFloat(s.radius))
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere with radius=%.2f, volume=%.2f, surface_area=%.2f", s.radius, s.Volume(), s.SurfaceArea())
}
