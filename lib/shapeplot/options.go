package shapeplot

import (
	"oss.terrastruct.com/shapes/lib/numeric"
)

type Options struct {
	// CSS colors, e.g. "blue" or "#ff000080"
	CircleColor    string
	RectangleColor string
	// Alpha multiplies the alpha of both fill colors.
	Alpha float64
	// Size is the width and height of the output in inches.
	Size float64
}

func DefaultOptions() *Options {
	return &Options{
		CircleColor:    "blue",
		RectangleColor: "red",
		Alpha:          0.6,
		Size:           8,
	}
}

func (o *Options) validate() error {
	if _, err := numeric.Field("alpha", o.Alpha); err != nil {
		return err
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return numeric.ValueErrorf("alpha", o.Alpha, "must be between 0 and 1")
	}
	if _, err := numeric.Positive("size", o.Size); err != nil {
		return err
	}
	return nil
}
