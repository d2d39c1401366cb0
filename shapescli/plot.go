package shapescli

import (
	"bytes"
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/shape"
	"oss.terrastruct.com/shapes/lib/shapeplot"
	"oss.terrastruct.com/shapes/lib/xmain"
)

const defaultPlotPath = "shapes.svg"

func plotCmd(ctx context.Context, ms *xmain.State, f flags, args []string) error {
	ctx = log.Named(ctx, "plot")

	outputPath := defaultPlotPath
	switch len(args) {
	case 0:
	case 1:
		outputPath = args[0]
	default:
		return xmain.UsageErrorf("plot accepts at most one output path, got %d", len(args))
	}
	format := "svg"
	if outputPath != "-" {
		format = shapeplot.Format(outputPath)
		if format == "" {
			return xmain.UsageErrorf("output path %q has no file extension", outputPath)
		}
	}

	shapes, err := parseShapes(f)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		log.Debug(ctx, "no shapes given, plotting the demo set")
		shapes, err = demoShapes()
		if err != nil {
			return err
		}
	}

	p, err := shapeplot.New(*f.title, f.plotOptions())
	if err != nil {
		return err
	}
	for _, s := range shapes {
		p.Add(ctx, s)
	}

	var buf bytes.Buffer
	if err := p.WriteTo(&buf, format); err != nil {
		return err
	}
	if err := ms.WritePath(outputPath, buf.Bytes()); err != nil {
		return err
	}
	log.Info(ctx, "rendered plot", slog.F("shapes", p.Len()), slog.F("format", format))
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully plotted %d shapes to %s", p.Len(), outputPath)
	}
	return nil
}

// demoShapes are two circles and two rectangles spread around the origin.
func demoShapes() ([]shape.Shape, error) {
	c1, err := shape.NewCircle(5, 5, 4)
	if err != nil {
		return nil, err
	}
	r1, err := shape.NewRectangle(0, 0, 3, 6)
	if err != nil {
		return nil, err
	}
	c2, err := shape.NewCircle(-3, -2, 1.5)
	if err != nil {
		return nil, err
	}
	r2, err := shape.NewRectangle(-8, 2, 2, 2)
	if err != nil {
		return nil, err
	}
	return []shape.Shape{c1, r1, c2, r2}, nil
}
