package shapescli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/shapeplot"
	"oss.terrastruct.com/shapes/lib/version"
	"oss.terrastruct.com/shapes/lib/xmain"
)

// flags are declared before parsing, so every field points at the parsed value.
type flags struct {
	x, y, dx, dy          *string
	radius, width, height *string

	circles *[]string
	rects   *[]string

	title       *string
	circleColor *string
	rectColor   *string
	alpha       *float64
	size        *float64
}

func (f flags) plotOptions() *shapeplot.Options {
	return &shapeplot.Options{
		CircleColor:    *f.circleColor,
		RectangleColor: *f.rectColor,
		Alpha:          *f.alpha,
		Size:           *f.size,
	}
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = new(bool)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	def := shapeplot.DefaultOptions()
	f := flags{
		x:      ms.Opts.String("", "x", "x", "0", "x coordinate of the shape"),
		y:      ms.Opts.String("", "y", "y", "0", "y coordinate of the shape"),
		dx:     ms.Opts.String("", "dx", "", "0", "translate the shape along x and print its new position"),
		dy:     ms.Opts.String("", "dy", "", "0", "translate the shape along y and print its new position"),
		radius: ms.Opts.String("", "radius", "r", "1", "circle radius"),
		width:  ms.Opts.String("", "width", "", "1", "rectangle width"),
		height: ms.Opts.String("", "height", "", "1", "rectangle height"),

		circles: ms.Opts.StringArray("circle", "", "add a circle given as x,y,radius. May be repeated."),
		rects:   ms.Opts.StringArray("rect", "", "add a rectangle given as x,y,width,height. May be repeated."),

		title:       ms.Opts.String("SHAPES_PLOT_TITLE", "title", "", shapeplot.DEFAULT_TITLE, "title of the plot"),
		circleColor: ms.Opts.String("SHAPES_CIRCLE_COLOR", "circle-color", "", def.CircleColor, "CSS fill color of circles in plots"),
		rectColor:   ms.Opts.String("SHAPES_RECTANGLE_COLOR", "rectangle-color", "", def.RectangleColor, "CSS fill color of rectangles in plots"),
	}
	f.alpha, err = ms.Opts.Float64("SHAPES_ALPHA", "alpha", "", def.Alpha, "opacity of the fill colors, between 0 and 1")
	if err != nil {
		return err
	}
	f.size, err = ms.Opts.Float64("SHAPES_PLOT_SIZE", "size", "", def.Size, "width and height of the plot in inches")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		help(ms)
		return nil
	}
	log.Debug(ctx, "running subcommand", slog.F("cmd", args[0]), slog.F("args", args[1:]))

	switch args[0] {
	case "cube":
		return cubeCmd(ms, args[1:])
	case "sphere":
		return sphereCmd(ms, args[1:])
	case "circle":
		return circleCmd(ms, f, args[1:])
	case "rectangle":
		return rectangleCmd(ms, f, args[1:])
	case "sort":
		return sortCmd(ms, f, args[1:])
	case "plot":
		return plotCmd(ctx, ms, f, args[1:])
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	case "help":
		help(ms)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", args[0])
	}
}

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s cube [side]
  %[1]s sphere [radius]
  %[1]s circle [--x=0] [--y=0] [--radius=1] [--dx=0] [--dy=0]
  %[1]s rectangle [--x=0] [--y=0] [--width=1] [--height=1] [--dx=0] [--dy=0]
  %[1]s sort --circle=x,y,r ... --rect=x,y,w,h ...
  %[1]s plot [--circle=x,y,r ...] [--rect=x,y,w,h ...] [file.svg | file.png | file.pdf | -]

%[1]s computes measures of circles, rectangles, cubes and spheres, orders
shapes by area then perimeter and plots them.

cube and sphere prompt for their dimension when it is not passed as an argument.
plot draws a demo set of shapes when none are passed and writes shapes.svg by default.
Use - to have plot write SVG to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s cube [side] - Prints the volume, surface area and total edge length of a cube
  %[1]s sphere [radius] - Prints the volume, surface area and circumference of a sphere
  %[1]s circle - Describes a circle
  %[1]s rectangle - Describes a rectangle
  %[1]s sort - Lists shapes from smallest to largest
  %[1]s plot - Renders shapes to an image
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}
