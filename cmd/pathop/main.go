// Command pathop performs boolean operations on shapes given as SVG path
// data.
//
// Operands are path data strings, or @file to read path data from a file.
// The results are printed as path data.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/bezier"
)

type Root struct{}

// Operation holds the flags of the binary operations.
type Operation struct {
	Accuracy float64 `short:"a" default:"0.01" desc:"Accuracy of intersections"`
	Rule     string  `short:"r" default:"evenodd" desc:"Fill rule of the operands: nonzero, evenodd, positive or negative"`
	Prec     int     `short:"p" default:"-1" desc:"Significant digits of the output, -1 for exact"`
	PNG      string  `desc:"Write a preview of the result to this PNG file"`
	Size     int     `default:"512" desc:"Size of the PNG preview in pixels"`
	Verbose  bool    `short:"v" desc:"Log debug output"`
	A        string  `index:"0" desc:"First operand"`
	B        string  `index:"1" desc:"Second operand"`
}

type (
	Union     Operation
	Intersect Operation
	Subtract  Operation
)

type Resolve struct {
	Accuracy float64 `short:"a" default:"0.01" desc:"Accuracy of intersections"`
	Fill     bool    `desc:"Fill holes as well"`
	Prec     int     `short:"p" default:"-1" desc:"Significant digits of the output, -1 for exact"`
	PNG      string  `desc:"Write a preview of the result to this PNG file"`
	Size     int     `default:"512" desc:"Size of the PNG preview in pixels"`
	Verbose  bool    `short:"v" desc:"Log debug output"`
	Path     string  `index:"0" desc:"Path data"`
}

type Info struct {
	Path string `index:"0" desc:"Path data"`
}

type Contains struct {
	Rule string  `short:"r" default:"nonzero" desc:"Fill rule: nonzero, evenodd, positive or negative"`
	Path string  `index:"0" desc:"Path data"`
	X    float64 `index:"1" desc:"X coordinate"`
	Y    float64 `index:"2" desc:"Y coordinate"`
}

func main() {
	root := argp.NewCmd(&Root{}, "Boolean operations on Bézier paths")
	root.AddCmd(&Union{}, "union", "Union of two shapes")
	root.AddCmd(&Intersect{}, "intersect", "Intersection of two shapes")
	root.AddCmd(&Subtract{}, "subtract", "First shape minus the second")
	root.AddCmd(&Resolve{}, "resolve", "Remove overlaps within a shape")
	root.AddCmd(&Info{}, "info", "Describe the paths of a shape")
	root.AddCmd(&Contains{}, "contains", "Test whether a shape contains a point")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Root) Run() error {
	return argp.ShowUsage
}

func (cmd *Union) Run() error {
	return (*Operation)(cmd).run(bezier.ArithmeticOptions.Add)
}

func (cmd *Intersect) Run() error {
	return (*Operation)(cmd).run(bezier.ArithmeticOptions.Intersect)
}

func (cmd *Subtract) Run() error {
	return (*Operation)(cmd).run(bezier.ArithmeticOptions.Sub)
}

func (cmd *Operation) run(op func(bezier.ArithmeticOptions, []bezier.SimplePath, []bezier.SimplePath) []bezier.SimplePath) error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	rule, err := parseFillRule(cmd.Rule)
	if err != nil {
		return err
	}
	a, err := readOperand(cmd.A)
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	b, err := readOperand(cmd.B)
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}

	out := op(bezier.ArithmeticOptions{Accuracy: cmd.Accuracy, FillRule: rule}, a, b)
	return writeResult(out, cmd.Prec, cmd.PNG, cmd.Size)
}

func (cmd *Resolve) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	paths, err := readOperand(cmd.Path)
	if err != nil {
		return err
	}
	var out []bezier.SimplePath
	if cmd.Fill {
		out = bezier.PathRemoveInteriorPoints(paths, cmd.Accuracy)
	} else {
		out = bezier.PathRemoveOverlappedPoints(paths, cmd.Accuracy)
	}
	return writeResult(out, cmd.Prec, cmd.PNG, cmd.Size)
}

func (cmd *Info) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	paths, err := readOperand(cmd.Path)
	if err != nil {
		return err
	}
	for i, p := range paths {
		box := bezier.PathBoundingBox(p)
		fmt.Printf("path %d: %d curves, bounds (%g, %g)-(%g, %g), %s, area %g\n",
			i, len(p.Segments), box.X0, box.Y0, box.X1, box.Y1,
			bezier.PathDirectionOf(p), bezier.PathSignedArea(p))
	}
	if box, ok := bezier.PathsBoundingBox(paths); ok {
		fmt.Printf("total: %d paths, bounds (%g, %g)-(%g, %g)\n", len(paths), box.X0, box.Y0, box.X1, box.Y1)
	}
	return nil
}

func (cmd *Contains) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	rule, err := parseFillRule(cmd.Rule)
	if err != nil {
		return err
	}
	paths, err := readOperand(cmd.Path)
	if err != nil {
		return err
	}
	fmt.Println(bezier.PathContainsPoint(paths, bezier.Pt(cmd.X, cmd.Y), rule))
	return nil
}

func setVerbose(verbose bool) {
	if verbose {
		bezier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func parseFillRule(s string) (bezier.FillRule, error) {
	for _, rule := range []bezier.FillRule{bezier.NonZero, bezier.EvenOdd, bezier.Positive, bezier.Negative} {
		if strings.EqualFold(s, rule.String()) {
			return rule, nil
		}
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

// readOperand parses path data given directly or, prefixed with @, in a file.
func readOperand(arg string) ([]bezier.SimplePath, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		arg = string(b)
	}
	return bezier.ParseSVGPath(strings.TrimSpace(arg))
}

func writeResult(paths []bezier.SimplePath, prec int, pngName string, size int) error {
	fmt.Println(bezier.FormatSVGPathPrec(paths, prec))
	if pngName == "" {
		return nil
	}
	if size <= 0 {
		return fmt.Errorf("size must be positive")
	}

	f, err := os.Create(pngName)
	if err != nil {
		return err
	}
	if err := png.Encode(f, rasterize(paths, size)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// rasterize draws the paths in black on white, scaled to fit a square image
// with a small margin and the right way up.
func rasterize(paths []bezier.SimplePath, size int) *image.RGBA {
	rect := image.Rect(0, 0, size, size)
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	box, ok := bezier.PathsBoundingBox(paths)
	if !ok || box.Width() == 0 && box.Height() == 0 {
		return img
	}
	s := float64(size)
	margin := s * 0.05
	// Images have y pointing down.
	aff := bezier.FitRect(box, bezier.Rect{X0: margin, Y0: margin, X1: s - margin, Y1: s - margin}).
		Then(bezier.FlipY).
		Then(bezier.Translate(bezier.Pt(0, s)))
	pt := func(p bezier.Point) (float32, float32) {
		return float32(p.X), float32(p.Y)
	}

	ras := vector.NewRasterizer(size, size)
	for _, p := range paths {
		if p.IsEmpty() {
			continue
		}
		p = bezier.TransformPath(p, aff)
		ras.MoveTo(pt(p.Start))
		for _, pp := range p.Segments {
			x1, y1 := pt(pp.CP1)
			x2, y2 := pt(pp.CP2)
			x3, y3 := pt(pp.End)
			ras.CubeTo(x1, y1, x2, y2, x3, y3)
		}
		ras.ClosePath()
	}
	ras.Draw(img, rect, image.NewUniform(color.Black), image.Point{})
	return img
}
