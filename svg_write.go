package bezier

import (
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// appendNum writes f exactly if prec is negative, and rounded to prec
// significant digits in the shortest form otherwise.
func appendNum(b []byte, f float64, prec int) []byte {
	if f == 0 {
		// Avoid writing negative zero.
		f = 0
	}
	if prec < 0 {
		return strconv.AppendFloat(b, f, 'f', -1, 64)
	}
	num := strconv.AppendFloat(nil, f, 'g', max(prec, 1), 64)
	return append(b, minify.Number(num, prec)...)
}

func appendPoints(b []byte, prec int, cmd byte, pts ...Point) []byte {
	b = append(b, cmd)
	for i, pt := range pts {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendNum(b, pt.X, prec)
		b = append(b, ' ')
		b = appendNum(b, pt.Y, prec)
	}
	return b
}

// AppendSVGPath appends p as closed SVG path data to b. Numbers are rounded
// to prec significant digits, or written exactly if prec is negative.
//
// Segments whose control points lie within [SmallDistance] of the thirds of
// their chord are written as L commands, all others as C commands. A final
// line back to the start point is left to the Z command.
func AppendSVGPath(b []byte, p BezierPath, prec int) []byte {
	start := p.StartPoint()
	b = appendPoints(b, prec, 'M', start)
	prev := start
	segs := p.Points()
	for i, pp := range segs {
		c := Curve{prev, pp.CP1, pp.CP2, pp.End}
		line := Line{prev, pp.End}.Curve()
		isLine := c.P1.Distance(line.P1) < SmallDistance && c.P2.Distance(line.P2) < SmallDistance
		switch {
		case isLine && i == len(segs)-1 && pp.End == start:
		case isLine:
			b = appendPoints(b, prec, 'L', pp.End)
		default:
			b = appendPoints(b, prec, 'C', pp.CP1, pp.CP2, pp.End)
		}
		prev = pp.End
	}
	return append(b, 'Z')
}

// FormatSVGPath returns paths as SVG path data, one closed subpath each,
// with numbers written exactly.
func FormatSVGPath[P BezierPath](paths []P) string {
	return FormatSVGPathPrec(paths, -1)
}

// FormatSVGPathPrec is like [FormatSVGPath] but rounds numbers to prec
// significant digits.
func FormatSVGPathPrec[P BezierPath](paths []P, prec int) string {
	var b []byte
	for i, p := range paths {
		if i > 0 {
			b = append(b, ' ')
		}
		b = AppendSVGPath(b, p, prec)
	}
	return string(b)
}
