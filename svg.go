package bezier

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidPath is returned for malformed SVG path data.
var ErrInvalidPath = errors.New("invalid path data")

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

// pathScanner reads the arguments of SVG path commands.
type pathScanner struct {
	b   []byte
	pos int
}

func (s *pathScanner) num() (float64, error) {
	f, n := strconv.ParseFloat(s.b[s.pos:])
	if n == 0 {
		return 0, fmt.Errorf("expected number at offset %d: %w", s.pos, ErrInvalidPath)
	}
	s.pos += n
	s.pos += skipCommaWhitespace(s.b[s.pos:])
	return f, nil
}

func (s *pathScanner) point() (Point, error) {
	x, err := s.num()
	if err != nil {
		return Point{}, err
	}
	y, err := s.num()
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}

// flag reads an arc flag, which may be written without a separator from
// whatever follows it.
func (s *pathScanner) flag() (bool, error) {
	if s.pos >= len(s.b) || (s.b[s.pos] != '0' && s.b[s.pos] != '1') {
		return false, fmt.Errorf("expected flag at offset %d: %w", s.pos, ErrInvalidPath)
	}
	f := s.b[s.pos] == '1'
	s.pos++
	s.pos += skipCommaWhitespace(s.b[s.pos:])
	return f, nil
}

// ParseSVGPath parses SVG path data into one path per subpath. All commands
// are supported. Quadratic curves are raised to cubics, elliptical arcs are
// approximated by one cubic per quarter turn. A Z command closes the current
// subpath with a straight line unless it already ends at its start point.
// Subpaths that aren't closed explicitly are returned as they are.
//
// The error wraps [ErrInvalidPath] and names the offset at which parsing
// failed.
func ParseSVGPath(d string) ([]SimplePath, error) {
	s := &pathScanner{b: []byte(d)}
	s.pos = skipCommaWhitespace(s.b)

	var out []SimplePath
	var cur SimplePath
	started := false
	var pos, ctrl Point // ctrl is the last control point, for S and T
	var prevCmd byte
	flush := func() {
		if !cur.IsEmpty() {
			out = append(out, cur)
		}
	}

	for s.pos < len(s.b) {
		cmd := prevCmd
		if c := s.b[s.pos]; c >= 'A' {
			cmd = c
			s.pos++
			s.pos += skipCommaWhitespace(s.b[s.pos:])
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("expected command at offset %d: %w", s.pos, ErrInvalidPath)
		} else if prevCmd == 'M' {
			cmd = 'L'
		} else if prevCmd == 'm' {
			cmd = 'l'
		}
		if !started && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("path must start with a move at offset %d: %w", s.pos, ErrInvalidPath)
		}

		var rel Point
		if 'a' <= cmd && cmd <= 'z' {
			rel = pos
		}
		newCtrl := Point{}
		hasCtrl := false
		var err error
		switch cmd {
		case 'M', 'm':
			var p Point
			if p, err = s.point(); err != nil {
				return nil, err
			}
			flush()
			pos = p.Add(rel)
			cur = SimplePath{Start: pos}
			started = true
		case 'Z', 'z':
			cur.Close()
			flush()
			pos = cur.Start
			cur = SimplePath{Start: pos}
		case 'L', 'l':
			var p Point
			if p, err = s.point(); err != nil {
				return nil, err
			}
			pos = p.Add(rel)
			cur.LineTo(pos)
		case 'H', 'h':
			var x float64
			if x, err = s.num(); err != nil {
				return nil, err
			}
			pos = Pt(x+rel.X, pos.Y)
			cur.LineTo(pos)
		case 'V', 'v':
			var y float64
			if y, err = s.num(); err != nil {
				return nil, err
			}
			pos = Pt(pos.X, y+rel.Y)
			cur.LineTo(pos)
		case 'C', 'c', 'S', 's':
			var cp1, cp2, end Point
			if cmd == 'C' || cmd == 'c' {
				if cp1, err = s.point(); err != nil {
					return nil, err
				}
				cp1 = cp1.Add(rel)
			} else if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = pos.Mul(2).Sub(ctrl)
			} else {
				cp1 = pos
			}
			if cp2, err = s.point(); err != nil {
				return nil, err
			}
			if end, err = s.point(); err != nil {
				return nil, err
			}
			cp2, end = cp2.Add(rel), end.Add(rel)
			cur.CubicTo(cp1, cp2, end)
			pos, newCtrl, hasCtrl = end, cp2, true
		case 'Q', 'q', 'T', 't':
			var q, end Point
			if cmd == 'Q' || cmd == 'q' {
				if q, err = s.point(); err != nil {
					return nil, err
				}
				q = q.Add(rel)
			} else if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				q = pos.Mul(2).Sub(ctrl)
			} else {
				q = pos
			}
			if end, err = s.point(); err != nil {
				return nil, err
			}
			end = end.Add(rel)
			cur.CubicTo(pos.Lerp(q, 2.0/3.0), end.Lerp(q, 2.0/3.0), end)
			pos, newCtrl, hasCtrl = end, q, true
		case 'A', 'a':
			var rx, ry, rot float64
			var largeArc, sweep bool
			var end Point
			if rx, err = s.num(); err != nil {
				return nil, err
			}
			if ry, err = s.num(); err != nil {
				return nil, err
			}
			if rot, err = s.num(); err != nil {
				return nil, err
			}
			if largeArc, err = s.flag(); err != nil {
				return nil, err
			}
			if sweep, err = s.flag(); err != nil {
				return nil, err
			}
			if end, err = s.point(); err != nil {
				return nil, err
			}
			end = end.Add(rel)
			if arc, ok := ArcFromEndpoints(pos, end, rx, ry, rot*math.Pi/180, largeArc, sweep); ok {
				for _, c := range arc.Curves() {
					cur.CubicTo(c.P1, c.P2, c.P3)
				}
				// Pin the end point against rounding.
				cur.Segments[len(cur.Segments)-1].End = end
			} else if end != pos {
				cur.LineTo(end)
			}
			pos = end
		default:
			return nil, fmt.Errorf("unknown command %q at offset %d: %w", cmd, s.pos-1, ErrInvalidPath)
		}
		if hasCtrl {
			ctrl = newCtrl
		}
		prevCmd = cmd
	}
	flush()
	return out, nil
}
