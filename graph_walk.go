package bezier

import (
	"math"
)

// SetExterior classifies every edge of the graph. An edge is exterior if a
// point just to its left and a point just to its right disagree about being
// inside the shape. Exterior edges are oriented so that the inside is on
// their left, making outer boundaries anticlockwise and holes clockwise.
//
// Where several exterior edges run between the same two points along the
// same curve, as happens when the source paths share an edge, only the
// first is kept.
func (g *GraphPath) SetExterior(inside func(pt Point) bool) {
	acc := g.accuracy
	if acc <= 0 {
		acc = DefaultAccuracy
	}
	for i := range g.edges {
		e := &g.edges[i]
		// The source curve is used rather than the edge's own curve, whose
		// end points may have moved.
		mid := (e.t0 + e.t1) / 2
		pt := e.src.Eval(mid)
		n := e.src.UnitNormal(mid)
		size := g.edgeCurve(e).FastBoundingBox().Diagonal()
		delta := max(min(acc*0.25, size*0.125), 1e-7)

		left := inside(pt.Add(n.Mul(delta)))
		right := inside(pt.Sub(n.Mul(delta)))
		if left == right {
			e.kind = Interior
			e.reverse = false
		} else {
			e.kind = Exterior
			e.reverse = right
		}
	}
	g.removeDuplicateEdges(acc)
}

// SetExteriorByRule classifies the edges of a graph built from two
// operands. A point is inside an operand if the winding number of the
// operand's paths at that point passes fill; combine decides from the two
// results whether the point is inside the resulting shape.
func (g *GraphPath) SetExteriorByRule(fill FillRule, combine func(in1, in2 bool) bool) {
	var paths1, paths2 []SimplePath
	for _, lp := range g.paths {
		if lp.label.Source == Path1 {
			paths1 = append(paths1, lp.path)
		} else {
			paths2 = append(paths2, lp.path)
		}
	}
	g.SetExterior(func(pt Point) bool {
		return combine(fill.Fills(PathWinding(paths1, pt)), fill.Fills(PathWinding(paths2, pt)))
	})
}

// directed returns the points an exterior edge runs between, in walking
// order.
func (e *graphEdge) directed() (from, to int) {
	if e.reverse {
		return e.end, e.start
	}
	return e.start, e.end
}

func (g *GraphPath) removeDuplicateEdges(dist float64) {
	seen := make(map[[2]int][]int)
	var removed int
	for i := range g.edges {
		e := &g.edges[i]
		if e.kind != Exterior {
			continue
		}
		from, to := e.directed()
		key := [2]int{from, to}
		mid := e.src.Eval((e.t0 + e.t1) / 2)
		dup := false
		for _, j := range seen[key] {
			o := &g.edges[j]
			if o.src.Eval((o.t0+o.t1)/2).Distance(mid) < dist {
				dup = true
				break
			}
		}
		if dup {
			e.kind = Interior
			removed++
			continue
		}
		seen[key] = append(seen[key], i)
	}
	if removed > 0 {
		Logger().Debug("removed duplicate edges", "count", removed)
	}
}

type walkEdge struct {
	from, to int
	c        Curve
}

// ExteriorPaths joins the exterior edges of the graph into closed paths.
// Where more than one unused edge leaves a point, the walk takes the one
// turning furthest to the left, which keeps shapes that only touch at a
// point apart.
//
// Edges that can't be joined into a loop, which only happens if the
// classification was inconsistent, still produce a path, closed with a
// line.
func (g *GraphPath) ExteriorPaths() []SimplePath {
	var edges []walkEdge
	outgoing := make(map[int][]int)
	for i := range g.edges {
		e := &g.edges[i]
		if e.kind != Exterior {
			continue
		}
		c := g.edgeCurve(e)
		from, to := e.directed()
		if e.reverse {
			c = c.Reverse()
		}
		outgoing[from] = append(outgoing[from], len(edges))
		edges = append(edges, walkEdge{from, to, c})
	}

	used := make([]bool, len(edges))
	var out []SimplePath
	for first := range edges {
		if used[first] {
			continue
		}
		used[first] = true
		start := edges[first].from
		p := SimplePath{Start: g.points[start]}
		cur := first
		for {
			c := edges[cur].c
			p.CubicTo(c.P1, c.P2, c.P3)
			node := edges[cur].to
			if node == start {
				break
			}

			_, in := c.Tangents()
			next := -1
			best := math.Inf(-1)
			for _, k := range outgoing[node] {
				if used[k] {
					continue
				}
				dir, _ := edges[k].c.Tangents()
				if turn := math.Atan2(in.Cross(dir), in.Dot(dir)); turn > best {
					best = turn
					next = k
				}
			}
			if next < 0 {
				Logger().Debug("exterior path does not close", "start", p.Start, "end", p.End())
				break
			}
			used[next] = true
			cur = next
		}
		p.Close()
		out = append(out, p)
	}
	return out
}
