package bezier

import (
	"cmp"
	"iter"
	"slices"
)

// PathSource identifies the operand of a boolean operation that an edge of a
// [GraphPath] came from.
type PathSource int

const (
	Path1 PathSource = iota
	Path2
)

func (s PathSource) String() string {
	if s == Path1 {
		return "Path1"
	}
	return "Path2"
}

// PathDirection is the orientation of a closed path.
type PathDirection int

const (
	Clockwise PathDirection = iota
	Anticlockwise
)

func (d PathDirection) String() string {
	if d == Clockwise {
		return "Clockwise"
	}
	return "Anticlockwise"
}

// sign returns the winding number of points inside a simple path with this
// direction.
func (d PathDirection) sign() int {
	if d == Anticlockwise {
		return 1
	}
	return -1
}

// PathDirectionOf returns the orientation of p as determined by
// [IsClockwise]. The end points of paths with fewer than three segments don't
// form a polygon, so their orientation is the sign of [PathSignedArea]
// instead.
func PathDirectionOf(p BezierPath) PathDirection {
	var cw bool
	if len(p.Points()) < 3 {
		cw = PathSignedArea(p) <= 0
	} else {
		cw = IsClockwise(p)
	}
	if cw {
		return Clockwise
	}
	return Anticlockwise
}

// PathLabel records where an edge of a [GraphPath] came from.
type PathLabel struct {
	Source    PathSource
	Direction PathDirection
}

// EdgeKind classifies the edges of a [GraphPath].
type EdgeKind int

const (
	// Uncategorized edges haven't been classified yet.
	Uncategorized EdgeKind = iota
	// Exterior edges separate the inside of the resulting shape from its
	// outside.
	Exterior
	// Interior edges have the same side of the resulting shape on both
	// sides.
	Interior
)

func (k EdgeKind) String() string {
	switch k {
	case Exterior:
		return "Exterior"
	case Interior:
		return "Interior"
	default:
		return "Uncategorized"
	}
}

// graphEdge is a section of a curve of one of the source paths, running
// between two points of the graph.
type graphEdge struct {
	kind  EdgeKind
	label PathLabel
	// Index into GraphPath.paths.
	path       int
	start, end int
	// The curve the edge was cut from and the edge's range on it.
	src    Curve
	t0, t1 float64
	// Exterior edges only: the inside of the shape is on the edge's right,
	// so it is walked from end to start.
	reverse bool
}

type labelledPath struct {
	path  SimplePath
	label PathLabel
}

// GraphPath is a planar graph made from the curves of one or more closed
// paths. Points can have any number of edges, which lets the graph represent
// paths cut at their intersections with each other. It is the basis of
// [PathAdd], [PathIntersect], [PathSub] and friends.
//
// A graph is built with [NewGraphPath] or [NewGraphPathFromPaths], cut at
// intersections with [GraphPath.Collide] and [GraphPath.SelfCollide], has
// its edges classified with [GraphPath.SetExteriorByRule] or
// [GraphPath.SetExterior], and finally turns into paths again with
// [GraphPath.ExteriorPaths].
//
// Points and edges are addressed by index. Indices stay valid until the
// next call to Collide or SelfCollide.
type GraphPath struct {
	points   []Point
	edges    []graphEdge
	paths    []labelledPath
	accuracy float64
}

// GraphEdge describes an edge of a [GraphPath].
type GraphEdge struct {
	// Indices of the points the edge connects.
	Start int
	End   int
	Curve Curve
	Label PathLabel
	Kind  EdgeKind
}

// NewGraphPath returns the graph of a single path, with all edges labelled
// as coming from source. The path is closed: an end point within
// [CloseDistance] of the start point is moved onto it, otherwise a line is
// added. Empty paths produce an empty graph.
func NewGraphPath(p BezierPath, source PathSource) *GraphPath {
	g := &GraphPath{}
	g.addPath(p, source)
	return g
}

// NewGraphPathFromPaths is like [NewGraphPath] but adds several paths to the
// same graph, as for a shape with holes. The paths aren't collided with each
// other.
func NewGraphPathFromPaths[P BezierPath](paths []P, source PathSource) *GraphPath {
	g := &GraphPath{}
	for _, p := range paths {
		g.addPath(p, source)
	}
	return g
}

func (g *GraphPath) addPath(p BezierPath, source PathSource) {
	curves := slices.Collect(PathToCurves(p))
	if len(curves) == 0 {
		return
	}
	label := PathLabel{source, PathDirectionOf(p)}
	pi := len(g.paths)
	g.paths = append(g.paths, labelledPath{PathOf(p), label})

	start := p.StartPoint()
	if last := curves[len(curves)-1]; last.P3.Distance(start) < CloseDistance {
		curves[len(curves)-1].P3 = start
	} else {
		curves = append(curves, Line{last.P3, start}.Curve())
	}

	first := len(g.points)
	for i, c := range curves {
		g.points = append(g.points, c.P0)
		end := first + i + 1
		if i == len(curves)-1 {
			end = first
		}
		g.edges = append(g.edges, graphEdge{
			label: label,
			path:  pi,
			start: first + i,
			end:   end,
			src:   c,
			t0:    0,
			t1:    1,
		})
	}
}

// NumPoints returns the number of points in the graph.
func (g *GraphPath) NumPoints() int { return len(g.points) }

// NumEdges returns the number of edges in the graph.
func (g *GraphPath) NumEdges() int { return len(g.edges) }

// Point returns the position of the i-th point.
func (g *GraphPath) Point(i int) Point { return g.points[i] }

// Edges returns an iterator over the graph's edges.
func (g *GraphPath) Edges() iter.Seq[GraphEdge] {
	return func(yield func(GraphEdge) bool) {
		for i := range g.edges {
			e := &g.edges[i]
			ge := GraphEdge{
				Start: e.start,
				End:   e.end,
				Curve: g.edgeCurve(e),
				Label: e.label,
				Kind:  e.kind,
			}
			if !yield(ge) {
				return
			}
		}
	}
}

// edgeCurve returns the curve of an edge. Its end points are those of the
// graph, which may differ slightly from the source curve's after points have
// been merged.
func (g *GraphPath) edgeCurve(e *graphEdge) Curve {
	c := e.src
	if e.t0 != 0 || e.t1 != 1 {
		c = c.Subsegment(e.t0, e.t1)
	}
	c.P0 = g.points[e.start]
	c.P3 = g.points[e.end]
	return c
}

// Merge adds the points and edges of other to g, without looking for
// intersections between the two.
func (g *GraphPath) Merge(other *GraphPath) {
	pointOff := len(g.points)
	pathOff := len(g.paths)
	g.points = append(g.points, other.points...)
	g.paths = append(g.paths, other.paths...)
	for _, e := range other.edges {
		e.start += pointOff
		e.end += pointOff
		e.path += pathOff
		g.edges = append(g.edges, e)
	}
	if g.accuracy == 0 {
		g.accuracy = other.accuracy
	}
}

// Collide merges other into g and cuts the edges of both wherever an edge of
// g meets an edge of other, so that the edges only meet at shared points.
// Intersections are located with [CurveIntersectsCurve] to within accuracy;
// zero or less uses [DefaultAccuracy]. Points closer together than accuracy
// are merged and edges that collapse into a single point are removed.
func (g *GraphPath) Collide(other *GraphPath, accuracy float64) {
	n := len(g.edges)
	g.Merge(other)
	g.detectCollisions(n, accuracy)
}

// SelfCollide is like [GraphPath.Collide] but cuts the graph's edges at
// their intersections with each other. Intersections of a curve with itself
// aren't detected.
func (g *GraphPath) SelfCollide(accuracy float64) {
	g.detectCollisions(0, accuracy)
}

type graphSplit struct {
	t        float64
	crossing int
}

type graphCrossing struct {
	pt   Point
	node int
}

// detectCollisions intersects the edges before first with all later edges,
// or all edges with each other if first is zero.
func (g *GraphPath) detectCollisions(first int, accuracy float64) {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	g.accuracy = accuracy

	n := len(g.edges)
	curves := make([]Curve, n)
	boxes := make([]Rect, n)
	for i := range g.edges {
		curves[i] = g.edgeCurve(&g.edges[i])
		boxes[i] = curves[i].FastBoundingBox()
	}

	var crossings []graphCrossing
	splits := make([][]graphSplit, n)
	from := first
	if first == 0 {
		from = n
	}
	for i := 0; i < from; i++ {
		for j := max(first, i+1); j < n; j++ {
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			for _, x := range CurveIntersectsCurve(curves[i], curves[j], accuracy) {
				ci := len(crossings)
				pt := curves[i].Eval(x.T1).Midpoint(curves[j].Eval(x.T2))
				crossings = append(crossings, graphCrossing{pt, -1})
				splits[i] = append(splits[i], graphSplit{x.T1, ci})
				splits[j] = append(splits[j], graphSplit{x.T2, ci})
			}
		}
	}

	var cuts int
	for i, ss := range splits {
		if len(ss) == 0 {
			continue
		}
		slices.SortFunc(ss, func(a, b graphSplit) int { return cmp.Compare(a.t, b.t) })
		e := g.edges[i]
		w := e.t1 - e.t0
		prevT, prevNode := 0.0, e.start
		for _, s := range ss {
			cr := &crossings[s.crossing]
			if s.t <= prevT || cr.pt.Distance(g.points[prevNode]) < accuracy || cr.pt.Distance(curves[i].P3) < accuracy {
				// Intersections at or next to the ends of the edge are
				// taken care of by merging points.
				continue
			}
			if cr.node < 0 {
				cr.node = len(g.points)
				g.points = append(g.points, cr.pt)
			}
			piece := e
			piece.start, piece.end = prevNode, cr.node
			piece.t0, piece.t1 = e.t0+prevT*w, e.t0+s.t*w
			if prevNode == e.start {
				g.edges[i] = piece
			} else {
				g.edges = append(g.edges, piece)
			}
			prevT, prevNode = s.t, cr.node
			cuts++
		}
		if prevNode != e.start {
			piece := e
			piece.start = prevNode
			piece.t0 = e.t0 + prevT*w
			g.edges = append(g.edges, piece)
		}
	}

	g.mergePoints(accuracy)
	g.removeCollapsedEdges(accuracy)
	Logger().Debug("collided graph path",
		"intersections", len(crossings),
		"cuts", cuts,
		"points", len(g.points),
		"edges", len(g.edges))
}

// mergePoints joins points of the graph that are closer than dist. Each
// group of points is replaced by its lowest-indexed member, which favours
// the points of the source paths over intersections.
func (g *GraphPath) mergePoints(dist float64) {
	parent := make([]int, len(g.points))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	used := make([]bool, len(g.points))
	for _, e := range g.edges {
		used[e.start] = true
		used[e.end] = true
	}
	var idx []int
	for i, u := range used {
		if u {
			idx = append(idx, i)
		}
	}
	slices.SortFunc(idx, func(a, b int) int { return cmp.Compare(g.points[a].X, g.points[b].X) })

	var merged int
	for a := range idx {
		pa := g.points[idx[a]]
		for b := a + 1; b < len(idx) && g.points[idx[b]].X-pa.X < dist; b++ {
			if pa.Distance(g.points[idx[b]]) >= dist {
				continue
			}
			ra, rb := find(idx[a]), find(idx[b])
			if ra == rb {
				continue
			}
			if rb < ra {
				ra, rb = rb, ra
			}
			parent[rb] = ra
			merged++
		}
	}
	if merged == 0 {
		return
	}
	for i := range g.edges {
		g.edges[i].start = find(g.edges[i].start)
		g.edges[i].end = find(g.edges[i].end)
	}
	Logger().Debug("merged graph points", "count", merged)
}

// removeCollapsedEdges removes edges that start and end at the same point
// without going anywhere.
func (g *GraphPath) removeCollapsedEdges(dist float64) {
	g.edges = slices.DeleteFunc(g.edges, func(e graphEdge) bool {
		if e.start != e.end {
			return false
		}
		c := g.edgeCurve(&e)
		return c.P1.Distance(c.P0) < dist && c.P2.Distance(c.P0) < dist
	})
}
