// Package bezier provides cubic Bézier curves and paths made of them,
// including their intersections and boolean arithmetic on the shapes they
// enclose. It was written for vector drawing and animation tools that need
// to cut, merge and fill shapes.
//
// # Curves
//
// [Curve] is a cubic Bézier given by four control points. It can be
// evaluated, subdivided, measured and intersected with lines and other
// curves. The functions [Basis], [DeCasteljau4], [Subdivide4] and
// [Derivative4] work on one coordinate at a time and are the building blocks
// for the rest of the package.
//
// Other types can take part through small interfaces: [Coordinate] for
// anything with x and y, [BezierCurve] for anything with four control
// points, and [BezierPath] for anything with a start point and a list of
// segments. [SimplePath] is the package's own path.
//
// # Coordinate system
//
// Angles and directions are given for a coordinate system in which y grows
// upwards. A path is clockwise if its interior lies to the right of it, and
// [PathSignedArea] is positive for anticlockwise paths. In a y-down system,
// such as SVG's, the two directions trade names but nothing else changes.
//
// Paths used as shapes are implicitly closed.
//
// # Intersections
//
// Intersections between a curve and a line are found by solving a cubic
// ([Curve.IntersectLine]) or by bisecting the curve's bounding box
// ([CurveIntersectsLine]). Intersections between two curves use Bézier
// clipping with fat lines ([CurveIntersectsCurve]); curves that overlap
// along a stretch are handled separately ([OverlappingRegion]).
//
// # Path arithmetic
//
// [PathAdd], [PathIntersect] and [PathSub] combine two sets of paths into
// a new one. They split every segment where the paths cross, classify each
// piece by testing points just beside it, and walk the pieces on the
// boundary of the result into closed paths. [GraphPath] exposes these steps
// individually, and [ArithmeticOptions] controls the accuracy and fill rule.
//
// The results are oriented so that the filled area is to the left of every
// path: outlines run anticlockwise and holes clockwise.
//
// # Other tools
//
//   - Fitting curves to sampled points (see [FitCurve])
//   - Offsetting curves with varying width (see [OffsetCurve])
//   - Casting rays against paths (see [RayCollisions] and [PathContainsPoint])
//   - Reading and writing SVG path data (see [ParseSVGPath] and [FormatSVGPath])
//
// # Logging
//
// The package is silent by default. Pass a logger to [SetLogger] to see
// debug output from path arithmetic.
package bezier
