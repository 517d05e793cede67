package bezier

import "fmt"

// FillRule decides from a winding number whether a point is inside a shape
// made of several, possibly overlapping, paths.
//
// NonZero fills points enclosed by an unequal number of clockwise and
// anticlockwise paths. EvenOdd fills points enclosed by an odd number of
// paths, whatever their direction. Positive fills only anticlockwise
// windings and Negative only clockwise ones.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
	Positive
	Negative
)

// Fills reports whether a point with the given winding number is inside.
func (fillRule FillRule) Fills(windings int) bool {
	switch fillRule {
	case NonZero:
		return windings != 0
	case EvenOdd:
		return windings%2 != 0
	case Positive:
		return 0 < windings
	case Negative:
		return windings < 0
	}
	return false
}

func (fillRule FillRule) String() string {
	switch fillRule {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	}
	return fmt.Sprintf("FillRule(%d)", fillRule)
}
