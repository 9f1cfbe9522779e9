package pathgeom

import (
	"github.com/paulmach/orb"
)

// PointPair bounds one sub-element produced by a split: [0] is the start
// point, [1] the end point, both expected to lie on the element.
type PointPair [2]orb.Point

// GeometryElement is one atomic geometric piece of a road centerline.
// Implementations are immutable: Merge and SplitInto return new elements.
//
// All local offset queries run in constant time; none may scan the owning
// path.
type GeometryElement interface {
	// Length returns the arc length of the element, never negative.
	Length() float64
	StartPoint() orb.Point
	EndPoint() orb.Point
	// StartHeading and EndHeading are tangent directions in radians,
	// normalized to (-Pi, Pi].
	StartHeading() float64
	EndHeading() float64

	// PointAtOffset returns the point at arc length d from the element
	// start. Fails with OutOfRangeError when d is negative or exceeds the
	// element length by more than a small epsilon.
	PointAtOffset(d float64) (orb.Point, error)
	// HeadingAtOffset returns the tangent heading at arc length d, with the
	// same range semantics as PointAtOffset.
	HeadingAtOffset(d float64) (float64, error)

	// IncludesPoint reports whether p lies on the element within tolerance.
	IncludesPoint(p orb.Point) bool
	// OffsetForPoint is the inverse of PointAtOffset. Fails with
	// PointNotOnElementError when p is not on the element's locus.
	OffsetForPoint(p orb.Point) (float64, error)

	// CanBeMergedWith reports whether the element and its successor
	// represent a single geometric entity within numeric tolerance.
	CanBeMergedWith(other GeometryElement) bool
	// Merge combines the element with its mergeable successor.
	Merge(other GeometryElement) (GeometryElement, error)
	// SplitInto cuts the element at the given ordered boundary pairs and
	// returns the corresponding sub-elements. Fails with
	// PointNotOnElementError when a boundary point is off the element.
	SplitInto(pairs []PointPair) ([]GeometryElement, error)

	// LineInterpolationPoints returns an ordered polyline approximation of
	// the element, including both endpoints.
	LineInterpolationPoints() []orb.Point

	// PointsAtLinearOffset returns every point of the element at the given
	// straight-line (not arc-length) distance from the reference point.
	PointsAtLinearOffset(reference orb.Point, offset float64) []orb.Point
}

// ControlPointSource is an existing path-like object a geometry can be
// built from.
type ControlPointSource interface {
	ControlPoints() []orb.Point
}
