package pathgeom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// InvalidPathError is returned when a path geometry is requested from less
// than two control points or from an empty/broken element sequence.
type InvalidPathError struct {
	NumPoints int
	Reason    string
}

func (e InvalidPathError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid path: %s", e.Reason)
	}
	return fmt.Sprintf("invalid path: need at least 2 control points, got %d", e.NumPoints)
}

// OutOfRangeError is returned by element-local queries when the requested
// arc-length offset is negative or exceeds the element length.
type OutOfRangeError struct {
	Offset float64
	Length float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("offset %f is out of element range [0, %f]", e.Offset, e.Length)
}

// OffsetExceedsPathLengthError is returned by path-level offset queries.
type OffsetExceedsPathLengthError struct {
	Offset     float64
	PathLength float64
}

func (e OffsetExceedsPathLengthError) Error() string {
	return fmt.Sprintf("provided offset (%f) is greater than path length (%f)", e.Offset, e.PathLength)
}

// PointNotFoundError is returned when no element of a path contains the
// given point within tolerance.
type PointNotFoundError struct {
	Point orb.Point
}

func (e PointNotFoundError) Error() string {
	return fmt.Sprintf("point (%f, %f) does not exist in path", e.Point[0], e.Point[1])
}

// PointNotOnElementError is returned by element-local inverse queries and
// splits when the given point is not on the element's locus within tolerance.
type PointNotOnElementError struct {
	Point orb.Point
}

func (e PointNotOnElementError) Error() string {
	return fmt.Sprintf("point (%f, %f) is not on element", e.Point[0], e.Point[1])
}

// AmbiguousOffsetError is returned by PointAtLinearOffset when the number of
// distinct candidate points is not 1 or 2.
type AmbiguousOffsetError struct {
	Reference orb.Point
	Offset    float64
	Matches   int
}

func (e AmbiguousOffsetError) Error() string {
	return fmt.Sprintf("linear offset %f from (%f, %f) yields %d distinct matches, want 1 or 2",
		e.Offset, e.Reference[0], e.Reference[1], e.Matches)
}

// WaypointAlignmentError is returned by SplitIn when the waypoint cursor runs
// off the end of the waypoint list before matching an element boundary.
type WaypointAlignmentError struct {
	ElementIndex  int
	WaypointIndex int
}

func (e WaypointAlignmentError) Error() string {
	return fmt.Sprintf("waypoints are not aligned with path: ran out of waypoints at index %d inside element %d",
		e.WaypointIndex, e.ElementIndex)
}

// UnresolvedNodeError is returned by waypoint binding when an interior
// element-start point has no topology node in the index.
type UnresolvedNodeError struct {
	Point RoundedPoint
}

func (e UnresolvedNodeError) Error() string {
	return fmt.Sprintf("no topology node indexed for point (%f, %f)", e.Point.X, e.Point.Y)
}
