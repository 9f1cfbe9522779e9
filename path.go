package pathgeom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// PathGeometry is the centerline of a road segment: an ordered, continuous
// composition of geometric primitives with arc-length-parameterized queries.
//
// A PathGeometry exclusively owns its elements. The memoized waypoint cache
// is not synchronized; concurrent use needs external locking.
type PathGeometry struct {
	elements  []GeometryElement
	waypoints []*Waypoint
}

// NewPathGeometry builds a path from an already prepared element sequence.
// The sequence must be non-empty and continuous: each element has to start
// where its predecessor ends.
func NewPathGeometry(elements []GeometryElement) (*PathGeometry, error) {
	if len(elements) == 0 {
		return nil, InvalidPathError{Reason: "element sequence is empty"}
	}
	for i := 1; i < len(elements); i++ {
		if !pointsEqual(elements[i-1].EndPoint(), elements[i].StartPoint()) {
			return nil, InvalidPathError{Reason: fmt.Sprintf("element %d does not start where element %d ends", i, i-1)}
		}
	}
	return &PathGeometry{elements: elements}, nil
}

// FromControlPoints builds a path geometry from an ordered sequence of at
// least two control points. The construction policy defaults to one straight
// segment per consecutive pair and can be overridden with WithBuildStrategy.
func FromControlPoints(controlPoints []orb.Point, options ...func(*PathBuilder)) (*PathGeometry, error) {
	if len(controlPoints) < 2 {
		return nil, InvalidPathError{NumPoints: len(controlPoints)}
	}
	builder := &PathBuilder{strategy: LineStrategy{}}
	for _, option := range options {
		option(builder)
	}
	elements, err := builder.strategy.BuildElements(controlPoints)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build elements from control points")
	}
	return NewPathGeometry(elements)
}

// FromPath builds a path geometry from an existing path-like object.
func FromPath(src ControlPointSource, options ...func(*PathBuilder)) (*PathGeometry, error) {
	return FromControlPoints(src.ControlPoints(), options...)
}

func (g *PathGeometry) ElementsCount() int {
	return len(g.elements)
}

func (g *PathGeometry) Elements() []GeometryElement {
	return g.elements
}

func (g *PathGeometry) ElementAt(index int) GeometryElement {
	return g.elements[index]
}

func (g *PathGeometry) FirstElement() GeometryElement {
	return g.elements[0]
}

func (g *PathGeometry) LastElement() GeometryElement {
	return g.elements[len(g.elements)-1]
}

func (g *PathGeometry) StartPoint() orb.Point {
	return g.FirstElement().StartPoint()
}

func (g *PathGeometry) EndPoint() orb.Point {
	return g.LastElement().EndPoint()
}

// Length returns the total arc length of the path.
func (g *PathGeometry) Length() float64 {
	total := 0.0
	for _, element := range g.elements {
		total += element.Length()
	}
	return total
}

// ReplaceElementAt swaps out one element and invalidates the memoized
// waypoints. The caller is responsible for preserving path continuity.
func (g *PathGeometry) ReplaceElementAt(index int, element GeometryElement) error {
	if index < 0 || index >= len(g.elements) {
		return errors.Errorf("element index %d out of range [0, %d)", index, len(g.elements))
	}
	g.elements[index] = element
	g.waypoints = nil
	return nil
}

// Simplify reduces the number of primitives in the path by merging
// contiguous elements that represent a single geometric entity (e.g. two
// collinear straight segments). Single greedy left-to-right pass.
func (g *PathGeometry) Simplify() {
	simplified := make([]GeometryElement, 0, len(g.elements))
	previous := g.elements[0]
	for index := 1; index < len(g.elements); index++ {
		current := g.elements[index]
		if previous.CanBeMergedWith(current) {
			merged, err := previous.Merge(current)
			if err == nil {
				previous = merged
				continue
			}
		}
		simplified = append(simplified, previous)
		previous = current
	}
	simplified = append(simplified, previous)
	g.elements = simplified
	g.waypoints = nil
}

// SplitIn partitions every element at the waypoint centers that fall within
// it and returns a new path built from the resulting sub-elements. The
// waypoints must lie on the path and be ordered consistently with travel
// direction. The receiver's waypoint cache is invalidated.
func (g *PathGeometry) SplitIn(waypoints []*Waypoint) (*PathGeometry, error) {
	var primitives []GeometryElement
	waypointIndex := 0
	for elementIndex, element := range g.elements {
		if waypointIndex >= len(waypoints) {
			return nil, WaypointAlignmentError{ElementIndex: elementIndex, WaypointIndex: waypointIndex}
		}
		currentCenter := waypoints[waypointIndex].Center
		var pairs []PointPair
		for !pointsEqual(currentCenter, element.EndPoint()) {
			waypointIndex++
			if waypointIndex >= len(waypoints) {
				return nil, WaypointAlignmentError{ElementIndex: elementIndex, WaypointIndex: waypointIndex}
			}
			nextCenter := waypoints[waypointIndex].Center
			pairs = append(pairs, PointPair{currentCenter, nextCenter})
			currentCenter = nextCenter
		}
		parts, err := element.SplitInto(pairs)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't split element %d", elementIndex)
		}
		primitives = append(primitives, parts...)
	}
	g.waypoints = nil
	return NewPathGeometry(primitives)
}

// PointAtOffset returns the point at the given arc length from the path
// start.
func (g *PathGeometry) PointAtOffset(offset float64) (orb.Point, error) {
	remaining := offset
	for _, element := range g.elements {
		if remaining > element.Length()+offsetEpsilon {
			remaining -= element.Length()
			continue
		}
		return element.PointAtOffset(remaining)
	}
	return orb.Point{}, OffsetExceedsPathLengthError{Offset: offset, PathLength: g.Length()}
}

// HeadingAtOffset returns the tangent heading at the given arc length from
// the path start, in radians.
func (g *PathGeometry) HeadingAtOffset(offset float64) (float64, error) {
	remaining := offset
	for _, element := range g.elements {
		if remaining > element.Length()+offsetEpsilon {
			remaining -= element.Length()
			continue
		}
		return element.HeadingAtOffset(remaining)
	}
	return 0, OffsetExceedsPathLengthError{Offset: offset, PathLength: g.Length()}
}

// HeadingAtPoint returns the tangent heading at the given point of the path.
func (g *PathGeometry) HeadingAtPoint(point orb.Point) (float64, error) {
	offset, err := g.OffsetForPoint(point)
	if err != nil {
		return 0, err
	}
	return g.HeadingAtOffset(offset)
}

// OffsetForPoint returns the arc length from the path start to the given
// point. Fails with PointNotFoundError when no element contains the point
// within tolerance.
func (g *PathGeometry) OffsetForPoint(point orb.Point) (float64, error) {
	accumulated := 0.0
	for _, element := range g.elements {
		if element.IncludesPoint(point) {
			local, err := element.OffsetForPoint(point)
			if err != nil {
				return 0, err
			}
			return accumulated + local, nil
		}
		accumulated += element.Length()
	}
	return 0, PointNotFoundError{Point: point}
}

// PointAtLinearOffset returns the path point at the given signed
// straight-line distance from the reference point. Candidates from all
// elements are deduplicated by rounding; with two distinct candidates a
// negative offset selects the first and a non-negative one the second. Any
// other candidate count fails with AmbiguousOffsetError.
func (g *PathGeometry) PointAtLinearOffset(reference orb.Point, offset float64) (orb.Point, error) {
	var matches []RoundedPoint
	for _, element := range g.elements {
		for _, point := range element.PointsAtLinearOffset(reference, offset) {
			rounded := RoundPoint(point, linearMatchPrecision)
			known := false
			for _, match := range matches {
				if match == rounded {
					known = true
					break
				}
			}
			if !known {
				matches = append(matches, rounded)
			}
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].Point(), nil
	case 2:
		if offset < 0 {
			return matches[0].Point(), nil
		}
		return matches[1].Point(), nil
	default:
		return orb.Point{}, AmbiguousOffsetError{Reference: reference, Offset: offset, Matches: len(matches)}
	}
}

// LineInterpolationPoints returns an ordered polyline approximation of the
// whole path. The boundary point shared by consecutive elements appears
// once.
func (g *PathGeometry) LineInterpolationPoints() []orb.Point {
	var points []orb.Point
	for _, element := range g.elements {
		elementPoints := element.LineInterpolationPoints()
		if len(points) > 0 {
			// Last point of the previous element equals the first point of
			// the current one
			points = points[:len(points)-1]
		}
		points = append(points, elementPoints...)
	}
	return points
}

// String returns pretty printed value for PathGeometry
func (g *PathGeometry) String() string {
	parts := ""
	for _, element := range g.elements {
		parts += "\n" + fmt.Sprintf("%v", element)
	}
	return "Path geometry" + parts
}
