package pathgeom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// LineElement is a straight centerline segment.
type LineElement struct {
	start orb.Point
	end   orb.Point
}

// NewLine returns a straight element between the two given points.
func NewLine(start, end orb.Point) LineElement {
	return LineElement{start: start, end: end}
}

// String returns pretty printed value for LineElement
func (l LineElement) String() string {
	return fmt.Sprintf("Line from (%f, %f) to (%f, %f)", l.start[0], l.start[1], l.end[0], l.end[1])
}

// Length returns the Euclidean length of the segment
func (l LineElement) Length() float64 {
	return planar.Distance(l.start, l.end)
}

func (l LineElement) StartPoint() orb.Point {
	return l.start
}

func (l LineElement) EndPoint() orb.Point {
	return l.end
}

// StartHeading returns the constant tangent direction of the segment
func (l LineElement) StartHeading() float64 {
	return headingBetween(l.start, l.end)
}

func (l LineElement) EndHeading() float64 {
	return l.StartHeading()
}

func (l LineElement) checkOffset(d float64) error {
	length := l.Length()
	if d < -offsetEpsilon || d > length+offsetEpsilon {
		return OutOfRangeError{Offset: d, Length: length}
	}
	return nil
}

func (l LineElement) PointAtOffset(d float64) (orb.Point, error) {
	if err := l.checkOffset(d); err != nil {
		return orb.Point{}, err
	}
	length := l.Length()
	if length == 0 {
		return l.start, nil
	}
	fraction := math.Min(math.Max(d/length, 0), 1)
	return pointOnSegmentByFraction(l.start, l.end, fraction), nil
}

func (l LineElement) HeadingAtOffset(d float64) (float64, error) {
	if err := l.checkOffset(d); err != nil {
		return 0, err
	}
	return l.StartHeading(), nil
}

// projection returns the arc length of the orthogonal projection of p onto
// the segment and the distance from p to that projection.
func (l LineElement) projection(p orb.Point) (float64, float64) {
	dirX := l.end[0] - l.start[0]
	dirY := l.end[1] - l.start[1]
	length := l.Length()
	if length == 0 {
		return 0, planar.Distance(p, l.start)
	}
	t := ((p[0]-l.start[0])*dirX + (p[1]-l.start[1])*dirY) / (length * length)
	t = math.Min(math.Max(t, 0), 1)
	closest := pointOnSegmentByFraction(l.start, l.end, t)
	return t * length, planar.Distance(p, closest)
}

func (l LineElement) IncludesPoint(p orb.Point) bool {
	_, dist := l.projection(p)
	return dist <= distanceTolerance
}

func (l LineElement) OffsetForPoint(p orb.Point) (float64, error) {
	offset, dist := l.projection(p)
	if dist > distanceTolerance {
		return 0, PointNotOnElementError{Point: p}
	}
	return offset, nil
}

// CanBeMergedWith reports whether other is a contiguous collinear segment
// continuing in the same travel direction.
func (l LineElement) CanBeMergedWith(other GeometryElement) bool {
	ol, ok := other.(LineElement)
	if !ok {
		return false
	}
	if !pointsEqual(l.end, ol.start) {
		return false
	}
	len1 := l.Length()
	len2 := ol.Length()
	if len1 == 0 || len2 == 0 {
		return true
	}
	ux1 := (l.end[0] - l.start[0]) / len1
	uy1 := (l.end[1] - l.start[1]) / len1
	ux2 := (ol.end[0] - ol.start[0]) / len2
	uy2 := (ol.end[1] - ol.start[1]) / len2
	cross := ux1*uy2 - uy1*ux2
	dot := ux1*ux2 + uy1*uy2
	return math.Abs(cross) <= collinearTolerance && dot > 0
}

func (l LineElement) Merge(other GeometryElement) (GeometryElement, error) {
	if !l.CanBeMergedWith(other) {
		return nil, errors.Errorf("can not merge %v with %v", l, other)
	}
	return NewLine(l.start, other.EndPoint()), nil
}

func (l LineElement) SplitInto(pairs []PointPair) ([]GeometryElement, error) {
	parts := make([]GeometryElement, 0, len(pairs))
	for i, pair := range pairs {
		if !l.IncludesPoint(pair[0]) {
			return nil, errors.Wrapf(PointNotOnElementError{Point: pair[0]}, "split pair %d start", i)
		}
		if !l.IncludesPoint(pair[1]) {
			return nil, errors.Wrapf(PointNotOnElementError{Point: pair[1]}, "split pair %d end", i)
		}
		parts = append(parts, NewLine(pair[0], pair[1]))
	}
	return parts, nil
}

func (l LineElement) LineInterpolationPoints() []orb.Point {
	return []orb.Point{l.start, l.end}
}

// PointsAtLinearOffset intersects the segment with the circle centered at
// the reference point whose radius is the absolute offset.
func (l LineElement) PointsAtLinearOffset(reference orb.Point, offset float64) []orb.Point {
	radius := math.Abs(offset)
	dirX := l.end[0] - l.start[0]
	dirY := l.end[1] - l.start[1]
	relX := l.start[0] - reference[0]
	relY := l.start[1] - reference[1]

	a := dirX*dirX + dirY*dirY
	if a == 0 {
		if math.Abs(planar.Distance(l.start, reference)-radius) <= distanceTolerance {
			return []orb.Point{l.start}
		}
		return nil
	}
	b := 2 * (relX*dirX + relY*dirY)
	c := relX*relX + relY*relY - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	var points []orb.Point
	for _, t := range []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t < -offsetEpsilon || t > 1+offsetEpsilon {
			continue
		}
		t = math.Min(math.Max(t, 0), 1)
		candidate := pointOnSegmentByFraction(l.start, l.end, t)
		duplicate := false
		for _, seen := range points {
			if pointsEqual(seen, candidate) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			points = append(points, candidate)
		}
	}
	return points
}
