package pathgeom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// ArcElement is a circular centerline arc. The sweep angle is signed:
// positive sweeps counter-clockwise, negative clockwise.
type ArcElement struct {
	center     orb.Point
	radius     float64
	startAngle float64
	sweep      float64
}

// NewArc returns an arc of the circle around center with the given radius,
// starting at startAngle (radians) and sweeping by the signed sweep angle.
func NewArc(center orb.Point, radius, startAngle, sweep float64) (ArcElement, error) {
	if radius <= 0 {
		return ArcElement{}, errors.Errorf("arc radius must be positive, got %f", radius)
	}
	if sweep == 0 {
		return ArcElement{}, errors.New("arc sweep angle must not be zero")
	}
	return ArcElement{center: center, radius: radius, startAngle: startAngle, sweep: sweep}, nil
}

// String returns pretty printed value for ArcElement
func (a ArcElement) String() string {
	return fmt.Sprintf("Arc around (%f, %f) radius %f from angle %f sweeping %f",
		a.center[0], a.center[1], a.radius, a.startAngle, a.sweep)
}

func (a ArcElement) Center() orb.Point {
	return a.center
}

func (a ArcElement) Radius() float64 {
	return a.radius
}

func (a ArcElement) Length() float64 {
	return a.radius * math.Abs(a.sweep)
}

func (a ArcElement) pointAtAngle(angle float64) orb.Point {
	return orb.Point{
		a.center[0] + a.radius*math.Cos(angle),
		a.center[1] + a.radius*math.Sin(angle),
	}
}

func (a ArcElement) StartPoint() orb.Point {
	return a.pointAtAngle(a.startAngle)
}

func (a ArcElement) EndPoint() orb.Point {
	return a.pointAtAngle(a.startAngle + a.sweep)
}

func (a ArcElement) headingAtAngle(angle float64) float64 {
	if a.sweep > 0 {
		return normalizeAngle(angle + math.Pi/2)
	}
	return normalizeAngle(angle - math.Pi/2)
}

func (a ArcElement) StartHeading() float64 {
	return a.headingAtAngle(a.startAngle)
}

func (a ArcElement) EndHeading() float64 {
	return a.headingAtAngle(a.startAngle + a.sweep)
}

func (a ArcElement) checkOffset(d float64) error {
	length := a.Length()
	if d < -offsetEpsilon || d > length+offsetEpsilon {
		return OutOfRangeError{Offset: d, Length: length}
	}
	return nil
}

func (a ArcElement) angleAtOffset(d float64) float64 {
	d = math.Min(math.Max(d, 0), a.Length())
	return a.startAngle + math.Copysign(d/a.radius, a.sweep)
}

func (a ArcElement) PointAtOffset(d float64) (orb.Point, error) {
	if err := a.checkOffset(d); err != nil {
		return orb.Point{}, err
	}
	return a.pointAtAngle(a.angleAtOffset(d)), nil
}

func (a ArcElement) HeadingAtOffset(d float64) (float64, error) {
	if err := a.checkOffset(d); err != nil {
		return 0, err
	}
	return a.headingAtAngle(a.angleAtOffset(d)), nil
}

func mod2Pi(angle float64) float64 {
	m := math.Mod(angle, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}

// angularOffsetFor returns the angular distance of p from the arc start,
// measured along the sweep direction, and whether p is on the arc.
func (a ArcElement) angularOffsetFor(p orb.Point) (float64, bool) {
	if math.Abs(planar.Distance(p, a.center)-a.radius) > distanceTolerance {
		return 0, false
	}
	angle := math.Atan2(p[1]-a.center[1], p[0]-a.center[0])
	var delta float64
	if a.sweep > 0 {
		delta = mod2Pi(angle - a.startAngle)
	} else {
		delta = mod2Pi(a.startAngle - angle)
	}
	angularTolerance := distanceTolerance/a.radius + offsetEpsilon
	if delta > math.Abs(a.sweep)+angularTolerance {
		// Wrapped just behind the start point
		if 2*math.Pi-delta <= angularTolerance {
			return 0, true
		}
		return 0, false
	}
	return math.Min(delta, math.Abs(a.sweep)), true
}

func (a ArcElement) IncludesPoint(p orb.Point) bool {
	_, ok := a.angularOffsetFor(p)
	return ok
}

func (a ArcElement) OffsetForPoint(p orb.Point) (float64, error) {
	delta, ok := a.angularOffsetFor(p)
	if !ok {
		return 0, PointNotOnElementError{Point: p}
	}
	return delta * a.radius, nil
}

// CanBeMergedWith reports whether other continues the same circle in the
// same sweep direction from this arc's end point.
func (a ArcElement) CanBeMergedWith(other GeometryElement) bool {
	oa, ok := other.(ArcElement)
	if !ok {
		return false
	}
	if planar.Distance(a.center, oa.center) > distanceTolerance {
		return false
	}
	if math.Abs(a.radius-oa.radius) > distanceTolerance {
		return false
	}
	if math.Signbit(a.sweep) != math.Signbit(oa.sweep) {
		return false
	}
	return pointsEqual(a.EndPoint(), oa.StartPoint())
}

func (a ArcElement) Merge(other GeometryElement) (GeometryElement, error) {
	if !a.CanBeMergedWith(other) {
		return nil, errors.Errorf("can not merge %v with %v", a, other)
	}
	oa := other.(ArcElement)
	merged, err := NewArc(a.center, a.radius, a.startAngle, a.sweep+oa.sweep)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (a ArcElement) SplitInto(pairs []PointPair) ([]GeometryElement, error) {
	parts := make([]GeometryElement, 0, len(pairs))
	for i, pair := range pairs {
		startOffset, err := a.OffsetForPoint(pair[0])
		if err != nil {
			return nil, errors.Wrapf(err, "split pair %d start", i)
		}
		endOffset, err := a.OffsetForPoint(pair[1])
		if err != nil {
			return nil, errors.Wrapf(err, "split pair %d end", i)
		}
		if endOffset <= startOffset {
			return nil, errors.Errorf("split pair %d is not ordered along the arc", i)
		}
		subSweep := math.Copysign((endOffset-startOffset)/a.radius, a.sweep)
		sub, err := NewArc(a.center, a.radius, a.angleAtOffset(startOffset), subSweep)
		if err != nil {
			return nil, errors.Wrapf(err, "split pair %d", i)
		}
		parts = append(parts, sub)
	}
	return parts, nil
}

func (a ArcElement) LineInterpolationPoints() []orb.Point {
	steps := int(math.Ceil(math.Abs(a.sweep) / arcAngleStep))
	if steps < 1 {
		steps = 1
	}
	points := make([]orb.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := a.startAngle + a.sweep*float64(i)/float64(steps)
		points = append(points, a.pointAtAngle(angle))
	}
	return points
}

// PointsAtLinearOffset intersects the arc with the circle centered at the
// reference point whose radius is the absolute offset.
func (a ArcElement) PointsAtLinearOffset(reference orb.Point, offset float64) []orb.Point {
	radius := math.Abs(offset)
	d := planar.Distance(a.center, reference)
	if d == 0 {
		// Concentric circles either miss or overlap everywhere
		return nil
	}
	if d > a.radius+radius+distanceTolerance || d < math.Abs(a.radius-radius)-distanceTolerance {
		return nil
	}

	along := (a.radius*a.radius - radius*radius + d*d) / (2 * d)
	chordSq := a.radius*a.radius - along*along
	if chordSq < 0 {
		chordSq = 0
	}
	chord := math.Sqrt(chordSq)

	unitX := (reference[0] - a.center[0]) / d
	unitY := (reference[1] - a.center[1]) / d
	baseX := a.center[0] + along*unitX
	baseY := a.center[1] + along*unitY

	candidates := []orb.Point{
		{baseX + chord*(-unitY), baseY + chord*unitX},
		{baseX - chord*(-unitY), baseY - chord*unitX},
	}

	var points []orb.Point
	for _, candidate := range candidates {
		if !a.IncludesPoint(candidate) {
			continue
		}
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
