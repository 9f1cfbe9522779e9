package pathgeom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func quarterArc(t *testing.T) ArcElement {
	arc, err := NewArc(orb.Point{0, 0}, 5, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	return arc
}

func TestNewArcValidation(t *testing.T) {
	if _, err := NewArc(orb.Point{0, 0}, 0, 0, math.Pi); err == nil {
		t.Errorf("Zero radius must be rejected")
	}
	if _, err := NewArc(orb.Point{0, 0}, 5, 0, 0); err == nil {
		t.Errorf("Zero sweep must be rejected")
	}
}

func TestArcEndpointsAndLength(t *testing.T) {
	arc := quarterArc(t)
	if !pointsEqual(arc.StartPoint(), orb.Point{5, 0}) {
		t.Errorf("Start point must be (5, 0), but got %v", arc.StartPoint())
	}
	if !pointsEqual(arc.EndPoint(), orb.Point{0, 5}) {
		t.Errorf("End point must be (0, 5), but got %v", arc.EndPoint())
	}
	res := 5 * math.Pi / 2
	if Round(arc.Length(), 0.000001) != Round(res, 0.000001) {
		t.Errorf("Arc length must be %f, but got %f", res, arc.Length())
	}
}

func TestArcPointAtOffset(t *testing.T) {
	arc := quarterArc(t)
	pt, err := arc.PointAtOffset(arc.Length() / 2)
	if err != nil {
		t.Error(err)
	}
	res := orb.Point{5 * math.Cos(math.Pi/4), 5 * math.Sin(math.Pi/4)}
	if !pointsEqual(pt, res) {
		t.Errorf("Midpoint must be %v, but got %v", res, pt)
	}

	_, err = arc.PointAtOffset(arc.Length() + 1)
	if _, ok := err.(OutOfRangeError); !ok {
		t.Errorf("Offset beyond length must return OutOfRangeError, but got %v", err)
	}
}

func TestArcHeadings(t *testing.T) {
	arc := quarterArc(t)
	if Round(arc.StartHeading(), 0.000001) != Round(math.Pi/2, 0.000001) {
		t.Errorf("Start heading must be %f, but got %f", math.Pi/2, arc.StartHeading())
	}
	if Round(arc.EndHeading(), 0.000001) != Round(math.Pi, 0.000001) {
		t.Errorf("End heading must be %f, but got %f", math.Pi, arc.EndHeading())
	}

	clockwise, err := NewArc(orb.Point{0, 0}, 5, math.Pi/2, -math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if Round(clockwise.StartHeading(), 0.000001) != Round(0, 0.000001) {
		t.Errorf("Clockwise start heading must be 0, but got %f", clockwise.StartHeading())
	}
}

func TestArcOffsetForPoint(t *testing.T) {
	arc := quarterArc(t)
	midpoint, err := arc.PointAtOffset(arc.Length() / 2)
	if err != nil {
		t.Fatal(err)
	}
	offset, err := arc.OffsetForPoint(midpoint)
	if err != nil {
		t.Error(err)
	}
	if Round(offset, 0.000001) != Round(arc.Length()/2, 0.000001) {
		t.Errorf("Offset must be %f, but got %f", arc.Length()/2, offset)
	}

	_, err = arc.OffsetForPoint(orb.Point{5, 5})
	if _, ok := err.(PointNotOnElementError); !ok {
		t.Errorf("Off-locus point must return PointNotOnElementError, but got %v", err)
	}
	// On the circle but outside the sweep
	_, err = arc.OffsetForPoint(orb.Point{0, -5})
	if _, ok := err.(PointNotOnElementError); !ok {
		t.Errorf("Point outside sweep must return PointNotOnElementError, but got %v", err)
	}
}

func TestArcMerge(t *testing.T) {
	first := quarterArc(t)
	second, err := NewArc(orb.Point{0, 0}, 5, math.Pi/2, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if !first.CanBeMergedWith(second) {
		t.Errorf("Contiguous arcs of one circle must be mergeable")
	}
	merged, err := first.Merge(second)
	if err != nil {
		t.Error(err)
	}
	res := 5 * math.Pi
	if Round(merged.Length(), 0.000001) != Round(res, 0.000001) {
		t.Errorf("Merged length must be %f, but got %f", res, merged.Length())
	}
	if !pointsEqual(merged.EndPoint(), orb.Point{-5, 0}) {
		t.Errorf("Merged end point must be (-5, 0), but got %v", merged.EndPoint())
	}

	opposite, err := NewArc(orb.Point{0, 0}, 5, math.Pi/2, -math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if first.CanBeMergedWith(opposite) {
		t.Errorf("Arcs sweeping in opposite directions must not be mergeable")
	}
	line := NewLine(orb.Point{0, 5}, orb.Point{0, 10})
	if first.CanBeMergedWith(line) {
		t.Errorf("Arc must not be mergeable with a line")
	}
}

func TestArcSplitInto(t *testing.T) {
	arc := quarterArc(t)
	midpoint, err := arc.PointAtOffset(arc.Length() / 2)
	if err != nil {
		t.Fatal(err)
	}
	parts, err := arc.SplitInto([]PointPair{
		{arc.StartPoint(), midpoint},
		{midpoint, arc.EndPoint()},
	})
	if err != nil {
		t.Error(err)
	}
	if len(parts) != 2 {
		t.Errorf("Split must produce 2 parts, but got %d", len(parts))
	}
	total := parts[0].Length() + parts[1].Length()
	if Round(total, 0.000001) != Round(arc.Length(), 0.000001) {
		t.Errorf("Split parts must preserve length %f, but got %f", arc.Length(), total)
	}
	if !pointsEqual(parts[0].EndPoint(), parts[1].StartPoint()) {
		t.Errorf("Split parts must stay continuous at %v / %v", parts[0].EndPoint(), parts[1].StartPoint())
	}
}

func TestArcLineInterpolationPoints(t *testing.T) {
	arc := quarterArc(t)
	points := arc.LineInterpolationPoints()
	if len(points) < 2 {
		t.Errorf("Interpolation must produce at least 2 points, but got %d", len(points))
	}
	if !pointsEqual(points[0], arc.StartPoint()) || !pointsEqual(points[len(points)-1], arc.EndPoint()) {
		t.Errorf("Interpolation must keep arc endpoints, but got %v and %v", points[0], points[len(points)-1])
	}
	length := polylineLength(points)
	if math.Abs(length-arc.Length()) > 0.05 {
		t.Errorf("Interpolated length %f must approximate arc length %f", length, arc.Length())
	}
}

func TestArcPointsAtLinearOffset(t *testing.T) {
	arc := quarterArc(t)
	points := arc.PointsAtLinearOffset(arc.StartPoint(), 1)
	if len(points) != 1 {
		t.Errorf("Must find 1 point, but got %d", len(points))
	}
	offset, err := arc.OffsetForPoint(points[0])
	if err != nil {
		t.Error(err)
	}
	if offset <= 0 || offset > arc.Length() {
		t.Errorf("Found point must lie ahead on the arc, but its offset is %f", offset)
	}

	points = arc.PointsAtLinearOffset(orb.Point{50, 50}, 1)
	if len(points) != 0 {
		t.Errorf("Distant circle must not intersect the arc, but got %v", points)
	}
	// Concentric circles are degenerate and yield nothing
	points = arc.PointsAtLinearOffset(orb.Point{0, 0}, 5)
	if len(points) != 0 {
		t.Errorf("Concentric circle must yield no matches, but got %v", points)
	}
}
