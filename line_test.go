package pathgeom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func TestLinePointAtOffset(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{10, 0})
	pt, err := line.PointAtOffset(4)
	if err != nil {
		t.Error(err)
	}
	res := orb.Point{4, 0}
	if !pointsEqual(pt, res) {
		t.Errorf("Point must be %v, but got %v", res, pt)
	}

	pt, err = line.PointAtOffset(line.Length())
	if err != nil {
		t.Error(err)
	}
	if !pointsEqual(pt, line.EndPoint()) {
		t.Errorf("Point at full length must be end point %v, but got %v", line.EndPoint(), pt)
	}
}

func TestLineOffsetOutOfRange(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{10, 0})
	_, err := line.PointAtOffset(-1)
	if _, ok := err.(OutOfRangeError); !ok {
		t.Errorf("Negative offset must return OutOfRangeError, but got %v", err)
	}
	_, err = line.HeadingAtOffset(11)
	rangeErr, ok := err.(OutOfRangeError)
	if !ok {
		t.Errorf("Offset beyond length must return OutOfRangeError, but got %v", err)
	} else if rangeErr.Offset != 11 || rangeErr.Length != 10 {
		t.Errorf("OutOfRangeError must carry offset 11 and length 10, but got %v", rangeErr)
	}
}

func TestLineHeading(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{5, 5})
	res := math.Pi / 4
	if Round(line.StartHeading(), 0.000001) != Round(res, 0.000001) {
		t.Errorf("Start heading must be %f, but got %f", res, line.StartHeading())
	}
	if line.StartHeading() != line.EndHeading() {
		t.Errorf("Line headings must be constant, but got %f and %f", line.StartHeading(), line.EndHeading())
	}
	heading, err := line.HeadingAtOffset(3)
	if err != nil {
		t.Error(err)
	}
	if heading != line.StartHeading() {
		t.Errorf("Heading at offset must be %f, but got %f", line.StartHeading(), heading)
	}
}

func TestLineOffsetForPoint(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{10, 0})
	offset, err := line.OffsetForPoint(orb.Point{7, 0})
	if err != nil {
		t.Error(err)
	}
	if Round(offset, 0.000001) != 7.0 {
		t.Errorf("Offset must be 7, but got %f", offset)
	}

	_, err = line.OffsetForPoint(orb.Point{4, 1})
	if _, ok := err.(PointNotOnElementError); !ok {
		t.Errorf("Off-locus point must return PointNotOnElementError, but got %v", err)
	}
}

func TestLineIncludesPoint(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{10, 0})
	if !line.IncludesPoint(orb.Point{5, 0}) {
		t.Errorf("Line must include its interior point")
	}
	if !line.IncludesPoint(orb.Point{10, 0}) {
		t.Errorf("Line must include its end point")
	}
	if line.IncludesPoint(orb.Point{11, 0}) {
		t.Errorf("Line must not include point beyond its end")
	}
	if line.IncludesPoint(orb.Point{5, 0.5}) {
		t.Errorf("Line must not include point off its locus")
	}
}

func TestLineMerge(t *testing.T) {
	first := NewLine(orb.Point{0, 0}, orb.Point{5, 0})
	second := NewLine(orb.Point{5, 0}, orb.Point{10, 0})
	if !first.CanBeMergedWith(second) {
		t.Errorf("Contiguous collinear segments must be mergeable")
	}
	merged, err := first.Merge(second)
	if err != nil {
		t.Error(err)
	}
	if Round(merged.Length(), 0.000001) != 10.0 {
		t.Errorf("Merged length must be 10, but got %f", merged.Length())
	}

	bent := NewLine(orb.Point{5, 0}, orb.Point{5, 5})
	if first.CanBeMergedWith(bent) {
		t.Errorf("Non-collinear segments must not be mergeable")
	}
	apart := NewLine(orb.Point{6, 0}, orb.Point{10, 0})
	if first.CanBeMergedWith(apart) {
		t.Errorf("Disconnected segments must not be mergeable")
	}
	reversed := NewLine(orb.Point{5, 0}, orb.Point{0, 0})
	if first.CanBeMergedWith(reversed) {
		t.Errorf("Opposite-direction segments must not be mergeable")
	}
}

func TestLineSplitInto(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{10, 0})
	parts, err := line.SplitInto([]PointPair{
		{orb.Point{0, 0}, orb.Point{4, 0}},
		{orb.Point{4, 0}, orb.Point{10, 0}},
	})
	if err != nil {
		t.Error(err)
	}
	if len(parts) != 2 {
		t.Errorf("Split must produce 2 parts, but got %d", len(parts))
	}
	if Round(parts[0].Length(), 0.000001) != 4.0 || Round(parts[1].Length(), 0.000001) != 6.0 {
		t.Errorf("Split part lengths must be 4 and 6, but got %f and %f", parts[0].Length(), parts[1].Length())
	}

	_, err = line.SplitInto([]PointPair{
		{orb.Point{0, 0}, orb.Point{4, 2}},
	})
	if _, ok := errors.Cause(err).(PointNotOnElementError); !ok {
		t.Errorf("Split at off-locus point must return PointNotOnElementError, but got %v", err)
	}
}

func TestLinePointsAtLinearOffset(t *testing.T) {
	line := NewLine(orb.Point{0, 0}, orb.Point{10, 0})
	points := line.PointsAtLinearOffset(orb.Point{5, 0}, 2)
	if len(points) != 2 {
		t.Errorf("Must find 2 points, but got %d", len(points))
	}
	if !pointsEqual(points[0], orb.Point{3, 0}) || !pointsEqual(points[1], orb.Point{7, 0}) {
		t.Errorf("Points must be (3, 0) and (7, 0), but got %v", points)
	}

	points = line.PointsAtLinearOffset(orb.Point{0, 0}, 2)
	if len(points) != 1 {
		t.Errorf("Must find 1 point, but got %d", len(points))
	}
	if !pointsEqual(points[0], orb.Point{2, 0}) {
		t.Errorf("Point must be (2, 0), but got %v", points[0])
	}

	points = line.PointsAtLinearOffset(orb.Point{5, 10}, 2)
	if len(points) != 0 {
		t.Errorf("Must find no points, but got %v", points)
	}
}
