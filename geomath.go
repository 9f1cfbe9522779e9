package pathgeom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// distanceTolerance bounds how far a point may sit from an element's
	// locus and still be considered to lie on it.
	distanceTolerance = 1e-6
	// offsetEpsilon is the slack allowed on arc-length offsets at element
	// boundaries before they are rejected as out of range.
	offsetEpsilon = 1e-9
	// collinearTolerance bounds the cross product of unit directions for
	// two segments to be treated as one geometric entity.
	collinearTolerance = 1e-9
	// arcAngleStep is the angular sampling resolution used when an arc is
	// approximated by a polyline.
	arcAngleStep = 0.1

	// nodeKeyPrecision is the number of decimals kept when a point is used
	// as a topology-node lookup key.
	nodeKeyPrecision = 7
	// linearMatchPrecision is the number of decimals kept when deduplicating
	// linear-offset candidates.
	linearMatchPrecision = 10
)

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}

// normalizeAngle wraps an angle into (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// headingBetween returns the heading of the vector from p to q, in radians.
func headingBetween(p, q orb.Point) float64 {
	return math.Atan2(q[1]-p[1], q[0]-p[0])
}

// pointsEqual reports whether two points coincide within distance tolerance.
func pointsEqual(p, q orb.Point) bool {
	return planar.Distance(p, q) <= distanceTolerance
}

// pointOnSegmentByFraction returns a point on segment pq at the given fraction.
func pointOnSegmentByFraction(p, q orb.Point, fraction float64) orb.Point {
	return orb.Point{
		(1-fraction)*p[0] + fraction*q[0],
		(1-fraction)*p[1] + fraction*q[1],
	}
}

// polylineLength returns the Euclidean length of the given polyline.
func polylineLength(line []orb.Point) float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += planar.Distance(line[i-1], line[i])
	}
	return total
}

// intersectLines returns the crossing point of the infinite lines through
// segments (p1, p2) and (p3, p4).
// The second return value is false when the lines are parallel.
func intersectLines(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	det := a1*b2 - a2*b1
	if det == 0 {
		return orb.Point{}, false
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, true
}

// offsetPolyline shifts a polyline sideways by the given distance.
// Positive distance offsets to the left of travel direction. Consecutive
// offset segments are joined at their crossing point; parallel neighbours
// keep the shared segment endpoint.
func offsetPolyline(line []orb.Point, distance float64) []orb.Point {
	var segments [][2]orb.Point

	for i := 1; i < len(line); i++ {
		p1 := line[i-1]
		p2 := line[i]

		vecX := p2[0] - p1[0]
		vecY := p2[1] - p1[1]
		vecLen := math.Sqrt(vecX*vecX + vecY*vecY)
		if vecLen == 0 {
			continue
		}
		// Unit normal, 90 degrees counter-clockwise from travel direction
		normX := -vecY / vecLen * distance
		normY := vecX / vecLen * distance

		op1 := orb.Point{p1[0] + normX, p1[1] + normY}
		op2 := orb.Point{p2[0] + normX, p2[1] + normY}
		segments = append(segments, [2]orb.Point{op1, op2})
	}
	if len(segments) == 0 {
		return nil
	}

	result := []orb.Point{segments[0][0]}
	for i := 1; i < len(segments); i++ {
		crossing, ok := intersectLines(segments[i-1][0], segments[i-1][1], segments[i][0], segments[i][1])
		if !ok {
			result = append(result, segments[i-1][1])
			continue
		}
		result = append(result, crossing)
	}
	result = append(result, segments[len(segments)-1][1])
	return result
}
