package pathgeom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// RoundedPoint is a point rounded to a fixed decimal precision, usable as a
// map key to tolerate floating-point drift between coordinate sources.
type RoundedPoint struct {
	X float64
	Y float64
}

// String returns pretty printed value for RoundedPoint
func (rp RoundedPoint) String() string {
	return fmt.Sprintf("X: %f | Y: %f", rp.X, rp.Y)
}

// Point restores an orb.Point from the rounded key.
func (rp RoundedPoint) Point() orb.Point {
	return orb.Point{rp.X, rp.Y}
}

// RoundPoint rounds a point to the given number of decimals.
func RoundPoint(p orb.Point, decimals int) RoundedPoint {
	return RoundedPoint{
		X: roundTo(p[0], decimals),
		Y: roundTo(p[1], decimals),
	}
}

// NodeKey rounds a point to the precision used for topology-node lookups.
func NodeKey(p orb.Point) RoundedPoint {
	return RoundPoint(p, nodeKeyPrecision)
}
