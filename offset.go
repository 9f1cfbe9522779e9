package pathgeom

import (
	"github.com/paulmach/orb"
)

// OffsetLine returns the polyline parallel to the interpolated centerline at
// the given lateral distance. Positive distances are to the left of travel
// direction (lane centerlines are derived this way from the road
// centerline).
func (g *PathGeometry) OffsetLine(distance float64) orb.LineString {
	points := g.LineInterpolationPoints()
	if distance == 0 {
		return orb.LineString(points)
	}
	return orb.LineString(offsetPolyline(points, distance))
}
