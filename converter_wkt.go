package pathgeom

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts []orb.Point) string {
	ptsStr := make([]string, len(pts))
	for i := range pts {
		ptsStr[i] = fmt.Sprintf("%f %f", pts[i][0], pts[i][1])
	}
	return fmt.Sprintf("LINESTRING(%s)", strings.Join(ptsStr, ","))
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt orb.Point) string {
	return fmt.Sprintf("POINT(%f %f)", pt[0], pt[1])
}
