package pathgeom

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Lane is the externally owned lane a waypoint belongs to. The engine only
// needs the topology nodes of the lane's road.
type Lane interface {
	RoadNodes() []*Node
}

// Waypoint anchors a point of a path to a lane and to an external topology
// node. Waypoints are immutable after binding.
type Waypoint struct {
	Lane    Lane
	Path    *PathGeometry
	Center  orb.Point
	Heading float64
	Node    *Node
}

// Waypoints binds one waypoint per element start point plus one for the
// path's final end point, resolving topology nodes through the given
// indexer. The path's own start and end points are force-inserted into the
// index with the road's first and last nodes, so endpoints always resolve
// even when node coordinates drifted. The result is memoized until an
// element is replaced.
//
// Fails with UnresolvedNodeError when an interior element-start point has no
// node in the index.
func (g *PathGeometry) Waypoints(lane Lane, indexer NodeIndexer) ([]*Waypoint, error) {
	if g.waypoints != nil {
		return g.waypoints, nil
	}

	roadNodes := lane.RoadNodes()
	if len(roadNodes) == 0 {
		return nil, errors.New("Can't bind waypoints: lane road has no topology nodes")
	}
	nodesByPoint := indexer.IndexNodes(roadNodes)
	if nodesByPoint == nil {
		nodesByPoint = make(map[RoundedPoint]*Node)
	}
	nodesByPoint[NodeKey(g.StartPoint())] = roadNodes[0]
	nodesByPoint[NodeKey(g.EndPoint())] = roadNodes[len(roadNodes)-1]

	waypoints := make([]*Waypoint, 0, len(g.elements)+1)
	for _, element := range g.elements {
		point := element.StartPoint()
		key := NodeKey(point)
		node, ok := nodesByPoint[key]
		if !ok {
			return nil, UnresolvedNodeError{Point: key}
		}
		waypoints = append(waypoints, &Waypoint{
			Lane:    lane,
			Path:    g,
			Center:  point,
			Heading: element.StartHeading(),
			Node:    node,
		})
	}

	lastElement := g.LastElement()
	endPoint := lastElement.EndPoint()
	endKey := NodeKey(endPoint)
	endNode, ok := nodesByPoint[endKey]
	if !ok {
		return nil, UnresolvedNodeError{Point: endKey}
	}
	waypoints = append(waypoints, &Waypoint{
		Lane:    lane,
		Path:    g,
		Center:  endPoint,
		Heading: lastElement.EndHeading(),
		Node:    endNode,
	})

	g.waypoints = waypoints
	return waypoints, nil
}
