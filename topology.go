package pathgeom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is a vertex of the external topology graph (a road or lane junction
// point). Nodes are owned by that graph; the path engine only records
// associations to them by rounded-point key and never creates or destroys
// them.
type Node struct {
	ID    osm.NodeID
	Point orb.Point
}

// NodeIndexer supplies the point-keyed node lookup a waypoint binding needs.
type NodeIndexer interface {
	IndexNodes(nodes []*Node) map[RoundedPoint]*Node
}

// NodeIndex is the default NodeIndexer: every node keyed by its rounded
// point.
type NodeIndex struct{}

func (NodeIndex) IndexNodes(nodes []*Node) map[RoundedPoint]*Node {
	indexed := make(map[RoundedPoint]*Node, len(nodes))
	for _, node := range nodes {
		indexed[NodeKey(node.Point)] = node
	}
	return indexed
}
