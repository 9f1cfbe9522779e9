package pathgeom

import (
	"fmt"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

type RoadID int64
type JunctionID int64

// Road is one mapped road segment: its centerline geometry and the
// waypoints bound against the topology graph. The mapper only consumes the
// path's endpoints and connection points.
type Road struct {
	ID        RoadID
	Name      string
	Geometry  *PathGeometry
	Waypoints []*Waypoint
}

// Connection links the exit waypoint of one road to the entry waypoint of
// another.
type Connection struct {
	Exit  *Waypoint
	Entry *Waypoint
}

// String returns pretty printed value for Connection
func (c Connection) String() string {
	return fmt.Sprintf("entry (%f, %f) exit (%f, %f)",
		c.Entry.Center[0], c.Entry.Center[1], c.Exit.Center[0], c.Exit.Center[1])
}

// Junction groups the connections that meet at one shared waypoint cluster.
type Junction struct {
	ID          JunctionID
	Connections []Connection
}

func (j *Junction) AddConnection(connection Connection) {
	j.Connections = append(j.Connections, connection)
}

// ContainsWaypoint reports whether the waypoint takes part in any of the
// junction's connections.
func (j *Junction) ContainsWaypoint(waypoint *Waypoint) bool {
	for _, connection := range j.Connections {
		if connection.Entry == waypoint || connection.Exit == waypoint {
			return true
		}
	}
	return false
}

func (j *Junction) ConnectionsCount() int {
	return len(j.Connections)
}

// IDMapper hands out unique identifiers for roads and junctions and keeps
// the references it assigned them to.
type IDMapper struct {
	counter   int64
	roadIDs   map[*Road]RoadID
	junctions []*Junction
}

func NewIDMapper() *IDMapper {
	return &IDMapper{
		roadIDs: make(map[*Road]RoadID),
	}
}

func (m *IDMapper) nextID() int64 {
	m.counter++
	return m.counter
}

// MapRoads assigns a fresh unique id to every road.
func (m *IDMapper) MapRoads(roads []*Road) {
	for _, road := range roads {
		id := RoadID(m.nextID())
		m.roadIDs[road] = id
		road.ID = id
	}
}

// IDFor returns the id previously assigned to the road.
func (m *IDMapper) IDFor(road *Road) (RoadID, bool) {
	id, ok := m.roadIDs[road]
	return id, ok
}

// ClusterJunctions groups connections into junctions: a connection joins the
// first existing junction that already contains its entry or exit waypoint,
// otherwise it opens a new junction with a fresh id. Greedy single pass.
func (m *IDMapper) ClusterJunctions(connections []Connection) []*Junction {
	for _, connection := range connections {
		var junction *Junction
		for _, existing := range m.junctions {
			if existing.ContainsWaypoint(connection.Exit) || existing.ContainsWaypoint(connection.Entry) {
				junction = existing
				break
			}
		}
		if junction == nil {
			junction = &Junction{ID: JunctionID(m.nextID())}
			m.junctions = append(m.junctions, junction)
		}
		junction.AddConnection(connection)
	}
	return m.junctions
}

// Junctions returns the junctions clustered so far.
func (m *IDMapper) Junctions() []*Junction {
	return m.junctions
}

// RoutableGraph builds a contraction-hierarchies graph from mapped roads:
// one vertex per road endpoint topology node, one edge per road weighted by
// its centerline arc length.
func RoutableGraph(roads []*Road) (*ch.Graph, error) {
	graph := &ch.Graph{}
	for _, road := range roads {
		if len(road.Waypoints) < 2 {
			return nil, errors.Errorf("road %d has no bound endpoint waypoints", road.ID)
		}
		source := road.Waypoints[0].Node
		target := road.Waypoints[len(road.Waypoints)-1].Node
		if source == nil || target == nil {
			return nil, errors.Errorf("road %d has an endpoint waypoint without a topology node", road.ID)
		}
		if err := graph.CreateVertex(int64(source.ID)); err != nil {
			return nil, errors.Wrap(err, "Can't create source vertex")
		}
		if err := graph.CreateVertex(int64(target.ID)); err != nil {
			return nil, errors.Wrap(err, "Can't create target vertex")
		}
		if err := graph.AddEdge(int64(source.ID), int64(target.ID), road.Geometry.Length()); err != nil {
			return nil, errors.Wrap(err, "Can't add road edge")
		}
	}
	return graph, nil
}
