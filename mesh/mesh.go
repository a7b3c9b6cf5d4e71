// Package mesh assembles a two-dimensional mesh network-on-chip.
//
// The assembler creates a grid of nodes, wires every pair of neighbors with
// handshake, buffer level and neighbor status signals, and resolves the rim
// where there is no neighbor. After Build returns, the mesh only hands out
// references; the simulation kernel owns all further execution.
package mesh

import (
	"github.com/sarchlab/noxmesh/config"
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/signal"
	"github.com/sarchlab/noxmesh/tables"
)

// Mesh is an assembled grid of nodes. Nodes can be retrieved with
// m.Node(x, y).
type Mesh struct {
	name string
	cfg  config.Config

	nodes []*Node
	links *linkGrid

	routingTable *tables.RoutingTable
	trafficTable *tables.TrafficTable

	reset *signal.Signal[bool]
	bank  signal.Bank
}

// Name returns the name of the mesh.
func (m *Mesh) Name() string {
	return m.name
}

// Config returns the configuration the mesh was built with.
func (m *Mesh) Config() config.Config {
	return m.cfg
}

// GetSize returns the width and height of the mesh.
func (m *Mesh) GetSize() (dimX, dimY int) {
	return m.cfg.MeshDimX, m.cfg.MeshDimY
}

// NumNodes returns the number of nodes.
func (m *Mesh) NumNodes() int {
	return len(m.nodes)
}

// Node returns the node at (x, y).
func (m *Mesh) Node(x, y int) *Node {
	c := noc.Coordinate{X: x, Y: y}
	m.mustContain(c)

	return m.nodes[noc.IDOf(c, m.cfg.MeshDimX)]
}

func (m *Mesh) mustContain(c noc.Coordinate) {
	if !c.InMesh(m.cfg.MeshDimX, m.cfg.MeshDimY) {
		panic("coordinate " + c.String() + " is outside the mesh")
	}
}

// Nodes returns every node, ordered by id.
func (m *Mesh) Nodes() []*Node {
	return append([]*Node(nil), m.nodes...)
}

// FindNode returns the node whose router was configured with id. The bool is
// false if there is no such node. It scans all nodes and is not meant for the
// simulation hot path.
func (m *Mesh) FindNode(id noc.NodeID) (*Node, bool) {
	for _, n := range m.nodes {
		if n.Router.LocalID() == id {
			return n, true
		}
	}

	return nil, false
}

// RoutingTable returns the shared routing table, nil unless routing is table
// based.
func (m *Mesh) RoutingTable() *tables.RoutingTable {
	return m.routingTable
}

// TrafficTable returns the shared traffic table, nil unless traffic is table
// based.
func (m *Mesh) TrafficTable() *tables.TrafficTable {
	return m.trafficTable
}

// ResetSignal returns the reset line shared by every node.
func (m *Mesh) ResetSignal() *signal.Signal[bool] {
	return m.reset
}

// Signals returns the bank of every signal created by the mesh. The kernel
// commits it at the end of each clock edge.
func (m *Mesh) Signals() *signal.Bank {
	return &m.bank
}

// OutboundLink returns the link the node at c drives in direction d.
func (m *Mesh) OutboundLink(c noc.Coordinate, d noc.Direction) *Link {
	if d == noc.Local {
		return m.Node(c.X, c.Y).toPE
	}

	m.mustContain(c)

	return m.links.outbound(c.X, c.Y, d)
}

// InboundLink returns the link that reaches the node at c from direction d.
func (m *Mesh) InboundLink(c noc.Coordinate, d noc.Direction) *Link {
	if d == noc.Local {
		return m.Node(c.X, c.Y).toRouter
	}

	m.mustContain(c)

	return m.links.inbound(c.X, c.Y, d)
}

// BorderLinks returns every link with a node on one side only.
func (m *Mesh) BorderLinks() []*Link {
	return m.links.rimLinks()
}

// RimNodes returns the nodes along the given side of the mesh, in increasing
// coordinate order.
func (m *Mesh) RimNodes(side noc.Direction) []*Node {
	dimX, dimY := m.GetSize()
	nodes := make([]*Node, 0)

	switch side {
	case noc.North:
		for x := 0; x < dimX; x++ {
			nodes = append(nodes, m.Node(x, 0))
		}
	case noc.West:
		for y := 0; y < dimY; y++ {
			nodes = append(nodes, m.Node(0, y))
		}
	case noc.South:
		for x := 0; x < dimX; x++ {
			nodes = append(nodes, m.Node(x, dimY-1))
		}
	case noc.East:
		for y := 0; y < dimY; y++ {
			nodes = append(nodes, m.Node(dimX-1, y))
		}
	default:
		panic("invalid side")
	}

	return nodes
}
