package router

import (
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/signal"
)

// A Port is one side of a wormhole handshake. On a transmit port the router
// drives Req and Flit and reads Ack. On a receive port it reads Req and Flit
// and drives Ack.
type Port struct {
	Req  *signal.Signal[bool]
	Flit *signal.Signal[noc.Flit]
	Ack  *signal.Signal[bool]
}

// IsBound tells if all three lines are connected.
func (p Port) IsBound() bool {
	return p.Req != nil && p.Flit != nil && p.Ack != nil
}

// Ports holds every signal a router is connected to. The mesh assembler fills
// it; the router never creates signals itself.
type Ports struct {
	Rx [noc.NumPorts]Port
	Tx [noc.NumPorts]Port

	// BufferLevel carries the router's own input buffer occupancy toward
	// each neighbor. BufferLevelNeighbor carries the neighbor's occupancy
	// in.
	BufferLevel         [noc.NumDirections]*signal.Signal[int]
	BufferLevelNeighbor [noc.NumDirections]*signal.Signal[int]

	NoPOut [noc.NumDirections]*signal.Signal[noc.NoPData]
	NoPIn  [noc.NumDirections]*signal.Signal[noc.NoPData]
}
