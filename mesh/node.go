package mesh

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/pe"
	"github.com/sarchlab/noxmesh/router"
	"github.com/sarchlab/noxmesh/signal"
)

// A Node is one tile of the mesh. It ticks on the shared clock and evaluates
// its router and processing element on every edge.
type Node struct {
	*sim.TickingComponent

	Coord  noc.Coordinate
	Router *router.Router
	PE     *pe.ProcessingElement

	reset *signal.Signal[bool]

	// toPE and toRouter connect the router's local port to the PE.
	toPE     *Link
	toRouter *Link
}

// ID returns the id the node's router was configured with.
func (n *Node) ID() noc.NodeID {
	return n.Router.LocalID()
}

func (n *Node) String() string {
	return fmt.Sprintf("Node %d %s", n.ID(), n.Coord)
}

// ResetSignal returns the shared reset line the node listens to.
func (n *Node) ResetSignal() *signal.Signal[bool] {
	return n.reset
}

// Tick evaluates the node for one clock edge. While reset is asserted the
// node only resets its parts.
func (n *Node) Tick() (madeProgress bool) {
	if n.reset.Read() {
		n.Router.Reset()
		n.PE.Reset()

		return false
	}

	madeProgress = n.Router.Tick() || madeProgress
	madeProgress = n.PE.Tick() || madeProgress

	return madeProgress
}

// localLinks returns the links between the router and the PE.
func (n *Node) localLinks() []*Link {
	return []*Link{n.toPE, n.toRouter}
}
