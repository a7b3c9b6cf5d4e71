package mesh

import (
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/router"
)

// wireNode connects the four mesh directions of n. The link n transmits on in
// direction d is the same object its neighbor receives on in d.Opposite().
func (m *Mesh) wireNode(n *Node) {
	x, y := n.Coord.X, n.Coord.Y

	for _, d := range noc.MeshDirections {
		tx := m.links.outbound(x, y, d)
		rx := m.links.inbound(x, y, d)

		wireHandshake(n.Router, d, tx, rx)
		wireBufferLevel(n.Router, d, tx, rx)
		wireNeighborStatus(n.Router, d, tx, rx)

		tx.From = n
		rx.To = n
	}
}

// wireHandshake binds the req/flit/ack triple. The router drives req and flit
// of tx and reads its ack; it reads req and flit of rx and drives its ack.
func wireHandshake(r *router.Router, d noc.Direction, tx, rx *Link) {
	r.Ports.Tx[d] = handshakePort(tx)
	r.Ports.Rx[d] = handshakePort(rx)
}

// wireBufferLevel binds the credit plane. The router publishes its own
// occupancy on tx and learns the neighbor's from rx.
func wireBufferLevel(r *router.Router, d noc.Direction, tx, rx *Link) {
	r.Ports.BufferLevel[d] = tx.BufferLevel
	r.Ports.BufferLevelNeighbor[d] = rx.BufferLevel
}

// wireNeighborStatus binds the NoP plane the same way as the credit plane.
func wireNeighborStatus(r *router.Router, d noc.Direction, tx, rx *Link) {
	r.Ports.NoPOut[d] = tx.NoP
	r.Ports.NoPIn[d] = rx.NoP
}

// wireLocal connects the router's local port to the processing element.
func wireLocal(n *Node) {
	n.Router.Ports.Tx[noc.Local] = handshakePort(n.toPE)
	n.PE.Rx = handshakePort(n.toPE)

	n.PE.Tx = handshakePort(n.toRouter)
	n.Router.Ports.Rx[noc.Local] = handshakePort(n.toRouter)

	n.toPE.From, n.toPE.To = n, n
	n.toRouter.From, n.toRouter.To = n, n
}

func handshakePort(l *Link) router.Port {
	return router.Port{Req: l.Req, Flit: l.Flit, Ack: l.Ack}
}
