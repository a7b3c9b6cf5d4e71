// Package router provides the switching element of a mesh node.
//
// A Router only holds its configuration, its port bindings, and its
// reservation table. Routing and switch allocation are supplied from outside
// through Logic.
package router

import (
	"fmt"

	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/tables"
)

// Logic is the behavior of a router, evaluated once per clock edge.
type Logic interface {
	Tick(r *Router) (madeProgress bool)
	Reset(r *Router)
}

// Router is the switch of one mesh node.
type Router struct {
	name string

	localID      noc.NodeID
	warmUpTime   int
	bufferDepth  int
	routingTable *tables.RoutingTable
	configured   bool

	Ports            Ports
	ReservationTable *ReservationTable

	logic Logic
}

// Name returns the name of the router.
func (r *Router) Name() string {
	return r.name
}

// Configure sets the identity of the router. The routing table is kept by
// reference and may be nil when routing is not table based.
func (r *Router) Configure(
	id noc.NodeID,
	warmUpTime int,
	bufferDepth int,
	routingTable *tables.RoutingTable,
) {
	if r.configured {
		panic(fmt.Sprintf("router %s configured twice", r.name))
	}

	r.localID = id
	r.warmUpTime = warmUpTime
	r.bufferDepth = bufferDepth
	r.routingTable = routingTable
	r.configured = true
}

// IsConfigured tells if Configure has been called.
func (r *Router) IsConfigured() bool {
	return r.configured
}

// LocalID returns the id of the node the router belongs to.
func (r *Router) LocalID() noc.NodeID {
	return r.localID
}

// WarmUpTime returns the number of cycles before statistics are collected.
func (r *Router) WarmUpTime() int {
	return r.warmUpTime
}

// BufferDepth returns the capacity of each input buffer, in flits.
func (r *Router) BufferDepth() int {
	return r.bufferDepth
}

// RoutingTable returns the shared routing table.
func (r *Router) RoutingTable() *tables.RoutingTable {
	return r.routingTable
}

// Tick evaluates the router logic for one clock edge.
func (r *Router) Tick() bool {
	if r.logic == nil {
		return false
	}

	return r.logic.Tick(r)
}

// Reset releases every reservation and resets the router logic.
func (r *Router) Reset() {
	r.ReservationTable.Clear()

	if r.logic != nil {
		r.logic.Reset(r)
	}
}
