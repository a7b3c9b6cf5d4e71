// Package pe provides the processing element of a mesh node, the traffic
// source and sink attached to the router's local port.
package pe

import (
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/router"
	"github.com/sarchlab/noxmesh/tables"
)

// Logic is the traffic behavior of a processing element, evaluated once per
// clock edge.
type Logic interface {
	Tick(p *ProcessingElement) (madeProgress bool)
	Reset(p *ProcessingElement)
}

// ProcessingElement injects flits into its router and consumes the flits
// that reach it.
type ProcessingElement struct {
	name string

	ID noc.NodeID

	// TrafficTable is shared by every processing element. It is nil when
	// traffic is not table based.
	TrafficTable *tables.TrafficTable

	// SourceOccurrences is how many traffic table entries have this node as
	// source, computed once at assembly.
	SourceOccurrences int

	// Tx drives flits to the router's local receive port. Rx takes flits
	// from the router's local transmit port.
	Tx router.Port
	Rx router.Port

	logic Logic
}

// Name returns the name of the processing element.
func (p *ProcessingElement) Name() string {
	return p.name
}

// Tick evaluates the traffic logic for one clock edge.
func (p *ProcessingElement) Tick() bool {
	if p.logic == nil {
		return false
	}

	return p.logic.Tick(p)
}

// Reset resets the traffic logic.
func (p *ProcessingElement) Reset() {
	if p.logic != nil {
		p.logic.Reset(p)
	}
}

// Builder can create new processing elements.
type Builder struct {
	logic Logic
}

// MakeBuilder creates a builder for processing elements without logic.
func MakeBuilder() Builder {
	return Builder{}
}

// WithLogic sets the traffic behavior.
func (b Builder) WithLogic(logic Logic) Builder {
	b.logic = logic
	return b
}

// Build creates a processing element.
func (b Builder) Build(name string) *ProcessingElement {
	return &ProcessingElement{
		name:  name,
		logic: b.logic,
	}
}
