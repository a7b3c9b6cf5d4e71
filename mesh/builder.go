package mesh

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/noxmesh/config"
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/pe"
	"github.com/sarchlab/noxmesh/router"
	"github.com/sarchlab/noxmesh/signal"
	"github.com/sarchlab/noxmesh/tables"
)

// ErrTableLoad is returned when a table required by the configured policy
// cannot be loaded.
var ErrTableLoad = errors.New("cannot load table")

// RouterLogicFactory returns the behavior of the router of one node.
type RouterLogicFactory func(id noc.NodeID) router.Logic

// PELogicFactory returns the behavior of the processing element of one node.
type PELogicFactory func(id noc.NodeID) pe.Logic

// Builder can build meshes.
type Builder struct {
	engine      sim.Engine
	freq        sim.Freq
	cfg         config.Config
	reset       *signal.Signal[bool]
	routerLogic RouterLogicFactory
	peLogic     PELogicFactory
}

// MakeBuilder creates a builder with the default configuration and a 1 GHz
// clock.
func MakeBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
		cfg:  config.Default(),
	}
}

// WithEngine sets the engine that drives the simulation.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of every node.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithConfig sets the configuration of the mesh.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithReset sets the reset line shared by every node. If not given, the mesh
// creates one.
func (b Builder) WithReset(reset *signal.Signal[bool]) Builder {
	b.reset = reset
	return b
}

// WithRouterLogic sets how the behavior of each router is created.
func (b Builder) WithRouterLogic(f RouterLogicFactory) Builder {
	b.routerLogic = f
	return b
}

// WithPELogic sets how the behavior of each processing element is created.
func (b Builder) WithPELogic(f PELogicFactory) Builder {
	b.peLogic = f
	return b
}

// Build assembles the mesh. It fails without allocating any node if the
// configuration is invalid or a required table cannot be loaded.
func (b Builder) Build(name string) (*Mesh, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{
		name:  name,
		cfg:   b.cfg,
		reset: b.reset,
	}

	if err := m.loadTables(); err != nil {
		return nil, err
	}

	if m.reset == nil {
		m.reset = signal.New(name+".Reset", false)
		m.bank.Add(m.reset)
	}

	dimX, dimY := m.GetSize()
	m.nodes = make([]*Node, dimX*dimY)
	m.links = newLinkGrid(name, dimX, dimY)

	for x := 0; x < dimX; x++ {
		for y := 0; y < dimY; y++ {
			b.buildNode(m, x, y)
		}
	}

	for _, n := range m.nodes {
		m.wireNode(n)
		wireLocal(n)
	}

	m.resolveBoundary()
	m.registerSignals()

	Trace("Mesh",
		"Behavior", "Build",
		"Name", name,
		"DimX", dimX,
		"DimY", dimY,
		"Signals", m.bank.Len(),
	)

	return m, nil
}

func (m *Mesh) loadTables() error {
	var err error

	if m.cfg.NeedsRoutingTable() {
		path := m.cfg.RoutingTableFilename

		m.routingTable, err = tables.LoadRoutingTable(path)
		if err == nil {
			err = m.routingTable.Validate(m.cfg.NumNodes())
		}

		if err != nil {
			return errors.Wrapf(ErrTableLoad, "routing table %q: %v", path, err)
		}

		Trace("Mesh",
			"Behavior", "LoadRoutingTable",
			"File", path,
			"Entries", m.routingTable.Size(),
		)
	}

	if m.cfg.NeedsTrafficTable() {
		path := m.cfg.TrafficTableFilename

		m.trafficTable, err = tables.LoadTrafficTable(path, m.cfg.TrafficDefaults())
		if err == nil {
			err = m.trafficTable.Validate(m.cfg.NumNodes())
		}

		if err != nil {
			return errors.Wrapf(ErrTableLoad, "traffic table %q: %v", path, err)
		}

		Trace("Mesh",
			"Behavior", "LoadTrafficTable",
			"File", path,
			"Entries", m.trafficTable.Size(),
		)
	}

	return nil
}

func (b Builder) buildNode(m *Mesh, x, y int) {
	coord := noc.Coordinate{X: x, Y: y}
	id := noc.IDOf(coord, m.cfg.MeshDimX)
	nodeName := fmt.Sprintf("%s.Tile[%d][%d]", m.name, x, y)

	rb := router.MakeBuilder()
	if b.routerLogic != nil {
		rb = rb.WithLogic(b.routerLogic(id))
	}

	pb := pe.MakeBuilder()
	if b.peLogic != nil {
		pb = pb.WithLogic(b.peLogic(id))
	}

	n := &Node{
		Coord:    coord,
		Router:   rb.Build(nodeName + ".Router"),
		PE:       pb.Build(nodeName + ".PE"),
		reset:    m.reset,
		toPE:     newLink(nodeName + ".LocalToPE"),
		toRouter: newLink(nodeName + ".LocalToRouter"),
	}
	n.TickingComponent = sim.NewTickingComponent(nodeName, b.engine, b.freq, n)

	n.Router.Configure(id, m.cfg.StatsWarmUpTime, m.cfg.BufferDepth,
		m.routingTable)

	n.PE.ID = id
	n.PE.TrafficTable = m.trafficTable
	n.PE.SourceOccurrences = m.trafficTable.OccurrencesAsSource(id)

	m.nodes[id] = n

	Trace("Mesh",
		"Behavior", "CreateNode",
		"Name", nodeName,
		"ID", int(id),
		"X", x,
		"Y", y,
	)
}

func (m *Mesh) registerSignals() {
	for _, l := range m.links.allLinks() {
		m.bank.Add(l.signals()...)
	}

	for _, n := range m.nodes {
		for _, l := range n.localLinks() {
			m.bank.Add(l.signals()...)
		}
	}
}
