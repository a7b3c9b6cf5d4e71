package mesh

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Graph returns the wired topology as a directed graph. Graph node ids are
// mesh node ids and there is one edge per link that has a node on both
// sides. Rim links and local links are left out.
func (m *Mesh) Graph() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()

	for _, n := range m.nodes {
		g.AddNode(simple.Node(n.ID()))
	}

	for _, l := range m.links.allLinks() {
		if l.IsBorder() {
			continue
		}

		g.SetEdge(g.NewEdge(simple.Node(l.From.ID()), simple.Node(l.To.ID())))
	}

	return g
}
