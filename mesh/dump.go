package mesh

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Dump renders the mesh as a grid of node ids. Each cell also lists the
// directions whose reservation table entries are invalid.
func (m *Mesh) Dump() string {
	dimX, dimY := m.GetSize()

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s (%dx%d, %s routing, %s traffic)",
		m.name, dimX, dimY,
		m.cfg.RoutingAlgorithm, m.cfg.TrafficDistribution))

	header := table.Row{"Y\\X"}
	for x := 0; x < dimX; x++ {
		header = append(header, x)
	}
	t.AppendHeader(header)

	for y := 0; y < dimY; y++ {
		row := table.Row{y}
		for x := 0; x < dimX; x++ {
			row = append(row, describeNode(m.Node(x, y)))
		}
		t.AppendRow(row)
	}

	return t.Render()
}

func describeNode(n *Node) string {
	var invalid []string
	for _, d := range n.Router.ReservationTable.InvalidDirections() {
		invalid = append(invalid, d.Name()[:1])
	}

	desc := fmt.Sprintf("%d", n.ID())
	if len(invalid) > 0 {
		desc += " -" + strings.Join(invalid, "")
	}

	if n.PE.SourceOccurrences > 0 {
		desc += fmt.Sprintf(" src:%d", n.PE.SourceOccurrences)
	}

	return desc
}
