package mesh

import "github.com/sarchlab/noxmesh/noc"

// resolveBoundary neutralizes the rim links and invalidates the reservation
// table entries that point off the mesh. It must run after wiring.
func (m *Mesh) resolveBoundary() {
	rim := m.links.rimLinks()
	for _, l := range rim {
		l.neutralize()
	}

	for _, side := range noc.MeshDirections {
		for _, n := range m.RimNodes(side) {
			n.Router.ReservationTable.Invalidate(side)
		}
	}

	Trace("Mesh",
		"Behavior", "ResolveBoundary",
		"Name", m.name,
		"RimLinks", len(rim),
	)
}
