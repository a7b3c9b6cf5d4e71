package mesh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/noxmesh/mesh"
	"github.com/sarchlab/noxmesh/noc"
)

func missingDirections(n *mesh.Node, dimX, dimY int) []noc.Direction {
	var missing []noc.Direction
	for _, d := range noc.MeshDirections {
		if !n.Coord.Neighbor(d).InMesh(dimX, dimY) {
			missing = append(missing, d)
		}
	}

	return missing
}

var _ = Describe("Boundary", func() {
	DescribeTable("should neutralize every rim link",
		func(dimX, dimY int) {
			m := buildMesh(meshConfig(dimX, dimY))

			border := m.BorderLinks()
			Expect(border).To(HaveLen(4 * (dimX + dimY)))

			for _, l := range border {
				Expect(l.IsBorder()).To(BeTrue(), l.Name())
				Expect(l.Req.Read()).To(BeFalse())
				Expect(l.Ack.Read()).To(BeFalse())
				Expect(l.BufferLevel.Read()).To(Equal(noc.NotValid))
				Expect(l.NoP.Read()).To(Equal(noc.DummyNoPData()))
			}
		},
		Entry("1x1", 1, 1),
		Entry("3x2", 3, 2),
		Entry("2x5", 2, 5),
	)

	It("should neutralize the links a rim node drives off the mesh", func() {
		m := buildMesh(meshConfig(3, 2))
		corner := m.Node(2, 1)

		Expect(corner.Router.Ports.BufferLevel[noc.East].Read()).
			To(Equal(noc.NotValid))
		Expect(corner.Router.Ports.BufferLevelNeighbor[noc.South].Read()).
			To(Equal(noc.NotValid))
		Expect(corner.Router.Ports.NoPIn[noc.East].Read().IsValid()).
			To(BeFalse())
		Expect(corner.Router.Ports.Tx[noc.South].Ack.Read()).To(BeFalse())
	})

	It("should leave interior links alone", func() {
		m := buildMesh(meshConfig(3, 3))
		l := m.OutboundLink(noc.Coordinate{X: 1, Y: 1}, noc.North)

		Expect(l.BufferLevel.Read()).To(Equal(0))
		Expect(l.NoP.Read()).To(Equal(noc.NoPData{}))
	})

	DescribeTable("should invalidate exactly the missing directions",
		func(dimX, dimY int) {
			m := buildMesh(meshConfig(dimX, dimY))

			for _, n := range m.Nodes() {
				missing := missingDirections(n, dimX, dimY)
				rt := n.Router.ReservationTable

				Expect(rt.InvalidDirections()).To(Equal(missing), n.String())
				Expect(rt.IsValid(noc.Local)).To(BeTrue())
			}
		},
		Entry("1x1", 1, 1),
		Entry("3x2", 3, 2),
		Entry("1x4", 1, 4),
		Entry("4x4", 4, 4),
	)

	It("should invalidate north and west of the top-left corner", func() {
		m := buildMesh(meshConfig(3, 2))
		rt := m.Node(0, 0).Router.ReservationTable

		Expect(rt.InvalidDirections()).
			To(Equal([]noc.Direction{noc.North, noc.West}))
		Expect(rt.IsAvailable(noc.East)).To(BeTrue())
		Expect(rt.IsAvailable(noc.South)).To(BeTrue())
	})

	It("should list the nodes of each side", func() {
		m := buildMesh(meshConfig(3, 2))

		ids := func(nodes []*mesh.Node) []noc.NodeID {
			out := make([]noc.NodeID, 0, len(nodes))
			for _, n := range nodes {
				out = append(out, n.ID())
			}
			return out
		}

		Expect(ids(m.RimNodes(noc.North))).To(Equal([]noc.NodeID{0, 1, 2}))
		Expect(ids(m.RimNodes(noc.South))).To(Equal([]noc.NodeID{3, 4, 5}))
		Expect(ids(m.RimNodes(noc.West))).To(Equal([]noc.NodeID{0, 3}))
		Expect(ids(m.RimNodes(noc.East))).To(Equal([]noc.NodeID{2, 5}))
		Expect(func() { m.RimNodes(noc.Local) }).To(Panic())
	})
})
