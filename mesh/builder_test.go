package mesh_test

import (
	"errors"
	"math"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/noxmesh/config"
	"github.com/sarchlab/noxmesh/mesh"
	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/signal"
)

func meshConfig(dimX, dimY int) config.Config {
	cfg := config.Default()
	cfg.MeshDimX = dimX
	cfg.MeshDimY = dimY

	return cfg
}

func buildMesh(cfg config.Config) *mesh.Mesh {
	m, err := mesh.MakeBuilder().
		WithEngine(sim.NewSerialEngine()).
		WithFreq(1 * sim.GHz).
		WithConfig(cfg).
		Build("Mesh")
	Expect(err).NotTo(HaveOccurred())

	return m
}

var _ = Describe("Builder", func() {
	DescribeTable("should create one node per coordinate with distinct ids",
		func(dimX, dimY int) {
			m := buildMesh(meshConfig(dimX, dimY))

			Expect(m.NumNodes()).To(Equal(dimX * dimY))

			ids := map[noc.NodeID]bool{}
			for _, n := range m.Nodes() {
				id := n.ID()
				Expect(ids).NotTo(HaveKey(id))
				ids[id] = true

				Expect(id).To(BeNumerically(">=", 0))
				Expect(int(id)).To(BeNumerically("<", dimX*dimY))
				Expect(n.PE.ID).To(Equal(id))
				Expect(noc.CoordOf(id, dimX)).To(Equal(n.Coord))
			}
			Expect(ids).To(HaveLen(dimX * dimY))
		},
		Entry("1x1", 1, 1),
		Entry("3x2", 3, 2),
		Entry("1x5", 1, 5),
		Entry("4x4", 4, 4),
	)

	It("should number a 3x2 mesh row by row", func() {
		m := buildMesh(meshConfig(3, 2))

		Expect(m.Node(2, 1).ID()).To(Equal(noc.NodeID(5)))
		Expect(m.Node(0, 1).ID()).To(Equal(noc.NodeID(3)))
		Expect(m.Node(2, 0).ID()).To(Equal(noc.NodeID(2)))
	})

	It("should configure every router from the configuration", func() {
		cfg := meshConfig(2, 2)
		cfg.StatsWarmUpTime = 250
		cfg.BufferDepth = 6
		m := buildMesh(cfg)

		for _, n := range m.Nodes() {
			Expect(n.Router.IsConfigured()).To(BeTrue())
			Expect(n.Router.WarmUpTime()).To(Equal(250))
			Expect(n.Router.BufferDepth()).To(Equal(6))
			Expect(n.Router.RoutingTable()).To(BeNil())
			Expect(n.PE.TrafficTable).To(BeNil())
			Expect(n.PE.SourceOccurrences).To(Equal(0))
		}
	})

	It("should give every node the same reset line", func() {
		reset := signal.New("Reset", false)
		m, err := mesh.MakeBuilder().
			WithConfig(meshConfig(3, 3)).
			WithReset(reset).
			Build("Mesh")
		Expect(err).NotTo(HaveOccurred())

		Expect(m.ResetSignal()).To(BeIdenticalTo(reset))
		for _, n := range m.Nodes() {
			Expect(n.ResetSignal()).To(BeIdenticalTo(reset))
		}
	})

	It("should create a reset line when none is given", func() {
		m := buildMesh(meshConfig(2, 1))

		Expect(m.ResetSignal()).NotTo(BeNil())
		Expect(m.ResetSignal().Read()).To(BeFalse())
	})

	It("should register every signal in the bank", func() {
		m := buildMesh(meshConfig(3, 2))

		links := 2*((3+1)*2+3*(2+1)) + 2*6
		Expect(m.Signals().Len()).To(Equal(5*links + 1))
	})

	It("should build the same mesh twice from the same input", func() {
		a := buildMesh(meshConfig(3, 2))
		b := buildMesh(meshConfig(3, 2))

		Expect(a.Dump()).To(Equal(b.Dump()))
	})

	DescribeTable("should reject invalid dimensions",
		func(dimX, dimY int) {
			m, err := mesh.MakeBuilder().
				WithConfig(meshConfig(dimX, dimY)).
				Build("Mesh")

			Expect(m).To(BeNil())
			Expect(errors.Is(err, config.ErrInvalidDimension)).To(BeTrue())
		},
		Entry("zero width", 0, 2),
		Entry("zero height", 2, 0),
		Entry("negative", -3, -3),
		Entry("too many nodes", 1<<62, 2),
		Entry("too many link slots", math.MaxInt/2, 1),
	)

	Context("with table based policies", func() {
		It("should share one routing table among all routers", func() {
			cfg := meshConfig(2, 2)
			cfg.RoutingAlgorithm = config.RoutingTableBased
			cfg.RoutingTableFilename = writeFile("rt.txt",
				"0 1->0 3 0->1\n1 0->1 3 1->3\n")

			m := buildMesh(cfg)

			Expect(m.RoutingTable()).NotTo(BeNil())
			for _, n := range m.Nodes() {
				Expect(n.Router.RoutingTable()).To(BeIdenticalTo(m.RoutingTable()))
			}
		})

		It("should abort on a missing routing table", func() {
			cfg := meshConfig(3, 2)
			cfg.RoutingAlgorithm = config.RoutingTableBased
			cfg.RoutingTableFilename = filepath.Join(
				GinkgoT().TempDir(), "absent.txt")

			m, err := mesh.MakeBuilder().WithConfig(cfg).Build("Mesh")

			Expect(m).To(BeNil())
			Expect(errors.Is(err, mesh.ErrTableLoad)).To(BeTrue())
		})

		It("should abort on a routing table naming nodes outside the mesh", func() {
			cfg := meshConfig(2, 2)
			cfg.RoutingAlgorithm = config.RoutingTableBased
			cfg.RoutingTableFilename = writeFile("rt.txt", "0 1->0 9 0->1\n")

			_, err := mesh.MakeBuilder().WithConfig(cfg).Build("Mesh")

			Expect(errors.Is(err, mesh.ErrTableLoad)).To(BeTrue())
		})

		It("should ignore the routing table file when not table based", func() {
			cfg := meshConfig(2, 2)
			cfg.RoutingTableFilename = filepath.Join(
				GinkgoT().TempDir(), "absent.txt")

			m := buildMesh(cfg)
			Expect(m.RoutingTable()).To(BeNil())
		})

		It("should share the traffic table and count sources", func() {
			cfg := meshConfig(3, 2)
			cfg.TrafficDistribution = config.TrafficTableBased
			cfg.TrafficTableFilename = writeFile("tt.txt",
				"0 5\n0 4 0.2\n5 0\n")

			m := buildMesh(cfg)

			Expect(m.TrafficTable()).NotTo(BeNil())
			for _, n := range m.Nodes() {
				Expect(n.PE.TrafficTable).To(BeIdenticalTo(m.TrafficTable()))
			}

			n, ok := m.FindNode(0)
			Expect(ok).To(BeTrue())
			Expect(n.PE.SourceOccurrences).To(Equal(2))

			n, _ = m.FindNode(5)
			Expect(n.PE.SourceOccurrences).To(Equal(1))

			n, _ = m.FindNode(3)
			Expect(n.PE.SourceOccurrences).To(Equal(0))
		})

		It("should abort on a missing traffic table", func() {
			cfg := meshConfig(3, 2)
			cfg.TrafficDistribution = config.TrafficTableBased
			cfg.TrafficTableFilename = ""

			_, err := mesh.MakeBuilder().WithConfig(cfg).Build("Mesh")

			Expect(errors.Is(err, mesh.ErrTableLoad)).To(BeTrue())
		})
	})
})

var _ = Describe("FindNode", func() {
	var m *mesh.Mesh

	BeforeEach(func() {
		m = buildMesh(meshConfig(3, 2))
	})

	It("should find every known id", func() {
		for id := noc.NodeID(0); id < 6; id++ {
			n, ok := m.FindNode(id)
			Expect(ok).To(BeTrue())
			Expect(n.ID()).To(Equal(id))
			Expect(n).To(BeIdenticalTo(m.Node(n.Coord.X, n.Coord.Y)))
		}
	})

	It("should report ids outside the mesh as not found", func() {
		for _, id := range []noc.NodeID{-1, 6, 100} {
			n, ok := m.FindNode(id)
			Expect(ok).To(BeFalse())
			Expect(n).To(BeNil())
		}
	})

	It("should panic on coordinates outside the mesh", func() {
		Expect(func() { m.Node(3, 0) }).To(Panic())
		Expect(func() { m.Node(0, -1) }).To(Panic())
	})
})
