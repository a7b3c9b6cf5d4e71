package mesh

import (
	"fmt"

	"github.com/sarchlab/noxmesh/noc"
	"github.com/sarchlab/noxmesh/signal"
)

// A Link is everything one node drives toward an adjacent node, plus the
// acknowledge that node drives back. The sender writes Req, Flit,
// BufferLevel and NoP; the receiver writes Ack.
type Link struct {
	name string

	Req  *signal.Signal[bool]
	Flit *signal.Signal[noc.Flit]
	Ack  *signal.Signal[bool]

	// BufferLevel is the sender's own input buffer occupancy, which the
	// receiver uses as credit when sending back.
	BufferLevel *signal.Signal[int]

	NoP *signal.Signal[noc.NoPData]

	// From and To are nil on the side of a rim link that has no node.
	From *Node
	To   *Node
}

func newLink(name string) *Link {
	return &Link{
		name:        name,
		Req:         signal.New(name+".Req", false),
		Flit:        signal.New(name+".Flit", noc.Flit{}),
		Ack:         signal.New(name+".Ack", false),
		BufferLevel: signal.New(name+".BufferLevel", 0),
		NoP:         signal.New(name+".NoP", noc.NoPData{}),
	}
}

// Name returns the name of the link.
func (l *Link) Name() string {
	return l.name
}

// IsBorder tells if one end of the link has no node.
func (l *Link) IsBorder() bool {
	return l.From == nil || l.To == nil
}

func (l *Link) String() string {
	return l.name
}

func (l *Link) signals() []signal.Committer {
	return []signal.Committer{l.Req, l.Flit, l.Ack, l.BufferLevel, l.NoP}
}

// neutralize drives the values of a link that has no partner.
func (l *Link) neutralize() {
	l.Req.Force(false)
	l.Ack.Force(false)
	l.BufferLevel.Force(noc.NotValid)
	l.NoP.Force(noc.DummyNoPData())
}

// horizontalSlot sits on the west edge of column x. It carries one link each
// way between columns x-1 and x.
type horizontalSlot struct {
	toEast *Link
	toWest *Link
}

// verticalSlot sits on the north edge of row y. It carries one link each way
// between rows y-1 and y.
type verticalSlot struct {
	toNorth *Link
	toSouth *Link
}

// linkGrid holds (dimX+1)*dimY horizontal slots and dimX*(dimY+1) vertical
// slots, so that the rim has slots with no node on the outer side.
type linkGrid struct {
	dimX, dimY int
	horizontal []horizontalSlot
	vertical   []verticalSlot
}

func newLinkGrid(name string, dimX, dimY int) *linkGrid {
	g := &linkGrid{
		dimX:       dimX,
		dimY:       dimY,
		horizontal: make([]horizontalSlot, (dimX+1)*dimY),
		vertical:   make([]verticalSlot, dimX*(dimY+1)),
	}

	for x := 0; x <= dimX; x++ {
		for y := 0; y < dimY; y++ {
			s := g.horizontalAt(x, y)
			prefix := fmt.Sprintf("%s.HLink[%d][%d]", name, x, y)
			s.toEast = newLink(prefix + ".ToEast")
			s.toWest = newLink(prefix + ".ToWest")
		}
	}

	for x := 0; x < dimX; x++ {
		for y := 0; y <= dimY; y++ {
			s := g.verticalAt(x, y)
			prefix := fmt.Sprintf("%s.VLink[%d][%d]", name, x, y)
			s.toNorth = newLink(prefix + ".ToNorth")
			s.toSouth = newLink(prefix + ".ToSouth")
		}
	}

	return g
}

func (g *linkGrid) horizontalAt(x, y int) *horizontalSlot {
	return &g.horizontal[x*g.dimY+y]
}

func (g *linkGrid) verticalAt(x, y int) *verticalSlot {
	return &g.vertical[x*(g.dimY+1)+y]
}

// outbound returns the link that the node at (x, y) drives in direction d.
func (g *linkGrid) outbound(x, y int, d noc.Direction) *Link {
	switch d {
	case noc.North:
		return g.verticalAt(x, y).toNorth
	case noc.East:
		return g.horizontalAt(x+1, y).toEast
	case noc.South:
		return g.verticalAt(x, y+1).toSouth
	case noc.West:
		return g.horizontalAt(x, y).toWest
	default:
		panic("invalid direction")
	}
}

// inbound returns the link that reaches the node at (x, y) from direction d.
func (g *linkGrid) inbound(x, y int, d noc.Direction) *Link {
	switch d {
	case noc.North:
		return g.verticalAt(x, y).toSouth
	case noc.East:
		return g.horizontalAt(x+1, y).toWest
	case noc.South:
		return g.verticalAt(x, y+1).toNorth
	case noc.West:
		return g.horizontalAt(x, y).toEast
	default:
		panic("invalid direction")
	}
}

// rimLinks returns both links of every slot on the rim, west and east
// columns first, then north and south rows.
func (g *linkGrid) rimLinks() []*Link {
	links := make([]*Link, 0, 4*(g.dimX+g.dimY))

	for y := 0; y < g.dimY; y++ {
		for _, x := range []int{0, g.dimX} {
			s := g.horizontalAt(x, y)
			links = append(links, s.toEast, s.toWest)
		}
	}

	for x := 0; x < g.dimX; x++ {
		for _, y := range []int{0, g.dimY} {
			s := g.verticalAt(x, y)
			links = append(links, s.toNorth, s.toSouth)
		}
	}

	return links
}

func (g *linkGrid) allLinks() []*Link {
	links := make([]*Link, 0, 2*(len(g.horizontal)+len(g.vertical)))
	for _, s := range g.horizontal {
		links = append(links, s.toEast, s.toWest)
	}

	for _, s := range g.vertical {
		links = append(links, s.toNorth, s.toSouth)
	}

	return links
}
