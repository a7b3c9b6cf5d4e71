package tables

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sarchlab/noxmesh/noc"
	"gopkg.in/yaml.v3"
)

// LinkID names a link by the ids of the nodes at its two ends.
type LinkID struct {
	Src noc.NodeID
	Dst noc.NodeID
}

func (l LinkID) String() string {
	return fmt.Sprintf("%d->%d", l.Src, l.Dst)
}

type routeKey struct {
	node noc.NodeID
	in   LinkID
	dst  noc.NodeID
}

// RoutingTable lists, for a node, the packet's input link and its final
// destination, the output links a packet may take.
type RoutingTable struct {
	routes map[routeKey][]LinkID
	nodes  map[noc.NodeID]struct{}
}

func newRoutingTable() *RoutingTable {
	return &RoutingTable{
		routes: make(map[routeKey][]LinkID),
		nodes:  make(map[noc.NodeID]struct{}),
	}
}

func (t *RoutingTable) add(node noc.NodeID, in LinkID, dst noc.NodeID, out LinkID) {
	key := routeKey{node: node, in: in, dst: dst}
	for _, l := range t.routes[key] {
		if l == out {
			return
		}
	}

	t.routes[key] = append(t.routes[key], out)
	t.nodes[node] = struct{}{}
}

// AdmissibleOutputs returns the output links that node may use for a packet
// that arrived on in and travels to dst. The bool is false if the table has
// no entry.
func (t *RoutingTable) AdmissibleOutputs(
	node noc.NodeID,
	in LinkID,
	dst noc.NodeID,
) ([]LinkID, bool) {
	outs, ok := t.routes[routeKey{node: node, in: in, dst: dst}]
	if !ok {
		return nil, false
	}

	return append([]LinkID(nil), outs...), true
}

// Size returns the number of (node, input link, destination) entries.
func (t *RoutingTable) Size() int {
	return len(t.routes)
}

// Nodes returns the nodes that have entries, in ascending order.
func (t *RoutingTable) Nodes() []noc.NodeID {
	nodes := make([]noc.NodeID, 0, len(t.nodes))
	for n := range t.nodes {
		nodes = append(nodes, n)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}

// Validate checks that every node id in the table is below numNodes.
func (t *RoutingTable) Validate(numNodes int) error {
	check := func(id noc.NodeID) error {
		if id < 0 || int(id) >= numNodes {
			return errors.Wrapf(ErrNodeOutOfRange,
				"routing table names node %d, mesh has %d nodes", id, numNodes)
		}
		return nil
	}

	for key, outs := range t.routes {
		ids := []noc.NodeID{key.node, key.in.Src, key.in.Dst, key.dst}
		for _, o := range outs {
			ids = append(ids, o.Src, o.Dst)
		}

		for _, id := range ids {
			if err := check(id); err != nil {
				return err
			}
		}
	}

	return nil
}

// LoadRoutingTable reads a routing table. Each line of the text format is
//
//	<node> <in_src>-><in_dst> <dst> <out_src>-><out_dst>[,<out_src>-><out_dst>...]
//
// Lines starting with % are comments. Files with a .yaml or .yml extension
// are read as a list of routingEntry.
func LoadRoutingTable(path string) (*RoutingTable, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if isYAML(path) {
		return parseRoutingYAML(path, data)
	}

	return parseRoutingText(path, data)
}

func parseRoutingText(path string, data []byte) (*RoutingTable, error) {
	t := newRoutingTable()
	lines, numbers := contentLines(data)

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, malformed(path, numbers[i],
				"expect node, input link, destination and output links")
		}

		node, err := parseNodeID(fields[0])
		if err != nil {
			return nil, malformed(path, numbers[i], "node: %v", err)
		}

		in, err := parseLinkID(fields[1])
		if err != nil {
			return nil, malformed(path, numbers[i], "input link: %v", err)
		}

		dst, err := parseNodeID(fields[2])
		if err != nil {
			return nil, malformed(path, numbers[i], "destination: %v", err)
		}

		outs := strings.Split(strings.Join(fields[3:], ""), ",")
		for _, o := range outs {
			out, err := parseLinkID(o)
			if err != nil {
				return nil, malformed(path, numbers[i], "output link: %v", err)
			}

			t.add(node, in, dst, out)
		}
	}

	return t, nil
}

type routingEntry struct {
	Node *noc.NodeID     `yaml:"node"`
	In   *[2]noc.NodeID  `yaml:"in"`
	Dst  *noc.NodeID     `yaml:"dst"`
	Out  [][2]noc.NodeID `yaml:"out"`
}

func (e routingEntry) missing() string {
	switch {
	case e.Node == nil:
		return "node"
	case e.In == nil:
		return "in"
	case e.Dst == nil:
		return "dst"
	}

	return ""
}

func parseRoutingYAML(path string, data []byte) (*RoutingTable, error) {
	var entries []routingEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s: %v", path, err)
	}

	t := newRoutingTable()
	for i, e := range entries {
		if field := e.missing(); field != "" {
			return nil, errors.Wrapf(ErrMalformed,
				"%s: entry %d has no %s", path, i, field)
		}

		if len(e.Out) == 0 {
			return nil, errors.Wrapf(ErrMalformed,
				"%s: entry %d has no output link", path, i)
		}

		in := LinkID{Src: e.In[0], Dst: e.In[1]}
		for _, o := range e.Out {
			t.add(*e.Node, in, *e.Dst, LinkID{Src: o[0], Dst: o[1]})
		}
	}

	return t, nil
}

func parseNodeID(s string) (noc.NodeID, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	return noc.NodeID(v), nil
}

func parseLinkID(s string) (LinkID, error) {
	src, dst, found := strings.Cut(s, "->")
	if !found {
		return LinkID{}, errors.Errorf("%q is not of the form src->dst", s)
	}

	srcID, err := parseNodeID(src)
	if err != nil {
		return LinkID{}, err
	}

	dstID, err := parseNodeID(dst)
	if err != nil {
		return LinkID{}, err
	}

	return LinkID{Src: srcID, Dst: dstID}, nil
}
