package tables

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sarchlab/noxmesh/noc"
	"gopkg.in/yaml.v3"
)

// TrafficDefaults fills the fields a traffic table line leaves out.
type TrafficDefaults struct {
	PacketInjectionRate         float64
	ProbabilityOfRetransmission float64
}

// TrafficEntry describes the traffic one source sends to one destination.
// TOff and TPeriod of zero mean the flow is always on.
type TrafficEntry struct {
	Src     noc.NodeID `yaml:"src"`
	Dst     noc.NodeID `yaml:"dst"`
	PIR     float64    `yaml:"pir"`
	POR     float64    `yaml:"por"`
	TOn     int        `yaml:"t_on"`
	TOff    int        `yaml:"t_off"`
	TPeriod int        `yaml:"t_period"`
}

// TrafficTable lists the communications of a table-driven workload.
type TrafficTable struct {
	entries []TrafficEntry
}

// Entries returns a copy of the table entries in file order.
func (t *TrafficTable) Entries() []TrafficEntry {
	if t == nil {
		return nil
	}

	return append([]TrafficEntry(nil), t.entries...)
}

// Size returns the number of entries.
func (t *TrafficTable) Size() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// OccurrencesAsSource counts the entries that have id as the source. A nil
// table has no entries.
func (t *TrafficTable) OccurrencesAsSource(id noc.NodeID) int {
	if t == nil {
		return 0
	}

	n := 0
	for _, e := range t.entries {
		if e.Src == id {
			n++
		}
	}

	return n
}

// Validate checks that every node id in the table is below numNodes.
func (t *TrafficTable) Validate(numNodes int) error {
	for _, e := range t.entries {
		for _, id := range []noc.NodeID{e.Src, e.Dst} {
			if id < 0 || int(id) >= numNodes {
				return errors.Wrapf(ErrNodeOutOfRange,
					"traffic table names node %d, mesh has %d nodes",
					id, numNodes)
			}
		}
	}

	return nil
}

// LoadTrafficTable reads a traffic table. Each line of the text format is
//
//	<src> <dst> [<pir> [<por> [<t_on> [<t_off> [<t_period>]]]]]
//
// Lines starting with % are comments. Files with a .yaml or .yml extension
// are read as a list of TrafficEntry; omitted rates take the defaults.
func LoadTrafficTable(
	path string,
	defaults TrafficDefaults,
) (*TrafficTable, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if isYAML(path) {
		return parseTrafficYAML(path, data, defaults)
	}

	return parseTrafficText(path, data, defaults)
}

func parseTrafficText(
	path string,
	data []byte,
	defaults TrafficDefaults,
) (*TrafficTable, error) {
	t := &TrafficTable{}
	lines, numbers := contentLines(data)

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 7 {
			return nil, malformed(path, numbers[i],
				"expect 2 to 7 fields, got %d", len(fields))
		}

		e, err := parseTrafficFields(fields, defaults)
		if err != nil {
			return nil, malformed(path, numbers[i], "%v", err)
		}

		t.entries = append(t.entries, e)
	}

	return t, nil
}

func parseTrafficFields(
	fields []string,
	defaults TrafficDefaults,
) (TrafficEntry, error) {
	e := TrafficEntry{
		PIR: defaults.PacketInjectionRate,
		POR: defaults.ProbabilityOfRetransmission,
	}

	var err error
	if e.Src, err = parseNodeID(fields[0]); err != nil {
		return e, errors.Wrap(err, "src")
	}

	if e.Dst, err = parseNodeID(fields[1]); err != nil {
		return e, errors.Wrap(err, "dst")
	}

	floats := []*float64{&e.PIR, &e.POR}
	ints := []*int{&e.TOn, &e.TOff, &e.TPeriod}

	for i, f := range fields[2:] {
		if i < len(floats) {
			if *floats[i], err = strconv.ParseFloat(f, 64); err != nil {
				return e, err
			}
			continue
		}

		if *ints[i-len(floats)], err = strconv.Atoi(f); err != nil {
			return e, err
		}
	}

	return e, nil
}

type trafficYAMLEntry struct {
	Src     *noc.NodeID `yaml:"src"`
	Dst     *noc.NodeID `yaml:"dst"`
	PIR     *float64    `yaml:"pir"`
	POR     *float64    `yaml:"por"`
	TOn     int         `yaml:"t_on"`
	TOff    int         `yaml:"t_off"`
	TPeriod int         `yaml:"t_period"`
}

func parseTrafficYAML(
	path string,
	data []byte,
	defaults TrafficDefaults,
) (*TrafficTable, error) {
	var raw []trafficYAMLEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s: %v", path, err)
	}

	t := &TrafficTable{}
	for i, r := range raw {
		if r.Src == nil || r.Dst == nil {
			return nil, errors.Wrapf(ErrMalformed,
				"%s: entry %d needs both src and dst", path, i)
		}

		e := TrafficEntry{
			Src:     *r.Src,
			Dst:     *r.Dst,
			PIR:     defaults.PacketInjectionRate,
			POR:     defaults.ProbabilityOfRetransmission,
			TOn:     r.TOn,
			TOff:    r.TOff,
			TPeriod: r.TPeriod,
		}

		if r.PIR != nil {
			e.PIR = *r.PIR
		}

		if r.POR != nil {
			e.POR = *r.POR
		}

		t.entries = append(t.entries, e)
	}

	return t, nil
}
