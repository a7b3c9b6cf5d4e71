package config

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPolicy is returned for an unknown routing or traffic policy name.
var ErrInvalidPolicy = errors.New("invalid policy")

// RoutingAlgorithm selects how routers choose output ports.
type RoutingAlgorithm int

const (
	RoutingXY RoutingAlgorithm = iota
	RoutingWestFirst
	RoutingNorthLast
	RoutingNegativeFirst
	RoutingOddEven
	RoutingDyAD
	RoutingFullyAdaptive
	RoutingTableBased
)

var routingNames = map[RoutingAlgorithm]string{
	RoutingXY:            "XY",
	RoutingWestFirst:     "WEST_FIRST",
	RoutingNorthLast:     "NORTH_LAST",
	RoutingNegativeFirst: "NEGATIVE_FIRST",
	RoutingOddEven:       "ODD_EVEN",
	RoutingDyAD:          "DYAD",
	RoutingFullyAdaptive: "FULLY_ADAPTIVE",
	RoutingTableBased:    "TABLE_BASED",
}

// String implements fmt.Stringer.
func (r RoutingAlgorithm) String() string {
	if name, ok := routingNames[r]; ok {
		return name
	}

	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (r RoutingAlgorithm) MarshalText() ([]byte, error) {
	if _, ok := routingNames[r]; !ok {
		return nil, errors.Wrapf(ErrInvalidPolicy, "routing algorithm %d", int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// without regard to case.
func (r *RoutingAlgorithm) UnmarshalText(text []byte) error {
	s := strings.ToUpper(strings.TrimSpace(string(text)))
	for v, name := range routingNames {
		if name == s {
			*r = v
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidPolicy, "routing algorithm %q", string(text))
}

// TrafficDistribution selects how processing elements pick destinations.
type TrafficDistribution int

const (
	TrafficRandom TrafficDistribution = iota
	TrafficTranspose1
	TrafficTranspose2
	TrafficHotspot
	TrafficTableBased
	TrafficBitReversal
	TrafficShuffle
	TrafficButterfly
)

var trafficNames = map[TrafficDistribution]string{
	TrafficRandom:      "RANDOM",
	TrafficTranspose1:  "TRANSPOSE1",
	TrafficTranspose2:  "TRANSPOSE2",
	TrafficHotspot:     "HOTSPOT",
	TrafficTableBased:  "TABLE_BASED",
	TrafficBitReversal: "BITREVERSAL",
	TrafficShuffle:     "SHUFFLE",
	TrafficButterfly:   "BUTTERFLY",
}

// String implements fmt.Stringer.
func (t TrafficDistribution) String() string {
	if name, ok := trafficNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (t TrafficDistribution) MarshalText() ([]byte, error) {
	if _, ok := trafficNames[t]; !ok {
		return nil, errors.Wrapf(ErrInvalidPolicy, "traffic distribution %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TrafficDistribution) UnmarshalText(text []byte) error {
	s := strings.ToUpper(strings.TrimSpace(string(text)))
	for v, name := range trafficNames {
		if name == s {
			*t = v
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidPolicy, "traffic distribution %q", string(text))
}
