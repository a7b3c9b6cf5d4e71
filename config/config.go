// Package config provides the configuration of a mesh simulation.
package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sarchlab/noxmesh/tables"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDimension is returned when the mesh has no rows or no columns,
// or is too large to be indexed.
var ErrInvalidDimension = errors.New("invalid mesh dimension")

// Config is the read-only input of mesh assembly. It is passed by value.
type Config struct {
	MeshDimX int `yaml:"mesh_dim_x" json:"mesh_dim_x"`
	MeshDimY int `yaml:"mesh_dim_y" json:"mesh_dim_y"`

	RoutingAlgorithm    RoutingAlgorithm    `yaml:"routing_algorithm" json:"routing_algorithm"`
	TrafficDistribution TrafficDistribution `yaml:"traffic_distribution" json:"traffic_distribution"`

	// StatsWarmUpTime is the number of cycles before routers start to
	// collect statistics.
	StatsWarmUpTime int `yaml:"stats_warm_up_time" json:"stats_warm_up_time"`

	// BufferDepth is the capacity of each router input buffer, in flits.
	BufferDepth int `yaml:"buffer_depth" json:"buffer_depth"`

	RoutingTableFilename string `yaml:"routing_table_filename" json:"routing_table_filename"`
	TrafficTableFilename string `yaml:"traffic_table_filename" json:"traffic_table_filename"`

	PacketInjectionRate         float64 `yaml:"packet_injection_rate" json:"packet_injection_rate"`
	ProbabilityOfRetransmission float64 `yaml:"probability_of_retransmission" json:"probability_of_retransmission"`
}

// Default returns the configuration of a 4x4 mesh with XY routing and
// uniform random traffic.
func Default() Config {
	return Config{
		MeshDimX:                    4,
		MeshDimY:                    4,
		RoutingAlgorithm:            RoutingXY,
		TrafficDistribution:         TrafficRandom,
		StatsWarmUpTime:             1000,
		BufferDepth:                 4,
		PacketInjectionRate:         0.01,
		ProbabilityOfRetransmission: 0.01,
	}
}

// NumNodes returns the number of nodes in the mesh.
func (c Config) NumNodes() int {
	return c.MeshDimX * c.MeshDimY
}

// NeedsRoutingTable tells if the routing policy is driven by a table.
func (c Config) NeedsRoutingTable() bool {
	return c.RoutingAlgorithm == RoutingTableBased
}

// NeedsTrafficTable tells if the traffic policy is driven by a table.
func (c Config) NeedsTrafficTable() bool {
	return c.TrafficDistribution == TrafficTableBased
}

// TrafficDefaults returns the values that fill traffic table entries.
func (c Config) TrafficDefaults() tables.TrafficDefaults {
	return tables.TrafficDefaults{
		PacketInjectionRate:         c.PacketInjectionRate,
		ProbabilityOfRetransmission: c.ProbabilityOfRetransmission,
	}
}

// Validate checks the configuration. It must pass before any part of the
// mesh is allocated.
func (c Config) Validate() error {
	if c.MeshDimX <= 0 || c.MeshDimY <= 0 {
		return errors.Wrapf(ErrInvalidDimension,
			"mesh is %dx%d", c.MeshDimX, c.MeshDimY)
	}

	// The link grid holds (dimX+1)*dimY and dimX*(dimY+1) slots.
	if c.MeshDimX > math.MaxInt/(c.MeshDimY+1)-1 {
		return errors.Wrapf(ErrInvalidDimension,
			"mesh %dx%d is too large", c.MeshDimX, c.MeshDimY)
	}

	if _, ok := routingNames[c.RoutingAlgorithm]; !ok {
		return errors.Wrapf(ErrInvalidPolicy,
			"routing algorithm %d", int(c.RoutingAlgorithm))
	}

	if _, ok := trafficNames[c.TrafficDistribution]; !ok {
		return errors.Wrapf(ErrInvalidPolicy,
			"traffic distribution %d", int(c.TrafficDistribution))
	}

	if c.BufferDepth <= 0 {
		return errors.Errorf("buffer depth must be positive, got %d",
			c.BufferDepth)
	}

	if c.StatsWarmUpTime < 0 {
		return errors.Errorf("stats warm-up time must not be negative, got %d",
			c.StatsWarmUpTime)
	}

	return nil
}

// Load reads a configuration file on top of Default. Files ending in .json
// are read as JSON, everything else as YAML. Relative table paths are
// resolved against the directory of the file.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "read config %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &c)
	} else {
		err = yaml.Unmarshal(data, &c)
	}

	if err != nil {
		return c, errors.Wrapf(err, "parse config %s", path)
	}

	dir := filepath.Dir(path)
	c.RoutingTableFilename = resolve(dir, c.RoutingTableFilename)
	c.TrafficTableFilename = resolve(dir, c.TrafficTableFilename)

	return c, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}
