// Command noxmesh assembles a mesh network-on-chip from a configuration file
// and prints its layout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/noxmesh/config"
	"github.com/sarchlab/noxmesh/mesh"
	"github.com/tebeka/atexit"
)

type options struct {
	configPath string
	dimX, dimY int
	logFormat  string
	trace      bool
}

func parseArgs(args []string, output io.Writer) (options, error) {
	opts := options{}

	flagSet := flag.NewFlagSet("noxmesh", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.StringVar(&opts.configPath, "config", "",
		"Path to a YAML or JSON mesh configuration.")
	flagSet.IntVar(&opts.dimX, "x", 0, "Mesh width, overrides the config.")
	flagSet.IntVar(&opts.dimY, "y", 0, "Mesh height, overrides the config.")
	flagSet.StringVar(&opts.logFormat, "log-format", "text",
		"Log output format. Options: 'text' or 'json'.")
	flagSet.BoolVar(&opts.trace, "trace", false, "Log assembly traces.")

	err := flagSet.Parse(args)

	return opts, err
}

func setupLogger(opts options) {
	level := slog.LevelWarn
	if opts.trace {
		level = mesh.LevelTrace
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(opts.logFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	if opts.dimX != 0 {
		cfg.MeshDimX = opts.dimX
	}

	if opts.dimY != 0 {
		cfg.MeshDimY = opts.dimY
	}

	return cfg, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			atexit.Exit(0)
		}
		atexit.Exit(2)
	}

	setupLogger(opts)

	cfg, err := loadConfig(opts)
	if err != nil {
		slog.Error("cannot load configuration", "error", err)
		atexit.Exit(1)
	}

	engine := sim.NewSerialEngine()

	m, err := mesh.MakeBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithConfig(cfg).
		Build("Mesh")
	if err != nil {
		slog.Error("cannot build mesh", "error", err)
		atexit.Exit(1)
	}

	fmt.Println(m.Dump())
	fmt.Printf("%d nodes, %d border links, %d signals\n",
		m.NumNodes(), len(m.BorderLinks()), m.Signals().Len())

	atexit.Exit(0)
}
