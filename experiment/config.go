// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multicut/builder"
	"github.com/katalvlaran/multicut/core"
)

// Generator names accepted in Instance.Generator.
const (
	GenErdosRenyi  = "erdos-renyi"
	GenGNM         = "gnm"
	GenPruferTree  = "prufer-tree"
	GenCaterpillar = "caterpillar"
	GenBinaryTree  = "binary-tree"
	GenStar        = "star"
	GenPath        = "path"
	GenCycle       = "cycle"
	GenComplete    = "complete"
)

// ErrInvalidConfig is returned for configurations that cannot be run.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Instance describes one family of benchmark graphs.
type Instance struct {
	Name      string `yaml:"name"`
	Generator string `yaml:"generator"`
	// Nodes is the node count; for "star" it is the number of leaves.
	Nodes int `yaml:"nodes"`
	// Probability is p for "erdos-renyi".
	Probability float64 `yaml:"probability"`
	// Edges is m for "gnm".
	Edges int `yaml:"edges"`
	// Seed of the first repetition; repetition r uses Seed+r.
	Seed        int64 `yaml:"seed"`
	Repetitions int   `yaml:"repetitions"`
	// Connect joins all components before solving.
	Connect bool `yaml:"connect"`
	// AtLeast > 0 asks HasMatchingOfAtLeast(g, AtLeast) instead of a full solve.
	AtLeast int `yaml:"at_least"`
}

// Config is the top-level experiment file.
type Config struct {
	Instances   []Instance    `yaml:"instances"`
	Parallelism int           `yaml:"parallelism"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a config without instances, one worker per CPU and
// a one-minute timeout per run.
func DefaultConfig() Config {
	return Config{
		Parallelism: runtime.NumCPU(),
		Timeout:     time.Minute,
	}
}

// LoadConfig reads and validates the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig, fills per-instance
// defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %v: %w", err, ErrInvalidConfig)
	}
	for i := range cfg.Instances {
		if cfg.Instances[i].Repetitions == 0 {
			cfg.Instances[i].Repetitions = 1
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the config. Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if len(c.Instances) == 0 {
		return fmt.Errorf("no instances: %w", ErrInvalidConfig)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism %d < 1: %w", c.Parallelism, ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s: %w", c.Timeout, ErrInvalidConfig)
	}
	names := make(map[string]bool, len(c.Instances))
	for i, inst := range c.Instances {
		if inst.Name == "" {
			return fmt.Errorf("instance %d: empty name: %w", i, ErrInvalidConfig)
		}
		if names[inst.Name] {
			return fmt.Errorf("instance %q: duplicate name: %w", inst.Name, ErrInvalidConfig)
		}
		names[inst.Name] = true
		if err := inst.validate(); err != nil {
			return fmt.Errorf("instance %q: %v: %w", inst.Name, err, ErrInvalidConfig)
		}
	}

	return nil
}

func (inst Instance) validate() error {
	if inst.Repetitions < 1 {
		return fmt.Errorf("repetitions %d < 1", inst.Repetitions)
	}
	if inst.Nodes < 1 {
		return fmt.Errorf("nodes %d < 1", inst.Nodes)
	}
	if inst.AtLeast < 0 {
		return fmt.Errorf("at_least %d < 0", inst.AtLeast)
	}
	switch inst.Generator {
	case GenErdosRenyi:
		if inst.Probability < 0 || inst.Probability > 1 {
			return fmt.Errorf("probability %g not in [0,1]", inst.Probability)
		}
	case GenGNM:
		if inst.Edges < 0 {
			return fmt.Errorf("edges %d < 0", inst.Edges)
		}
	case GenPruferTree, GenCaterpillar, GenBinaryTree, GenStar, GenPath, GenCycle, GenComplete:
	default:
		return fmt.Errorf("unknown generator %q", inst.Generator)
	}

	return nil
}

// constructors returns the builder pipeline for inst.
func (inst Instance) constructors() []builder.Constructor {
	var con builder.Constructor
	switch inst.Generator {
	case GenErdosRenyi:
		con = builder.ErdosRenyi(inst.Nodes, inst.Probability)
	case GenGNM:
		con = builder.GNM(inst.Nodes, inst.Edges)
	case GenPruferTree:
		con = builder.PruferTree(inst.Nodes)
	case GenCaterpillar:
		con = builder.Caterpillar(inst.Nodes)
	case GenBinaryTree:
		con = builder.BinaryTree(inst.Nodes)
	case GenStar:
		con = builder.Star(inst.Nodes)
	case GenPath:
		con = builder.Path(inst.Nodes)
	case GenCycle:
		con = builder.Cycle(inst.Nodes)
	case GenComplete:
		con = builder.Complete(inst.Nodes)
	}
	cons := []builder.Constructor{con}
	if inst.Connect {
		cons = append(cons, builder.ConnectComponents())
	}

	return cons
}

// Build generates the graph of repetition rep.
func (inst Instance) Build(rep int) (*core.Graph, error) {
	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(inst.Seed + int64(rep))}, inst.constructors()...)
}
