// Package config decodes HCL run configurations for the annealer and the
// randomizer.
//
// A file holds up to one anneal block and one randomize block:
//
//	anneal {
//	  ti               = 2 / nodes
//	  tf               = 0.0001
//	  ts               = 0.995
//	  fac              = 1.0
//	  proba_components = 0.5
//	  nochange_limit   = 25
//	  modules          = 0
//	  weighted         = false
//	  seed             = 7
//	}
//	randomize {
//	  times        = 10
//	  seed         = 3
//	  max_attempts = 50000
//	}
//
// Expressions are evaluated with caller variables; GraphVars provides nodes,
// links and mean_degree for a graph. Every attribute is optional except
// randomize.times; omitted ones take the package defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvnet/anneal"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/randomize"
	"github.com/katalvlaran/lvnet/rng"
)

// ErrInvalid is returned when a decoded value is out of its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is a resolved run configuration.
type Config struct {
	Anneal Anneal
	// Randomize is nil when the file has no randomize block.
	Randomize *Randomize
}

// Anneal holds the annealing schedule and engine knobs.
type Anneal struct {
	// Ti is the initial temperature; 0 means 2/N.
	Ti              float64
	Tf              float64
	Ts              float64
	Fac             float64
	ProbaComponents float64
	NoChangeLimit   int
	// Modules is the number of module slots; 0 means one per node.
	Modules  int
	Weighted bool
	Seed     uint64
}

// Randomize holds the degree-preserving randomization settings.
type Randomize struct {
	Times float64
	Seed  uint64
	// MaxAttempts bounds the swap draws; 0 keeps the randomizer default.
	MaxAttempts int
}

// hclFile is the decoding shape; pointers tell omitted from zero.
type hclFile struct {
	Anneal    *hclAnneal    `hcl:"anneal,block"`
	Randomize *hclRandomize `hcl:"randomize,block"`
}

type hclAnneal struct {
	Ti              *float64 `hcl:"ti,optional"`
	Tf              *float64 `hcl:"tf,optional"`
	Ts              *float64 `hcl:"ts,optional"`
	Fac             *float64 `hcl:"fac,optional"`
	ProbaComponents *float64 `hcl:"proba_components,optional"`
	NoChangeLimit   *int     `hcl:"nochange_limit,optional"`
	Modules         *int     `hcl:"modules,optional"`
	Weighted        *bool    `hcl:"weighted,optional"`
	Seed            *int64   `hcl:"seed,optional"`
}

type hclRandomize struct {
	Times       float64 `hcl:"times"`
	Seed        *int64  `hcl:"seed,optional"`
	MaxAttempts *int    `hcl:"max_attempts,optional"`
}

// Defaults returns the configuration used when a file sets nothing.
func Defaults() *Config {
	return &Config{
		Anneal: Anneal{
			Tf:              anneal.DefaultTf,
			Ts:              anneal.DefaultTs,
			Fac:             anneal.DefaultIterationFactor,
			ProbaComponents: anneal.DefaultComponentProbability,
			NoChangeLimit:   anneal.DefaultNoChangeLimit,
		},
	}
}

// GraphVars returns the evaluation variables describing g: nodes, links
// (undirected count) and mean_degree.
func GraphVars(g *core.Graph) map[string]cty.Value {
	if g == nil {
		return map[string]cty.Value{}
	}
	n := g.NodeCount()
	links := g.TotalLinks(true)
	mean := 0.0
	if n > 0 {
		mean = 2 * float64(links) / float64(n)
	}

	return map[string]cty.Value{
		"nodes":       cty.NumberIntVal(int64(n)),
		"links":       cty.NumberIntVal(int64(links)),
		"mean_degree": cty.NumberFloatVal(mean),
	}
}

// Parse decodes src (named filename in diagnostics) with vars in scope.
func Parse(src []byte, filename string, vars map[string]cty.Value) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	return decode(file, filename, vars)
}

// Load reads and decodes the HCL file at path.
func Load(path string, vars map[string]cty.Value) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}

	return decode(file, path, vars)
}

func decode(file *hcl.File, filename string, vars map[string]cty.Value) (*Config, error) {
	var raw hclFile
	ctx := &hcl.EvalContext{Variables: vars}
	if diags := gohcl.DecodeBody(file.Body, ctx, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := Defaults()
	if a := raw.Anneal; a != nil {
		setFloat(&cfg.Anneal.Ti, a.Ti)
		setFloat(&cfg.Anneal.Tf, a.Tf)
		setFloat(&cfg.Anneal.Ts, a.Ts)
		setFloat(&cfg.Anneal.Fac, a.Fac)
		setFloat(&cfg.Anneal.ProbaComponents, a.ProbaComponents)
		if a.NoChangeLimit != nil {
			cfg.Anneal.NoChangeLimit = *a.NoChangeLimit
		}
		if a.Modules != nil {
			cfg.Anneal.Modules = *a.Modules
		}
		if a.Weighted != nil {
			cfg.Anneal.Weighted = *a.Weighted
		}
		seed, err := toSeed("anneal.seed", a.Seed)
		if err != nil {
			return nil, err
		}
		cfg.Anneal.Seed = seed
	}
	if r := raw.Randomize; r != nil {
		seed, err := toSeed("randomize.seed", r.Seed)
		if err != nil {
			return nil, err
		}
		cfg.Randomize = &Randomize{Times: r.Times, Seed: seed}
		if r.MaxAttempts != nil {
			cfg.Randomize.MaxAttempts = *r.MaxAttempts
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func toSeed(name string, v *int64) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if *v < 0 {
		return 0, fmt.Errorf("%w: %s = %d must be ≥ 0", ErrInvalid, name, *v)
	}

	return uint64(*v), nil
}

// Validate checks every value against its domain.
func (c *Config) Validate() error {
	a := c.Anneal
	switch {
	case !(a.Tf > 0):
		return fmt.Errorf("%w: anneal.tf = %g must be > 0", ErrInvalid, a.Tf)
	case !(a.Ts > 0 && a.Ts < 1):
		return fmt.Errorf("%w: anneal.ts = %g must be in (0,1)", ErrInvalid, a.Ts)
	case a.Ti != 0 && !(a.Ti > a.Tf):
		return fmt.Errorf("%w: anneal.ti = %g must exceed tf = %g", ErrInvalid, a.Ti, a.Tf)
	case !(a.Fac > 0):
		return fmt.Errorf("%w: anneal.fac = %g must be > 0", ErrInvalid, a.Fac)
	case !(a.ProbaComponents >= 0 && a.ProbaComponents <= 1):
		return fmt.Errorf("%w: anneal.proba_components = %g must be in [0,1]", ErrInvalid, a.ProbaComponents)
	case a.NoChangeLimit < 1:
		return fmt.Errorf("%w: anneal.nochange_limit = %d must be ≥ 1", ErrInvalid, a.NoChangeLimit)
	case a.Modules < 0:
		return fmt.Errorf("%w: anneal.modules = %d must be ≥ 0", ErrInvalid, a.Modules)
	}
	if r := c.Randomize; r != nil {
		if !(r.Times > 0) {
			return fmt.Errorf("%w: randomize.times = %g must be > 0", ErrInvalid, r.Times)
		}
		if r.MaxAttempts < 0 {
			return fmt.Errorf("%w: randomize.max_attempts = %d must be ≥ 0", ErrInvalid, r.MaxAttempts)
		}
	}

	return nil
}

// Options converts the block into anneal options. Logging, metrics and
// observers are left to the caller.
func (a Anneal) Options() []anneal.Option {
	opts := []anneal.Option{
		anneal.WithSchedule(a.Ti, a.Tf, a.Ts),
		anneal.WithIterationFactor(a.Fac),
		anneal.WithComponentProbability(a.ProbaComponents),
		anneal.WithNoChangeLimit(a.NoChangeLimit),
		anneal.WithModules(a.Modules),
	}
	if a.Weighted {
		opts = append(opts, anneal.WithWeighted())
	}

	return opts
}

// Source returns the random stream seeded by the block.
func (a Anneal) Source() rng.Source { return rng.New(a.Seed) }

// Options converts the block into randomize options.
func (r Randomize) Options() []randomize.Option {
	if r.MaxAttempts == 0 {
		return nil
	}

	return []randomize.Option{randomize.WithMaxAttempts(r.MaxAttempts)}
}

// Source returns the random stream seeded by the block.
func (r Randomize) Source() rng.Source { return rng.New(r.Seed) }
