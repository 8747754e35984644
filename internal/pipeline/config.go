// Package pipeline describes sequences of fitter operations in YAML or TOML
// files and applies them to a [curvefit.Fitter].
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/curvefit"
)

// Op names a fitter operation.
type Op string

const (
	OpSort     Op = "sort"
	OpWrapHPR  Op = "wrap_hpr"
	OpTangents Op = "tangents"
	OpResample Op = "resample"
	OpTimewarp Op = "timewarp"
	OpDesample Op = "desample"
	OpDecimate Op = "decimate"
)

var ops = map[Op]bool{
	OpSort:     true,
	OpWrapHPR:  true,
	OpTangents: true,
	OpResample: true,
	OpTimewarp: true,
	OpDesample: true,
	OpDecimate: true,
}

// Format is the encoding of a pipeline file.
type Format int

const (
	YAML Format = iota
	TOML
)

var ErrUnknownOp = errors.New("pipeline: unknown op")

// Config is a pipeline file.
type Config struct {
	// Accuracy is passed on to the fitter as [curvefit.Options.Accuracy].
	Accuracy float64 `yaml:"accuracy" toml:"accuracy"`
	Steps    []Step  `yaml:"steps" toml:"steps"`
}

// Step is one operation and its arguments. Only the arguments relevant to
// Op are used.
type Step struct {
	Op Op `yaml:"op" toml:"op"`

	// Scale multiplies computed tangents. Zero means 1.
	Scale float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	// Count and Even control resampling.
	Count int  `yaml:"count,omitempty" toml:"count,omitempty"`
	Even  bool `yaml:"even,omitempty" toml:"even,omitempty"`
	// Tolerance is the desample error bound.
	Tolerance float64 `yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
	// Factor is the fraction of samples kept by decimation.
	Factor float64 `yaml:"factor,omitempty" toml:"factor,omitempty"`
}

func (s Step) String() string {
	switch s.Op {
	case OpTangents:
		return fmt.Sprintf("%s(scale=%g)", s.Op, s.scale())
	case OpResample:
		return fmt.Sprintf("%s(count=%d, even=%t)", s.Op, s.Count, s.Even)
	case OpDesample:
		return fmt.Sprintf("%s(tolerance=%g)", s.Op, s.Tolerance)
	case OpDecimate:
		return fmt.Sprintf("%s(factor=%g)", s.Op, s.Factor)
	default:
		return string(s.Op)
	}
}

func (s Step) scale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// Options returns the fitter options described by the config.
func (cfg *Config) Options() curvefit.Options {
	opts := curvefit.DefaultOptions
	if cfg.Accuracy > 0 {
		opts.Accuracy = cfg.Accuracy
	}
	return opts
}

// Validate checks that every step names a known op.
func (cfg *Config) Validate() error {
	for i, s := range cfg.Steps {
		if !ops[s.Op] {
			return fmt.Errorf("step %d: %q: %w", i, s.Op, ErrUnknownOp)
		}
	}
	return nil
}

// FormatOf picks the format of a pipeline file from its extension. Anything
// other than .toml is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// Load reads and validates the pipeline file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(b), FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads and validates a pipeline in the given format. Unknown keys
// are rejected. An empty document is an empty pipeline.
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := &Config{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
