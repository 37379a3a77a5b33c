// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/tbdiag/matrix"
	"github.com/katalvlaran/tbdiag/model"
	"github.com/katalvlaran/tbdiag/solver"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is a complete run description.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
	Model  ModelConfig  `yaml:"model"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// SolverConfig mirrors solver and matrix options.
type SolverConfig struct {
	// MaxIterations bounds the self-consistency loop; 0 disables it.
	MaxIterations int `yaml:"max_iterations"`

	// Parallel diagonalizes blocks concurrently.
	Parallel bool `yaml:"parallel"`

	// Workers caps concurrent blocks; 0 keeps the solver default.
	Workers int `yaml:"workers,omitempty"`

	// Method is auto, jacobi or symmetric.
	Method string `yaml:"method,omitempty"`

	// Tolerance for the eigen kernels; 0 keeps the default.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// MaxSweeps bounds Jacobi sweeps; 0 keeps the default.
	MaxSweeps int `yaml:"max_sweeps,omitempty"`
}

// Default returns the configuration used for omitted keys.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Solver: SolverConfig{
			MaxIterations: solver.DefaultMaxIterations,
			Parallel:      solver.DefaultParallel,
			Method:        matrix.MethodAuto.String(),
		},
	}
}

// Load reads, decodes and validates the file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a configuration from r.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Solver.Validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}

	return nil
}

// Validate checks level and format names.
func (l *LogConfig) Validate() error {
	if _, err := l.level(); err != nil {
		return err
	}
	switch strings.ToLower(l.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("format %q: %w", l.Format, ErrInvalidConfig)
	}
}

func (l *LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("level %q: %w", l.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// Logger builds a slog.Logger writing to w.
func (l *LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(l.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

// Validate checks ranges and the method name.
func (s *SolverConfig) Validate() error {
	if s.MaxIterations < 0 {
		return fmt.Errorf("max_iterations %d < 0: %w", s.MaxIterations, ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers %d < 0: %w", s.Workers, ErrInvalidConfig)
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance %g < 0: %w", s.Tolerance, ErrInvalidConfig)
	}
	if s.MaxSweeps < 0 {
		return fmt.Errorf("max_sweeps %d < 0: %w", s.MaxSweeps, ErrInvalidConfig)
	}
	if _, ok := matrix.ParseMethod(s.Method); !ok {
		return fmt.Errorf("method %q: %w", s.Method, ErrInvalidConfig)
	}

	return nil
}

// Options translates the section into solver options. Call Validate first.
func (s *SolverConfig) Options() []solver.Option {
	method, _ := matrix.ParseMethod(s.Method)
	eigen := []matrix.Option{matrix.WithMethod(method)}
	if s.Tolerance > 0 {
		eigen = append(eigen, matrix.WithTolerance(s.Tolerance))
	}
	if s.MaxSweeps > 0 {
		eigen = append(eigen, matrix.WithMaxSweeps(s.MaxSweeps))
	}

	opts := []solver.Option{
		solver.WithMaxIterations(s.MaxIterations),
		solver.WithParallel(s.Parallel),
		solver.WithEigenOptions(eigen...),
	}
	if s.Workers > 0 {
		opts = append(opts, solver.WithWorkers(s.Workers))
	}

	return opts
}

// BuildModel builds and finalizes the model section.
func (c *Config) BuildModel() (*model.Store, error) { return c.Model.BuildModel() }

// SolverOptions returns the solver section as options.
func (c *Config) SolverOptions() []solver.Option { return c.Solver.Options() }
