// Package config loads pprank runtime settings from defaults, an optional
// .pprank.yaml, a .env file, PPRANK_* environment variables and CLI flags.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pprank/ppr"
)

// EnvPrefix namespaces environment overrides, e.g. PPRANK_ALPHA, PPRANK_GRAPH_NODES.
const EnvPrefix = "PPRANK"

// Graph kinds understood by the CLI driver.
const (
	KindDemo     = "demo"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindComplete = "complete"
	KindRandom   = "random"
)

var kinds = []string{KindDemo, KindCycle, KindStar, KindComplete, KindRandom}

// GraphConfig selects the synthetic graph the driver ranks.
type GraphConfig struct {
	Kind      string  `mapstructure:"kind"`
	Nodes     int     `mapstructure:"nodes"`
	P         float64 `mapstructure:"p"`
	Seed      int64   `mapstructure:"seed"`
	MinWeight float64 `mapstructure:"min_weight"`
	MaxWeight float64 `mapstructure:"max_weight"`
	// Restart lists the nodes that receive restart mass. Empty means every
	// node gets the same weight (the demo graph brings its own vector).
	Restart []int `mapstructure:"restart"`
}

// Config holds all runtime configuration for one pprank invocation.
type Config struct {
	Alpha    float64     `mapstructure:"alpha"`
	MaxIter  int         `mapstructure:"max_iter"`
	Tol      float64     `mapstructure:"tol"`
	Workers  int         `mapstructure:"workers"`
	Strategy string      `mapstructure:"strategy"`
	Dangling string      `mapstructure:"dangling"`
	Top      int         `mapstructure:"top"`
	LogLevel string      `mapstructure:"log_level"`
	Graph    GraphConfig `mapstructure:"graph"`
}

// BindEnv loads a .env file if present (existing variables win) and maps
// PPRANK_* variables onto config keys, with "." in nested keys read as "_".
func BindEnv() {
	_ = godotenv.Load()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	viper.SetDefault("alpha", ppr.DefaultAlpha)
	viper.SetDefault("max_iter", ppr.DefaultMaxIter)
	viper.SetDefault("tol", ppr.DefaultTolerance)
	viper.SetDefault("workers", 0)
	viper.SetDefault("strategy", ppr.StrategyPartition.String())
	viper.SetDefault("dangling", ppr.DanglingIgnore.String())
	viper.SetDefault("top", 10)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("graph.kind", KindDemo)
	viper.SetDefault("graph.nodes", 1000)
	viper.SetDefault("graph.p", 0.01)
	viper.SetDefault("graph.seed", 1)
	viper.SetDefault("graph.min_weight", 1.0)
	viper.SetDefault("graph.max_weight", 1.0)
	viper.SetDefault("graph.restart", []int{})

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the driver cannot act on. Numeric solver
// parameters are checked again by ppr itself.
func (c Config) Validate() error {
	if _, err := ppr.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: strategy: %w", err)
	}
	if _, err := ppr.ParseDanglingPolicy(c.Dangling); err != nil {
		return fmt.Errorf("config: dangling: %w", err)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	if c.Top < 0 {
		return fmt.Errorf("config: top must be non-negative, got %d", c.Top)
	}
	if !slices.Contains(kinds, c.Graph.Kind) {
		return fmt.Errorf("config: unknown graph.kind %q (want one of %s)",
			c.Graph.Kind, strings.Join(kinds, ", "))
	}
	if c.Graph.Kind != KindDemo && c.Graph.Nodes < 1 {
		return fmt.Errorf("config: graph.nodes must be positive, got %d", c.Graph.Nodes)
	}
	if !(c.Graph.P >= 0 && c.Graph.P <= 1) {
		return fmt.Errorf("config: graph.p must be in [0,1], got %g", c.Graph.P)
	}
	if !(c.Graph.MinWeight >= 0 && c.Graph.MaxWeight >= c.Graph.MinWeight) {
		return fmt.Errorf("config: require 0 <= graph.min_weight <= graph.max_weight, got %g..%g",
			c.Graph.MinWeight, c.Graph.MaxWeight)
	}
	return nil
}

// Options converts the solver settings into ppr options.
func (c Config) Options() ([]ppr.Option, error) {
	strategy, err := ppr.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	dangling, err := ppr.ParseDanglingPolicy(c.Dangling)
	if err != nil {
		return nil, err
	}
	return []ppr.Option{
		ppr.WithAlpha(c.Alpha),
		ppr.WithMaxIter(c.MaxIter),
		ppr.WithTolerance(c.Tol),
		ppr.WithWorkers(c.Workers),
		ppr.WithStrategy(strategy),
		ppr.WithDangling(dangling),
	}, nil
}
