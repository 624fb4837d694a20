// Package config loads the clustering configuration: metric, strategy with
// its parameters, and representative selection. Values come from a YAML
// file and may be overridden with SEQMINE_* environment variables, e.g.
// SEQMINE_STRATEGY_K=4.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/selection"
	"github.com/viant/seqmine/sequence"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "SEQMINE"

// Strategy holds the strategy name and every strategy parameter.
type Strategy struct {
	Name           string  `mapstructure:"name" yaml:"name"`
	K              int     `mapstructure:"k" yaml:"k"`
	MaxIter        int     `mapstructure:"max_iter" yaml:"max_iter"`
	Init           string  `mapstructure:"init" yaml:"init"`
	Medoids        []int   `mapstructure:"medoids" yaml:"medoids"`
	Criterion      string  `mapstructure:"criterion" yaml:"criterion"`
	Seed           int64   `mapstructure:"seed" yaml:"seed"`
	Eps            float64 `mapstructure:"eps" yaml:"eps"`
	MinSamples     int     `mapstructure:"min_samples" yaml:"min_samples"`
	MinClusterSize int     `mapstructure:"min_cluster_size" yaml:"min_cluster_size"`
	Bandwidth      float64 `mapstructure:"bandwidth" yaml:"bandwidth"`
}

// Selection configures representative selection.
type Selection struct {
	Center string `mapstructure:"center" yaml:"center"`
	Mode   string `mapstructure:"mode" yaml:"mode"`
	N      int    `mapstructure:"n" yaml:"n"`
}

// Config is the full configuration surface. PruneUnique drops items whose
// sequence occurs once before clustering.
type Config struct {
	Metric      string    `mapstructure:"metric" yaml:"metric"`
	Parallelism int       `mapstructure:"parallelism" yaml:"parallelism"`
	PruneUnique bool      `mapstructure:"prune_unique" yaml:"prune_unique"`
	Strategy    Strategy  `mapstructure:"strategy" yaml:"strategy"`
	Selection   Selection `mapstructure:"selection" yaml:"selection"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("metric", string(sequence.MetricLCS))
	v.SetDefault("parallelism", 1)
	v.SetDefault("prune_unique", false)
	v.SetDefault("strategy.name", cluster.NameKMedoids)
	v.SetDefault("strategy.k", 2)
	v.SetDefault("strategy.max_iter", cluster.DefaultMaxIter)
	v.SetDefault("strategy.init", "")
	// registered so SEQMINE_STRATEGY_MEDOIDS=4,1 is picked up by Unmarshal
	v.SetDefault("strategy.medoids", []int{})
	v.SetDefault("strategy.criterion", "medoids")
	v.SetDefault("strategy.seed", 0)
	v.SetDefault("strategy.eps", 0.5)
	v.SetDefault("strategy.min_samples", 0)
	v.SetDefault("strategy.min_cluster_size", 0)
	v.SetDefault("strategy.bandwidth", 0)
	v.SetDefault("selection.center", string(selection.CenterMedoid))
	v.SetDefault("selection.mode", string(selection.ModeNearest))
	v.SetDefault("selection.n", 5)
}

// Load reads the YAML file at path (skipped when path is empty) over the
// defaults, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate resolves every enumerated value.
func (c *Config) Validate() error {
	if _, err := c.ResolveMetric(); err != nil {
		return err
	}
	if _, err := c.ResolveStrategy(); err != nil {
		return err
	}
	if _, err := c.ResolveSelection(); err != nil {
		return err
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config: negative parallelism %d: %w", c.Parallelism, sequence.ErrInvalidInput)
	}
	return nil
}

// ResolveMetric returns the configured metric.
func (c *Config) ResolveMetric() (sequence.Metric, error) {
	return sequence.ParseMetric(c.Metric)
}

// ResolveStrategy returns the configured strategy variant.
func (c *Config) ResolveStrategy() (cluster.Strategy, error) {
	s := c.Strategy
	return cluster.ParseStrategy(s.Name, cluster.Params{
		K:              s.K,
		MaxIter:        s.MaxIter,
		Init:           s.Init,
		Medoids:        s.Medoids,
		Criterion:      s.Criterion,
		Seed:           s.Seed,
		Eps:            s.Eps,
		MinSamples:     s.MinSamples,
		MinClusterSize: s.MinClusterSize,
		Bandwidth:      s.Bandwidth,
	})
}

// ResolveSelection returns the configured selection options.
func (c *Config) ResolveSelection() (selection.Options, error) {
	center, err := selection.ParseCenter(c.Selection.Center)
	if err != nil {
		return selection.Options{}, err
	}
	mode, err := selection.ParseMode(c.Selection.Mode)
	if err != nil {
		return selection.Options{}, err
	}
	if c.Selection.N < 1 {
		return selection.Options{}, fmt.Errorf("config: selection.n must be positive, got %d: %w", c.Selection.N, sequence.ErrInvalidInput)
	}
	return selection.Options{Center: center, Mode: mode, N: c.Selection.N}, nil
}
