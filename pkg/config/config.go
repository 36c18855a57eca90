// Package config loads the optional orgchart.toml file and environment
// overrides.
//
// Precedence, lowest first: built-in defaults, the TOML file, environment
// variables, command-line flags. Flags are applied by the CLI on top of
// the [pipeline.Options] returned by [Config.PipelineOptions].
//
//	[layout]
//	grouped = true
//	node_width = 220
//	orphans = "promote"
//
//	[render]
//	formats = ["svg", "json"]
//	legend = true
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[access]
//	role = "hr_manager"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// FileName is the config file looked up in the user config directory.
const FileName = "orgchart.toml"

// Environment variables read by [Config.ApplyEnv].
const (
	EnvCacheBackend = "ORGCHART_CACHE"
	EnvCacheDir     = "ORGCHART_CACHE_DIR"
	EnvRedisURL     = "ORGCHART_REDIS_URL"
	EnvRole         = "ORGCHART_ROLE"
	EnvPolicy       = "ORGCHART_POLICY"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the decoded configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Access AccessConfig `toml:"access"`

	// Path is the file the config was read from, empty for defaults only.
	Path string `toml:"-"`
}

// LayoutConfig is the [layout] table.
type LayoutConfig struct {
	Grouped           bool    `toml:"grouped"`
	NodeWidth         float64 `toml:"node_width"`
	NodeHeight        float64 `toml:"node_height"`
	HorizontalSpacing float64 `toml:"h_gap"`
	VerticalSpacing   float64 `toml:"v_gap"`
	DepartmentGap     float64 `toml:"department_gap"`
	Orphans           string  `toml:"orphans"`
	BreakCycles       bool    `toml:"break_cycles"`
}

// RenderConfig is the [render] table.
type RenderConfig struct {
	Formats  []string `toml:"formats"`
	Title    string   `toml:"title"`
	Legend   bool     `toml:"legend"`
	Popups   bool     `toml:"popups"`
	Clusters bool     `toml:"clusters"`
	Detailed bool     `toml:"detailed"`
	Scale    float64  `toml:"scale"`
}

// CacheConfig is the [cache] table.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
	Prefix   string `toml:"prefix"`
}

// AccessConfig is the [access] table.
type AccessConfig struct {
	Role   string `toml:"role"`
	Policy string `toml:"policy"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{Orphans: string(orgtree.OrphanDrop)},
		Render: RenderConfig{Formats: []string{pipeline.FormatSVG}, Popups: true, Legend: true},
		Cache:  CacheConfig{Backend: BackendFile},
		Access: AccessConfig{Role: string(access.RoleEmployee)},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/orgchart/orgchart.toml or its
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "orgchart", FileName), nil
}

// Load reads path on top of the defaults. An empty path means the default
// location, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

// ApplyEnv overrides cache and access settings from the environment.
// A Redis URL selects the redis backend unless the backend is set too.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvRedisURL)); v != "" {
		c.Cache.RedisURL = v
		c.Cache.Backend = BackendRedis
	}
	if v := strings.TrimSpace(getenv(EnvCacheBackend)); v != "" {
		c.Cache.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvCacheDir)); v != "" {
		c.Cache.Dir = v
	}
	if v := strings.TrimSpace(getenv(EnvRole)); v != "" {
		c.Access.Role = v
	}
	if v := strings.TrimSpace(getenv(EnvPolicy)); v != "" {
		c.Access.Policy = v
	}
}

// Validate checks enumerated values. Sizes are checked by the pipeline.
func (c *Config) Validate() error {
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis needs redis_url or %s", EnvRedisURL)
	}
	if _, err := orgtree.ParseOrphanPolicy(c.Layout.Orphans); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	_, err := access.ParseRole(c.Access.Role)
	return err
}

// PipelineOptions returns the options the file and environment describe.
func (c *Config) PipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		VizType:           graph.VizTypeChart,
		NodeWidth:         c.Layout.NodeWidth,
		NodeHeight:        c.Layout.NodeHeight,
		HorizontalSpacing: c.Layout.HorizontalSpacing,
		VerticalSpacing:   c.Layout.VerticalSpacing,
		DepartmentGap:     c.Layout.DepartmentGap,
		Orphans:           c.Layout.Orphans,
		BreakCycles:       c.Layout.BreakCycles,
		Formats:           slices.Clone(c.Render.Formats),
		Title:             c.Render.Title,
		Legend:            c.Render.Legend,
		Popups:            c.Render.Popups,
		Clusters:          c.Render.Clusters,
		Detailed:          c.Render.Detailed,
		Scale:             c.Render.Scale,
		Role:              c.Access.Role,
	}
	if c.Layout.Grouped {
		opts.VizType = graph.VizTypeDepartments
	}
	return opts
}
