package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// Runner encapsulates pipeline execution with caching.
//
// Memo holds recently computed layouts in process, which is what the watch
// loop hits when a roster edit touches nothing that changes the filtered
// result. Cache persists layouts and artifacts across runs.
//
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Memo   *cache.MemoryCache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
	if memo, err := cache.NewMemoryCache(cache.DefaultMemorySize); err == nil {
		r.Memo = memo
	}
	return r
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	opts.Logger = opts.Logger.With("run", result.RunID[:8])

	caps, err := ResolveCapabilities(opts)
	if err != nil {
		return nil, err
	}
	if !caps.Has(access.CapViewChart) {
		return nil, errors.New(errors.ErrCodeForbidden, "role %q may not view the chart", caps.Role)
	}
	result.Capabilities = caps

	// Stage 1: Load
	loadStart := time.Now()
	rs, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Roster = rs
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Employees = rs.Len()

	opts.Logger.Info("loaded roster",
		"employees", rs.Len(),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, info, err := r.GenerateLayoutWithCacheInfo(ctx, rs, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.RosterHash = info.rosterHash
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Placed = len(layout.Blocks)
	result.CacheInfo.MemoHit = info.MemoHit
	result.CacheInfo.LayoutHit = info.LayoutHit

	opts.Logger.Info("computed layout",
		"placed", len(layout.Blocks),
		"depth", layout.Depth,
		"cached", info.LayoutHit,
		"duration", result.Stats.LayoutTime)
	logDiagnostics(opts, layout.Diagnostics)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.render(ctx, layout, rs, caps, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveCapabilities resolves the viewer role of opts against opts.Enforcer,
// or the default policy when it is nil.
func ResolveCapabilities(opts Options) (access.Capabilities, error) {
	role, err := access.ParseRole(opts.Role)
	if err != nil {
		return access.Capabilities{}, err
	}
	en := opts.Enforcer
	if en == nil {
		if en, err = access.NewEnforcer(); err != nil {
			return access.Capabilities{}, err
		}
	}
	return en.Resolve(role)
}

// Load reads the roster and applies the filter.
func (r *Runner) Load(ctx context.Context, opts Options) (*roster.Roster, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Roster)
	start := time.Now()

	rs, err := roster.Load(opts.Roster)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Roster, 0, time.Since(start), err)
		return nil, err
	}
	filtered := opts.Filter().Apply(rs)
	if filtered.Len() < rs.Len() {
		opts.Logger.Debug("filtered roster", "kept", filtered.Len(), "total", rs.Len())
	}
	hooks.OnLoadComplete(ctx, opts.Roster, filtered.Len(), time.Since(start), nil)
	return filtered, nil
}

// LayoutCacheInfo reports where a layout came from.
type LayoutCacheInfo struct {
	MemoHit   bool
	LayoutHit bool

	rosterHash string
}

// GenerateLayoutWithCacheInfo computes a layout, consulting the memo first
// and the cache second.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, rs *roster.Roster, opts Options) (graph.Layout, LayoutCacheInfo, error) {
	var info LayoutCacheInfo
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, info, err
	}

	rosterData, err := rs.Marshal(roster.FormatJSON)
	if err != nil {
		return graph.Layout{}, info, fmt.Errorf("serialize roster for cache key: %w", err)
	}
	info.rosterHash = cache.Hash(rosterData)
	cacheKey := r.Keyer.LayoutKey(info.rosterHash, opts.LayoutKeyOpts())
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		if r.Memo != nil {
			if data, hit, _ := r.Memo.Get(ctx, cacheKey); hit {
				if cached, err := graph.UnmarshalLayout(data); err == nil {
					cacheHooks.OnCacheHit(ctx, "memo")
					info.MemoHit, info.LayoutHit = true, true
					return cached, info, nil
				}
			}
		}
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := graph.UnmarshalLayout(data); err == nil {
				cacheHooks.OnCacheHit(ctx, "layout")
				r.memoize(ctx, cacheKey, data)
				info.LayoutHit = true
				return cached, info, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			opts.Logger.Warn("layout cache unavailable", "err", err)
		}
		cacheHooks.OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, rs.Len())
	start := time.Now()
	layout, err := GenerateLayout(rs, opts)
	hooks.OnLayoutComplete(ctx, opts.VizType, len(layout.Blocks), time.Since(start), err)
	if err != nil {
		return graph.Layout{}, info, err
	}

	if data, err := graph.MarshalLayout(layout); err == nil {
		r.memoize(ctx, cacheKey, data)
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("layout cache write failed", "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, "layout", len(data))
		}
	}

	return layout, info, nil
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, rs *roster.Roster, opts Options) (graph.Layout, error) {
	layout, _, err := r.GenerateLayoutWithCacheInfo(ctx, rs, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// rs may be nil when rendering a layout file on its own.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout graph.Layout, rs *roster.Roster, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	caps, err := ResolveCapabilities(opts)
	if err != nil {
		return nil, false, err
	}
	if !caps.Has(access.CapViewChart) {
		return nil, false, errors.New(errors.ErrCodeForbidden, "role %q may not view the chart", caps.Role)
	}
	return r.render(ctx, layout, rs, caps, opts)
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout graph.Layout, rs *roster.Roster, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, rs, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, layout graph.Layout, rs *roster.Roster, caps access.Capabilities, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	popups := opts.Popups && caps.Has(access.CapViewDetails)
	if opts.Popups && !popups {
		opts.Logger.Info("popups need view_details, rendering without them", "role", caps.Role)
	}

	// Compute cache key from layout data
	layoutData, err := graph.MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)
	cacheHooks := observability.Cache()

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, popups))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			cacheHooks.OnCacheMiss(ctx, "artifact")
			break
		}
		cacheHooks.OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromLayout(ctx, layout, rs, popups, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, popups))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			cacheHooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

func (r *Runner) memoize(ctx context.Context, key string, data []byte) {
	if r.Memo != nil {
		_ = r.Memo.Set(ctx, key, data, 0)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
