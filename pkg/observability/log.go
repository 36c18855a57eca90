package observability

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failures are
// logged at warn level so they show without --verbose.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

// Register installs h for pipeline, cache and watch events.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetWatchHooks(h)
}

func (h *LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "took", d.Round(time.Microsecond))
	if err != nil {
		h.logger.Warn(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" done", kv...)
}

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("load roster", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, employees int, d time.Duration, err error) {
	h.done("load", d, err, "path", path, "employees", employees)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, vizType string, employees int) {
	h.logger.Debug("compute layout", "viz", vizType, "employees", employees)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, vizType string, placed int, d time.Duration, err error) {
	h.done("layout", d, err, "viz", vizType, "placed", placed)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render", "formats", strings.Join(formats, ","))
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", strings.Join(formats, ","))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h *LogHooks) OnChange(_ context.Context, path, op string) {
	h.logger.Debug("roster changed", "path", path, "op", op)
}

func (h *LogHooks) OnReload(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("reload failed", "path", path, "err", err)
		return
	}
	h.logger.Info("reloaded", "path", path, "took", d.Round(time.Millisecond))
}
