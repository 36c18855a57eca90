// Package cli implements the orgchart command-line interface.
//
// The commands load an employee roster, lay out the reporting forest and
// write chart artifacts, or show the chart in the terminal. The CLI is built
// using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - layout: compute positions and write a layout.json
//   - render: render a roster or layout as SVG, Graphviz, PDF or PNG
//   - stats: headcount, departments, managers and levels
//   - tree: the reporting lines as a text tree
//   - browse: an interactive chart browser
//   - watch: re-render whenever the roster changes
//   - cache: clear or locate cached layouts and artifacts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Debug level also reports the caller,
// which is how pipeline warnings are traced back to a stage.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times repeated runs of one operation, such as the rebuilds of a
// watch session. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
	runs   int
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// restart starts timing the next run.
func (p *progress) restart() {
	p.start = time.Now()
}

// done logs msg with keyvals, the run number and the time since the last
// restart, rounded to the millisecond.
func (p *progress) done(msg string, keyvals ...any) {
	p.runs++
	keyvals = append(keyvals,
		"run", p.runs,
		"took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default when a command runs without it (as in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
