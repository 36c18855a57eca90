package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// defaultDebounce batches the burst of events an editor save produces.
const defaultDebounce = 200 * time.Millisecond

// watchCommand re-renders the chart whenever the roster changes.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		lf layoutFlags
		rf renderFlags
	)

	cmd := &cobra.Command{
		Use:   "watch [roster]",
		Short: "Re-render the chart whenever the roster changes",
		Long: `Re-render the chart whenever the roster changes.

The roster is rendered once on start, then again after every save. Rapid
successive writes are collapsed into a single rebuild. A roster that fails
to load keeps the last good artifacts on disk. Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			lf.apply(cmd, &opts)
			rf.apply(cmd, &opts)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			en, err := c.enforcer()
			if err != nil {
				return err
			}
			opts.Enforcer = en
			opts.Roster = args[0]
			return c.runWatch(cmd.Context(), opts, rf.output, lf.noCache)
		},
	}

	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	rebuild := func(ctx context.Context) error {
		prog.restart()
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			printError("%v", err)
			return err
		}
		prog.done("rebuilt chart",
			"employees", result.Stats.Employees,
			"placed", result.Stats.Placed,
			"cached", result.CacheInfo.LayoutHit)
		if err := writeArtifacts(artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   opts.Formats,
			input:     opts.Roster,
			output:    output,
		}); err != nil {
			return err
		}
		printStats(result.Stats.Employees, result.Stats.Placed, result.CacheInfo.LayoutHit)
		return nil
	}

	_ = rebuild(ctx)
	printInfo("Watching %s", opts.Roster)

	w := &rosterWatcher{
		path:     opts.Roster,
		debounce: defaultDebounce,
		rebuild:  rebuild,
		logger:   logger,
	}
	if err := w.run(ctx); err != nil {
		return err
	}
	printNewline()
	printInfo("Stopped watching")
	return nil
}

// rosterWatcher calls rebuild after the roster file settles. The parent
// directory is watched so that editors replacing the file via rename are
// still seen.
type rosterWatcher struct {
	path     string
	debounce time.Duration
	rebuild  func(context.Context) error
	logger   *log.Logger
}

// run blocks until ctx is cancelled. Rebuild errors are reported through
// the watch hooks and never stop the loop.
func (w *rosterWatcher) run(ctx context.Context) error {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	hooks := observability.Watch()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			hooks.OnChange(ctx, w.path, ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)

		case <-timer.C:
			start := time.Now()
			err := w.rebuild(ctx)
			hooks.OnReload(ctx, w.path, time.Since(start), err)
		}
	}
}
