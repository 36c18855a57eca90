package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// renderCommand creates the render command: roster or layout in, artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		lf layoutFlags
		rf renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [roster|layout.json]",
		Short: "Render an organization chart",
		Long: `Render an organization chart.

Given a roster, render runs the whole pipeline: load, layout, render. Given
a layout.json produced by 'layout' (or 'render -f json'), it only renders,
and the layout flags are ignored.

Formats:
  svg     chart with status colors, connectors, legend and hover popups
  json    positioned layout (input for a later render)
  dot     Graphviz source, optionally clustered by department
  gvsvg   Graphviz-rendered SVG
  pdf     the svg chart converted with rsvg-convert
  png     the svg chart converted with rsvg-convert
  graph   roster as nodes and reporting edges

Popups show contact details and onboarding progress; they are only drawn
when the --role has the view_details capability (admin, hr_manager).`,
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

			if isLayoutFile(args[0]) {
				return c.runVisualize(cmd.Context(), args[0], opts, rf.output, lf.noCache)
			}
			opts.Roster = args[0]
			return c.runRender(cmd.Context(), opts, rf.output, lf.noCache)
		},
	}

	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

// runRender executes the full pipeline on a roster.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Roster,
		output:    output,
	}); err != nil {
		return err
	}
	printStats(result.Stats.Employees, result.Stats.Placed, result.CacheInfo.LayoutHit)
	printDiagnostics(result.Layout.Diagnostics)
	return nil
}

// artifactWriteParams describes rendered artifacts to write to disk.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes each artifact. A single format goes to output
// verbatim when given; otherwise every format gets its extension appended
// to the base path.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + pipeline.FormatExt[format]
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}
		if path == p.input {
			printDetail("skipped %s (same as input)", path)
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printSuccess("Rendered %d artifact(s)", len(p.artifacts))
	return nil
}
