package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [roster]",
		Short: "Compute the chart layout of a roster",
		Long: `Compute the chart layout of a roster.

The layout command reads a roster (YAML or JSON), builds the reporting
forest and positions every employee. The output is a layout.json file (same
format as 'render -f json') that 'render' can turn into SVG, Graphviz, PDF
or PNG without recomputing positions.

Employees whose manager is unknown are dropped unless --orphans promote is
given. Manager cycles are reported and left out unless --break-cycles is
given.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			flags.apply(cmd, &opts)
			opts.Roster = args[0]
			return c.runLayout(cmd.Context(), opts, output, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <roster>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout loads the roster, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	rs, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	layout, info, err := runner.GenerateLayoutWithCacheInfo(ctx, rs, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		spinner.Stop()
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", opts.Roster) + pipeline.FormatExt[pipeline.FormatJSON]
	}

	if err := graph.WriteLayoutFile(layout, outputPath); err != nil {
		spinner.StopWithError("Layout not written")
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	spinner.StopWithSuccess("Layout complete")
	printFile(outputPath)
	printStats(rs.Len(), len(layout.Blocks), info.LayoutHit)
	printDiagnostics(layout.Diagnostics)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
