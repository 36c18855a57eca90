package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// browseCommand opens the interactive chart browser.
func (c *CLI) browseCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "browse [roster]",
		Short: "Explore the chart interactively",
		Long: `Explore the chart interactively.

Navigate the reporting tree with the arrow keys, expand and collapse teams,
and see each employee's card. Email, start date, manager and onboarding
progress are shown only for roles with the view_details capability.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			flags.apply(cmd, &opts)
			opts.Roster = args[0]
			return c.runBrowse(cmd.Context(), opts, flags.noCache)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts pipeline.Options, noCache bool) error {
	chart, _, caps, err := c.loadChart(ctx, opts, noCache)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(NewBrowseModel(chart, caps), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}
