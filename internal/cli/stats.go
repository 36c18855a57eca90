package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// statsCommand creates the stats command: headline numbers and a
// per-department breakdown.
func (c *CLI) statsCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "stats [roster]",
		Short: "Show headcount, departments, managers and levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			flags.apply(cmd, &opts)
			opts.Roster = args[0]
			return c.runStats(cmd.Context(), opts, flags.noCache)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) runStats(ctx context.Context, opts pipeline.Options, noCache bool) error {
	chart, rs, _, err := c.loadChart(ctx, opts, noCache)
	if err != nil {
		return err
	}
	st := orgtree.ComputeStats(rs.Employees, chart)

	fmt.Fprintln(c.out, lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("employees", st.Employees),
		statCard("departments", st.Departments),
		statCard("managers", st.Managers),
		statCard("levels", st.Levels),
	))
	fmt.Fprintln(c.out, departmentTable(rs))
	if st.Placed != st.Employees {
		printDiagnostics(chart.Diagnostics)
	}
	return nil
}

// loadChart checks that the viewer may see the chart, then runs load and
// layout through a runner and rebuilds the chart.
func (c *CLI) loadChart(ctx context.Context, opts pipeline.Options, noCache bool) (*orgtree.Chart, *roster.Roster, access.Capabilities, error) {
	var caps access.Capabilities
	en, err := c.enforcer()
	if err != nil {
		return nil, nil, caps, err
	}
	opts.Enforcer = en
	if caps, err = pipeline.ResolveCapabilities(opts); err != nil {
		return nil, nil, caps, err
	}
	if !caps.Has(access.CapViewChart) {
		return nil, nil, caps, errors.New(errors.ErrCodeForbidden, "role %q may not view the chart", caps.Role)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, nil, caps, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	rs, err := runner.Load(ctx, opts)
	if err != nil {
		return nil, nil, caps, err
	}
	layout, err := runner.GenerateLayout(ctx, rs, opts)
	if err != nil {
		return nil, nil, caps, fmt.Errorf("compute layout: %w", err)
	}
	chart, err := graph.ToChart(layout)
	if err != nil {
		return nil, nil, caps, err
	}
	return chart, rs, caps, nil
}

// departmentTable counts employees per department and status.
func departmentTable(rs *roster.Roster) string {
	counts := make(map[string]map[roster.Status]int)
	for _, e := range rs.Employees {
		if counts[e.Department] == nil {
			counts[e.Department] = make(map[roster.Status]int)
		}
		counts[e.Department][e.Status]++
	}

	var rows [][]string
	for _, dept := range rs.Departments() {
		name := dept
		if name == "" {
			name = "Unassigned"
		}
		row := []string{name}
		total := 0
		for _, s := range roster.Statuses {
			n := counts[dept][s]
			total += n
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, append(row, strconv.Itoa(total)))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Department", "Active", "Onboarding", "Pending", "Inactive", "Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorWhite)
			default:
				return cellStyle.Foreground(colorCyan).Align(lipgloss.Right)
			}
		}).
		Render()
}
