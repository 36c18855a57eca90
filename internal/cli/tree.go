package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// treeCommand prints the reporting forest as an indented tree.
func (c *CLI) treeCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "tree [roster]",
		Short: "Print the reporting lines as a text tree",
		Long: `Print the reporting lines as a text tree.

Each line shows the employee's name, position and a status dot. With
--grouped, the forest of each department is printed under a department
heading, and employees whose manager sits in another department start a
new tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			flags.apply(cmd, &opts)
			opts.Roster = args[0]
			return c.runTree(cmd.Context(), opts, flags.noCache)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) runTree(ctx context.Context, opts pipeline.Options, noCache bool) error {
	chart, _, _, err := c.loadChart(ctx, opts, noCache)
	if err != nil {
		return err
	}
	if chart.Empty() {
		printWarning("Nothing to show")
		printDiagnostics(chart.Diagnostics)
		return nil
	}
	fmt.Fprintln(c.out, renderTree(chart))
	printDiagnostics(chart.Diagnostics)
	return nil
}

var (
	styleTreeEnum = lipgloss.NewStyle().Foreground(colorDim).MarginRight(1)
	styleTreeName = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleTreeDept = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// renderTree lays the chart out as text. Department charts get one
// subtree per department.
func renderTree(c *orgtree.Chart) string {
	t := tree.New().Enumerator(tree.RoundedEnumerator).EnumeratorStyle(styleTreeEnum)
	if c.Departments != nil {
		for _, d := range c.Departments {
			name := d.Name
			if name == "" {
				name = "Unassigned"
			}
			sub := tree.Root(styleTreeDept.Render(name)).
				Enumerator(tree.RoundedEnumerator).EnumeratorStyle(styleTreeEnum)
			for _, r := range d.Roots {
				sub.Child(subtree(r))
			}
			t.Child(sub)
		}
		return t.String()
	}
	for _, r := range c.Roots {
		t.Child(subtree(r))
	}
	return t.String()
}

func subtree(n *orgtree.Node) any {
	if n.IsLeaf() {
		return nodeLine(n.Employee)
	}
	t := tree.Root(nodeLine(n.Employee)).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(styleTreeEnum)
	for _, ch := range n.Children {
		t.Child(subtree(ch))
	}
	return t
}

// nodeLine is "● Name · Position".
func nodeLine(e roster.Employee) string {
	dot := statusStyle(e.Status).Render("●")
	parts := []string{dot + " " + styleTreeName.Render(e.FullName())}
	if title := e.Title(); title != "" {
		parts = append(parts, StyleDim.Render(title))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
