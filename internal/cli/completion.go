package cli

import (
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for orgchart and print it to stdout.

Besides subcommands, the scripts complete --format, --role, --status and
--orphans values and roster files.

  bash:       source <(orgchart completion bash)
  zsh:        orgchart completion zsh > "${fpath[1]}/_orgchart"
  fish:       orgchart completion fish | source
  powershell: orgchart completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.out, true)
			case "zsh":
				return root.GenZshCompletion(c.out)
			case "fish":
				return root.GenFishCompletion(c.out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.out)
			}
		},
	}
}

// rosterExtensions are the files offered for a roster argument.
var rosterExtensions = []string{"yaml", "yml", "json"}

// completeRoster offers roster files for the first positional argument.
func completeRoster(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return rosterExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeRoles offers the built-in viewer roles.
func completeRoles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	roles := make([]string, len(access.Roles))
	for i, r := range access.Roles {
		roles[i] = string(r)
	}
	return roles, cobra.ShellCompDirectiveNoFileComp
}

// completeStatuses offers the employee statuses accepted by --status.
func completeStatuses(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	statuses := make([]string, len(roster.Statuses))
	for i, s := range roster.Statuses {
		statuses[i] = string(s)
	}
	return statuses, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the last element of a comma-separated format
// list, skipping formats already named.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, used := "", []string(nil)
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		used = strings.Split(toComplete[:i], ",")
	}

	var out []string
	for f := range pipeline.ValidFormats {
		if !slices.Contains(used, f) {
			out = append(out, prefix+f)
		}
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func registerLayoutCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("role", completeRoles)
	_ = cmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = cmd.RegisterFlagCompletionFunc("orphans", cobra.FixedCompletions(
		[]string{"drop", "promote"}, cobra.ShellCompDirectiveNoFileComp))
	if cmd.ValidArgsFunction == nil {
		cmd.ValidArgsFunction = completeRoster
	}
}

func registerRenderCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}
