package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func TestCompleteFormats(t *testing.T) {
	got, directive := completeFormats(nil, nil, "svg,p")
	for _, c := range got {
		if !strings.HasPrefix(c, "svg,") {
			t.Errorf("completion %q lost the prefix", c)
		}
		if c == "svg,svg" {
			t.Error("already named format offered again")
		}
	}
	if len(got) != 6 {
		t.Errorf("got %d completions, want 6: %v", len(got), got)
	}
	if directive&cobra.ShellCompDirectiveNoSpace == 0 {
		t.Error("format completion should not append a space")
	}
}

func TestCompleteRolesAndStatuses(t *testing.T) {
	roles, _ := completeRoles(nil, nil, "")
	if diff := cmp.Diff([]string{"admin", "hr_manager", "it_admin", "employee"}, roles); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}
	statuses, _ := completeStatuses(nil, nil, "")
	if diff := cmp.Diff([]string{"active", "onboarding", "pending", "inactive"}, statuses); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteRosterOnlyFirstArg(t *testing.T) {
	exts, directive := completeRoster(nil, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt || len(exts) == 0 {
		t.Errorf("first arg: got %v, %v", exts, directive)
	}
	if got, _ := completeRoster(nil, []string{"org.yaml"}, ""); got != nil {
		t.Errorf("second arg: got %v, want nothing", got)
	}
}

func TestCompletionCommandWritesScript(t *testing.T) {
	out, err := runCommand(t, "completion", "fish")
	if err != nil {
		t.Fatalf("completion fish: %v", err)
	}
	if !strings.Contains(out, "orgchart") {
		t.Error("fish script does not mention the program")
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	if _, err := runCommand(t, "completion", "tcsh"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}
