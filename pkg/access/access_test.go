package access

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/orgchart/pkg/errors"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"", RoleEmployee, false},
		{"admin", RoleAdmin, false},
		{" HR_Manager ", RoleHRManager, false},
		{"it_admin", RoleITAdmin, false},
		{"ceo", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidRole) {
				t.Errorf("ParseRole(%q) code = %s, want INVALID_ROLE", tt.in, errors.GetCode(err))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveDefaultPolicy(t *testing.T) {
	tests := []struct {
		role Role
		want []Capability
	}{
		{RoleAdmin, []Capability{CapViewChart, CapViewDetails, CapManageUsers, CapManageAccess}},
		{RoleHRManager, []Capability{CapViewChart, CapViewDetails, CapManageUsers, CapManageAccess}},
		{RoleITAdmin, []Capability{CapViewChart, CapManageAccess}},
		{RoleEmployee, []Capability{CapViewChart}},
	}
	en, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			caps, err := en.Resolve(tt.role)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if diff := cmp.Diff(tt.want, caps.List()); diff != "" {
				t.Errorf("capabilities mismatch (-want +got):\n%s", diff)
			}
			if caps.Role != tt.role {
				t.Errorf("Role = %q, want %q", caps.Role, tt.role)
			}
		})
	}
}

func TestCapabilityPolicyTerms(t *testing.T) {
	tests := []struct {
		cap         Capability
		act, object string
	}{
		{CapViewChart, "view", "chart"},
		{CapViewDetails, "view", "details"},
		{CapManageUsers, "manage", "users"},
		{CapManageAccess, "manage", "access"},
	}
	for _, tt := range tests {
		t.Run(string(tt.cap), func(t *testing.T) {
			if got := tt.cap.action(); got != tt.act {
				t.Errorf("action() = %q, want %q", got, tt.act)
			}
			if got := tt.cap.object(); got != tt.object {
				t.Errorf("object() = %q, want %q", got, tt.object)
			}
		})
	}
}

func TestEveryRoleMayViewChart(t *testing.T) {
	for _, role := range Roles {
		caps, err := Resolve(role)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", role, err)
		}
		if !caps.Has(CapViewChart) {
			t.Errorf("%s cannot view the chart: %v", role, caps.List())
		}
	}
}

func TestResolveUnknownRoleGrantsNothing(t *testing.T) {
	caps, err := Resolve(Role("contractor"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(caps.List()) != 0 {
		t.Errorf("List() = %v, want empty", caps.List())
	}
	if caps.Has(CapViewChart) {
		t.Error("unknown role should not view the chart")
	}
}

func TestZeroCapabilities(t *testing.T) {
	var caps Capabilities
	if caps.Has(CapViewDetails) {
		t.Error("zero Capabilities should grant nothing")
	}
}

func TestLoadEnforcer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.csv")
	policy := "p, role:employee, view, chart\np, role:employee, view, details\n"
	if err := os.WriteFile(path, []byte(policy), 0o644); err != nil {
		t.Fatal(err)
	}

	en, err := LoadEnforcer(path)
	if err != nil {
		t.Fatalf("LoadEnforcer: %v", err)
	}
	caps, err := en.Resolve(RoleEmployee)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !caps.Has(CapViewDetails) {
		t.Error("custom policy should grant view_details to employees")
	}
	if caps.Has(CapManageUsers) {
		t.Error("custom policy should not grant manage_users")
	}
}

func TestLoadEnforcerEmptyPath(t *testing.T) {
	_, err := LoadEnforcer("")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("LoadEnforcer(\"\") error = %v, want INVALID_PATH", err)
	}
}
