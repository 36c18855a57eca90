// Package access resolves a viewer role to the capabilities it grants.
//
// Roles are checked once, at the boundary, by a casbin enforcer. Everything
// downstream receives a [Capabilities] value and asks [Capabilities.Has];
// no rendering code compares role strings.
//
//	caps, err := access.Resolve(access.RoleEmployee)
//	if caps.Has(access.CapViewDetails) {
//	    // include contact details
//	}
package access

import (
	"slices"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// Role is a viewer role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHRManager Role = "hr_manager"
	RoleITAdmin   Role = "it_admin"
	RoleEmployee  Role = "employee"
)

// Roles lists the built-in roles.
var Roles = []Role{RoleAdmin, RoleHRManager, RoleITAdmin, RoleEmployee}

// ParseRole normalizes a role name. Empty means employee. Unknown names are
// accepted only by enforcers with a custom policy, so ParseRole rejects
// them.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RoleEmployee, nil
	}
	if !slices.Contains(Roles, r) {
		return "", errors.New(errors.ErrCodeInvalidRole, "unknown role %q (must be admin, hr_manager, it_admin or employee)", s)
	}
	return r, nil
}

// Capability is something a role may do.
type Capability string

const (
	CapViewChart    Capability = "view_chart"
	CapViewDetails  Capability = "view_details"
	CapManageUsers  Capability = "manage_users"
	CapManageAccess Capability = "manage_access"
)

// AllCapabilities lists every capability in display order.
var AllCapabilities = []Capability{CapViewChart, CapViewDetails, CapManageUsers, CapManageAccess}

// object and action split a capability into the enforcer's request.
// Capabilities are named action_object, e.g. view_chart.
func (c Capability) object() string {
	_, obj, _ := strings.Cut(string(c), "_")
	return obj
}

func (c Capability) action() string {
	act, _, _ := strings.Cut(string(c), "_")
	return act
}

// Capabilities is the resolved set for one role.
type Capabilities struct {
	Role Role
	set  map[Capability]bool
}

// Has reports whether the capability is granted.
func (c Capabilities) Has(cap Capability) bool { return c.set[cap] }

// List returns the granted capabilities in display order.
func (c Capabilities) List() []Capability {
	var out []Capability
	for _, cap := range AllCapabilities {
		if c.set[cap] {
			out = append(out, cap)
		}
	}
	return out
}

const rbacModel = `
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act && r.obj == p.obj
`

// DefaultPolicy grants view_chart to everyone, view_details and
// manage_users to HR managers, manage_access to HR managers and IT admins.
// Admins inherit both.
const DefaultPolicy = `
p, role:employee, view, chart
p, role:hr_manager, view, details
p, role:hr_manager, manage, users
p, role:hr_manager, manage, access
p, role:it_admin, manage, access
g, role:hr_manager, role:employee
g, role:it_admin, role:employee
g, role:admin, role:hr_manager
g, role:admin, role:it_admin
`

// Enforcer evaluates roles against a policy.
type Enforcer struct {
	e *casbin.Enforcer
}

// NewEnforcer loads the default policy.
func NewEnforcer() (*Enforcer, error) {
	return newEnforcer(stringadapter.NewAdapter(DefaultPolicy))
}

// LoadEnforcer loads a policy CSV file in the format of [DefaultPolicy].
func LoadEnforcer(path string) (*Enforcer, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return newEnforcer(fileadapter.NewAdapter(path))
}

func newEnforcer(adapter any) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "access model")
	}
	e, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPolicy, err, "load access policy")
	}
	return &Enforcer{e: e}, nil
}

// Resolve evaluates every capability for role once.
func (en *Enforcer) Resolve(role Role) (Capabilities, error) {
	caps := Capabilities{Role: role, set: make(map[Capability]bool)}
	sub := "role:" + string(role)
	for _, cap := range AllCapabilities {
		ok, err := en.e.Enforce(sub, cap.action(), cap.object())
		if err != nil {
			return Capabilities{}, errors.Wrap(errors.ErrCodeInvalidPolicy, err, "enforce %s for %s", cap, role)
		}
		caps.set[cap] = ok
	}
	return caps, nil
}

// Resolve resolves a built-in role against the default policy.
func Resolve(role Role) (Capabilities, error) {
	en, err := NewEnforcer()
	if err != nil {
		return Capabilities{}, err
	}
	return en.Resolve(role)
}
