package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// Status is the employment status of an employee.
type Status string

// Employment statuses.
const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusPending    Status = "pending"
	StatusOnboarding Status = "onboarding"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusActive, StatusOnboarding, StatusPending, StatusInactive}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusOnboarding:
		return true
	}
	return false
}

// ParseStatus converts a case-insensitive string to a Status.
// An empty string yields StatusActive.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return StatusActive, nil
	}
	if !st.Valid() {
		return "", errors.New(errors.ErrCodeInvalidStatus,
			"invalid status %q (must be one of: active, inactive, pending, onboarding)", s)
	}
	return st, nil
}

// RoleKind classifies a role title for icon selection.
type RoleKind int

const (
	// RoleIndividual is any role that is neither executive nor managerial.
	RoleIndividual RoleKind = iota
	// RoleManager covers managers and directors.
	RoleManager
	// RoleExecutive covers CEOs and chief officers.
	RoleExecutive
)

// String returns the lowercase name of the kind.
func (k RoleKind) String() string {
	switch k {
	case RoleExecutive:
		return "executive"
	case RoleManager:
		return "manager"
	default:
		return "individual"
	}
}

// Employee is a single roster record.
//
// Only ID and ManagerID drive the chart structure; every other field is
// display data passed through to renderers.
type Employee struct {
	ID                 string `json:"id" yaml:"id"`
	ManagerID          string `json:"managerId,omitempty" yaml:"managerId,omitempty"`
	FirstName          string `json:"firstName" yaml:"firstName"`
	LastName           string `json:"lastName" yaml:"lastName"`
	Email              string `json:"email,omitempty" yaml:"email,omitempty"`
	Role               string `json:"role,omitempty" yaml:"role,omitempty"`
	Position           string `json:"position,omitempty" yaml:"position,omitempty"`
	Department         string `json:"department,omitempty" yaml:"department,omitempty"`
	Status             Status `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate          string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	CompanyID          string `json:"companyId,omitempty" yaml:"companyId,omitempty"`
	OnboardingProgress *int   `json:"onboardingProgress,omitempty" yaml:"onboardingProgress,omitempty"`
	LastLogin          string `json:"lastLogin,omitempty" yaml:"lastLogin,omitempty"`
}

// HasManager reports whether the employee names a manager.
func (e Employee) HasManager() bool { return e.ManagerID != "" }

// FullName returns "First Last", falling back to the ID when both are empty.
func (e Employee) FullName() string {
	name := strings.TrimSpace(e.FirstName + " " + e.LastName)
	if name == "" {
		return e.ID
	}
	return name
}

// Initials returns the uppercase first letters of first and last name.
func (e Employee) Initials() string {
	var b strings.Builder
	for _, part := range []string{e.FirstName, e.LastName} {
		if r, _ := utf8.DecodeRuneInString(part); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	if b.Len() == 0 && e.ID != "" {
		r, _ := utf8.DecodeRuneInString(e.ID)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Title returns the position, or the role when no position is set.
func (e Employee) Title() string {
	if e.Position != "" {
		return e.Position
	}
	return e.Role
}

// RoleKind classifies the employee's role title.
func (e Employee) RoleKind() RoleKind {
	role := strings.ToLower(e.Role)
	switch {
	case strings.Contains(role, "ceo"), strings.Contains(role, "chief"):
		return RoleExecutive
	case strings.Contains(role, "manager"), strings.Contains(role, "director"):
		return RoleManager
	default:
		return RoleIndividual
	}
}

// Progress returns the onboarding progress and whether it is set.
func (e Employee) Progress() (int, bool) {
	if e.OnboardingProgress == nil {
		return 0, false
	}
	return *e.OnboardingProgress, true
}

// Validate checks the record in isolation. Manager references are not
// resolved here.
func (e Employee) Validate() error {
	if err := errors.ValidateEmployeeID(e.ID); err != nil {
		return err
	}
	if e.ManagerID != "" {
		if err := errors.ValidateEmployeeID(e.ManagerID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidEmployee, err, "employee %q has invalid managerId", e.ID)
		}
	}
	if e.Status != "" && !e.Status.Valid() {
		return errors.New(errors.ErrCodeInvalidStatus, "employee %q has invalid status %q", e.ID, e.Status)
	}
	if p, ok := e.Progress(); ok {
		if err := errors.ValidateProgress(p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidEmployee, err, "employee %q", e.ID)
		}
	}
	return nil
}

// IntPtr returns a pointer to v. Handy for OnboardingProgress literals.
func IntPtr(v int) *int { return &v }
