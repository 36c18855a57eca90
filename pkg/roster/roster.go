package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// Format identifies the encoding of a roster file.
type Format string

// Supported roster encodings.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported roster file %q (must end in .yaml, .yml or .json)", filepath.Base(path))
	}
}

// Roster is an ordered employee snapshot.
type Roster struct {
	Employees []Employee `json:"employees" yaml:"employees"`
}

// New wraps employees in a Roster without validating them.
func New(employees ...Employee) *Roster {
	return &Roster{Employees: employees}
}

// Len returns the number of employees.
func (r *Roster) Len() int { return len(r.Employees) }

// Load reads, decodes and validates a roster file.
func Load(path string) (*Roster, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "roster %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	r, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates roster bytes.
func Parse(data []byte, format Format) (*Roster, error) {
	var (
		r   *Roster
		err error
	)
	switch format {
	case FormatYAML:
		r, err = decodeYAML(data)
	case FormatJSON:
		r, err = decodeJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported roster format %q", format)
	}
	if err != nil {
		return nil, err
	}
	r.normalize()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeYAML(data []byte) (*Roster, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode yaml")
	}
	if len(doc.Content) == 0 {
		return &Roster{}, nil
	}

	r := &Roster{}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&r.Employees); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode yaml")
		}
	case yaml.MappingNode:
		if err := root.Decode(r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidRoster, "roster must be a list or an object with an employees key")
	}
	return r, nil
}

func decodeJSON(data []byte) (*Roster, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &Roster{}, nil
	}

	r := &Roster{}
	var err error
	if trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &r.Employees)
	} else {
		err = json.Unmarshal(trimmed, r)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode json")
	}
	return r, nil
}

// normalize trims whitespace the YAML author may have left around IDs and
// lowercases statuses. Empty statuses become active.
func (r *Roster) normalize() {
	for i := range r.Employees {
		e := &r.Employees[i]
		e.ID = strings.TrimSpace(e.ID)
		e.ManagerID = strings.TrimSpace(e.ManagerID)
		if st, err := ParseStatus(string(e.Status)); err == nil {
			e.Status = st
		}
	}
}

// Validate checks every record and rejects duplicate IDs. All failures are
// reported together.
func (r *Roster) Validate() error {
	var list errors.List
	seen := make(map[string]int, len(r.Employees))
	for i, e := range r.Employees {
		if err := e.Validate(); err != nil {
			list.Add(fmt.Errorf("employee #%d: %w", i+1, err))
			continue
		}
		if prev, ok := seen[e.ID]; ok {
			list.Add(errors.New(errors.ErrCodeDuplicateID,
				"duplicate employee id %q (records #%d and #%d)", e.ID, prev+1, i+1))
			continue
		}
		seen[e.ID] = i
	}
	return list.Err()
}

// Lookup returns the employee with the given ID.
func (r *Roster) Lookup(id string) (Employee, bool) {
	for _, e := range r.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Departments returns the distinct departments in first-appearance order.
// Employees without a department are grouped under the empty string.
func (r *Roster) Departments() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.Employees {
		if !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	return out
}

// Managers returns the employees that at least one other employee reports to,
// in roster order.
func (r *Roster) Managers() []Employee {
	referenced := make(map[string]bool)
	for _, e := range r.Employees {
		if e.ManagerID != "" && e.ManagerID != e.ID {
			referenced[e.ManagerID] = true
		}
	}
	var out []Employee
	for _, e := range r.Employees {
		if referenced[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// Reports returns the direct reports of id in roster order.
func (r *Roster) Reports(id string) []Employee {
	var out []Employee
	for _, e := range r.Employees {
		if e.ManagerID == id && e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// Marshal encodes the roster in the given format.
func (r *Roster) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported roster format %q", format)
	}
}
