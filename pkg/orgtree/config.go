package orgtree

import (
	"strings"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// Default layout constants in layout units.
const (
	DefaultNodeWidth         = 200.0
	DefaultNodeHeight        = 120.0
	DefaultHorizontalSpacing = 40.0
	DefaultVerticalSpacing   = 80.0
	DefaultMargin            = 100.0
	DefaultMinWidth          = 800.0
	DefaultMinHeight         = 600.0

	// The department-grouped view spreads trees further apart.
	DepartmentHorizontalSpacing = 50.0
	DepartmentVerticalSpacing   = 150.0
	DefaultDepartmentGap        = 100.0
)

// OrphanPolicy decides what happens to an employee whose manager reference
// does not resolve.
type OrphanPolicy string

const (
	// OrphanDrop leaves orphans out of the chart.
	OrphanDrop OrphanPolicy = "drop"
	// OrphanPromote makes orphans roots.
	OrphanPromote OrphanPolicy = "promote"
)

// ParseOrphanPolicy converts "drop" or "promote" to a policy. Empty means drop.
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch p := OrphanPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return OrphanDrop, nil
	case OrphanDrop, OrphanPromote:
		return p, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidPolicy, "invalid orphan policy %q (must be drop or promote)", s)
	}
}

// Config holds the layout constants. Zero fields take their defaults.
type Config struct {
	NodeWidth         float64 `json:"node_width"`
	NodeHeight        float64 `json:"node_height"`
	HorizontalSpacing float64 `json:"horizontal_spacing"`
	VerticalSpacing   float64 `json:"vertical_spacing"`

	// Margin pads the canvas beyond the right- and bottom-most node.
	Margin float64 `json:"margin"`
	// MinWidth and MinHeight floor the canvas, also for an empty chart.
	MinWidth  float64 `json:"min_width"`
	MinHeight float64 `json:"min_height"`
	// DepartmentGap separates department forests in the grouped view.
	DepartmentGap float64 `json:"department_gap,omitempty"`

	Orphans     OrphanPolicy `json:"orphans,omitempty"`
	BreakCycles bool         `json:"break_cycles,omitempty"`
}

// DefaultConfig returns the single-tree layout constants.
func DefaultConfig() Config {
	return Config{
		NodeWidth:         DefaultNodeWidth,
		NodeHeight:        DefaultNodeHeight,
		HorizontalSpacing: DefaultHorizontalSpacing,
		VerticalSpacing:   DefaultVerticalSpacing,
		Margin:            DefaultMargin,
		MinWidth:          DefaultMinWidth,
		MinHeight:         DefaultMinHeight,
		DepartmentGap:     DefaultDepartmentGap,
		Orphans:           OrphanDrop,
	}
}

// DepartmentConfig returns the constants of the department-grouped view.
func DepartmentConfig() Config {
	c := DefaultConfig()
	c.HorizontalSpacing = DepartmentHorizontalSpacing
	c.VerticalSpacing = DepartmentVerticalSpacing
	return c
}

// WithDefaults returns c with every zero field replaced by its default.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.NodeWidth == 0 {
		c.NodeWidth = d.NodeWidth
	}
	if c.NodeHeight == 0 {
		c.NodeHeight = d.NodeHeight
	}
	if c.HorizontalSpacing == 0 {
		c.HorizontalSpacing = d.HorizontalSpacing
	}
	if c.VerticalSpacing == 0 {
		c.VerticalSpacing = d.VerticalSpacing
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.MinWidth == 0 {
		c.MinWidth = d.MinWidth
	}
	if c.MinHeight == 0 {
		c.MinHeight = d.MinHeight
	}
	if c.DepartmentGap == 0 {
		c.DepartmentGap = d.DepartmentGap
	}
	if c.Orphans == "" {
		c.Orphans = d.Orphans
	}
	return c
}

// Validate rejects non-positive node sizes, negative spacing and unknown
// orphan policies. Call it after [Config.WithDefaults].
func (c Config) Validate() error {
	if c.NodeWidth <= 0 || c.NodeHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "node size must be positive (got %gx%g)", c.NodeWidth, c.NodeHeight)
	}
	if c.HorizontalSpacing < 0 || c.VerticalSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing must not be negative")
	}
	if c.Margin < 0 || c.MinWidth < 0 || c.MinHeight < 0 || c.DepartmentGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin and canvas minimums must not be negative")
	}
	if _, err := ParseOrphanPolicy(string(c.Orphans)); err != nil {
		return err
	}
	return nil
}

// LevelHeight is the vertical distance between two consecutive levels.
func (c Config) LevelHeight() float64 { return c.NodeHeight + c.VerticalSpacing }
