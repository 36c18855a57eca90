package cache

// Keyer derives cache keys. Implementations must return the same key for
// the same inputs and different keys whenever an option changes the output.
type Keyer interface {
	// LayoutKey identifies a computed layout of a roster.
	LayoutKey(rosterHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists everything that changes a layout besides the roster.
type LayoutKeyOpts struct {
	VizType           string  `json:"viz_type"`
	NodeWidth         float64 `json:"node_width"`
	NodeHeight        float64 `json:"node_height"`
	HorizontalSpacing float64 `json:"horizontal_spacing"`
	VerticalSpacing   float64 `json:"vertical_spacing"`
	DepartmentGap     float64 `json:"department_gap"`
	Orphans           string  `json:"orphans"`
	BreakCycles       bool    `json:"break_cycles"`
	// Filter is the canonical form of the roster filter.
	Filter string `json:"filter"`
}

// ArtifactKeyOpts lists everything that changes a rendered artifact
// besides the layout.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Popups   bool    `json:"popups"`
	Legend   bool    `json:"legend"`
	Title    string  `json:"title"`
	Clusters bool    `json:"clusters"`
	Detailed bool    `json:"detailed"`
	Scale    float64 `json:"scale"`
}

// DefaultKeyer hashes the options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(rosterHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", rosterHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, layoutHash, opts)
}
