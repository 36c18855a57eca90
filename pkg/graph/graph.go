package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/orgchart/pkg/roster"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a roster to indented node-link JSON.
func MarshalGraph(r *roster.Roster) ([]byte, error) {
	return json.MarshalIndent(FromRoster(r), "", "  ")
}

// WriteGraph writes a roster as node-link JSON to w.
func WriteGraph(r *roster.Roster, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromRoster(r)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a roster as node-link JSON to path.
func WriteGraphFile(r *roster.Roster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(r, f)
}

// ReadGraph decodes node-link JSON into a roster.
func ReadGraph(rd io.Reader) (*roster.Roster, error) {
	var g Graph
	if err := json.NewDecoder(rd).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToRoster(g)
}
