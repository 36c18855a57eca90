package svg

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"

	"github.com/matzehuels/orgchart/pkg/roster"
)

// Palette is the border and fill of a card.
type Palette struct {
	Border string
	Fill   string
	Dot    string
}

var palettes = map[roster.Status]Palette{
	roster.StatusActive:     {Border: "#34d399", Fill: "#ecfdf5", Dot: "#34d399"},
	roster.StatusOnboarding: {Border: "#60a5fa", Fill: "#eff6ff", Dot: "#60a5fa"},
	roster.StatusPending:    {Border: "#fbbf24", Fill: "#fffbeb", Dot: "#fbbf24"},
	roster.StatusInactive:   {Border: "#94a3b8", Fill: "#f8fafc", Dot: "#94a3b8"},
}

// StatusPalette returns the card colors for a status. Unknown statuses get
// the inactive palette.
func StatusPalette(s roster.Status) Palette {
	if p, ok := palettes[s]; ok {
		return p
	}
	return palettes[roster.StatusInactive]
}

// RoleGlyph returns the badge glyph for a role kind.
func RoleGlyph(k roster.RoleKind) string {
	switch k {
	case roster.RoleExecutive:
		return "♛"
	case roster.RoleManager:
		return "★"
	default:
		return "◎"
	}
}

const (
	connectorColor = "#e2e8f0"
	textStrong     = "#1e293b"
	textMuted      = "#475569"
	textFaint      = "#64748b"
	charWidth      = 0.55
)

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// truncate shortens s to fit width at the given font size.
func truncate(s string, width, fontSize float64) string {
	maxChars := max(3, int(width/(fontSize*charWidth)))
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxChars-1]) + "…"
}
