package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/render/svg"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// Palette. Employee statuses reuse the SVG renderer's colors so the
// terminal and the rendered chart agree.
var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success, cached
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2).
			Width(16).
			Align(lipgloss.Center)
)

// statusKind is the leading icon of a status line.
type statusKind struct {
	icon  string
	style lipgloss.Style
}

var (
	kindSuccess = statusKind{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	kindError   = statusKind{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	kindWarning = statusKind{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	kindInfo    = statusKind{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

// uiOut receives status lines. Command results go to CLI.out instead.
var uiOut io.Writer = os.Stdout

func statusLine(k statusKind, msg string) {
	fmt.Fprintln(uiOut, k.style.Render(k.icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	statusLine(kindSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	statusLine(kindError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	statusLine(kindWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	statusLine(kindInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact path.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printStats prints "N employees · M placed · cached" under a result.
// The placed count only appears when the layout left someone out.
func printStats(employees, placed int, cached bool) {
	var parts []string
	if employees > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d employees", employees)))
	}
	if placed != employees {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d placed", placed)))
	}
	if cached {
		parts = append(parts, kindSuccess.style.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	fmt.Fprintln(uiOut, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printDiagnostics summarizes what the layout left out.
func printDiagnostics(d orgtree.Diagnostics) {
	if len(d.Orphans) > 0 {
		printWarning("%d with unknown manager: %s", len(d.Orphans), strings.Join(d.Orphans, ", "))
	}
	for _, cycle := range d.Cycles {
		printWarning("manager cycle: %s", strings.Join(cycle, " → "))
	}
	if len(d.Unreachable) > 0 {
		printWarning("%d not reachable from any root: %s", len(d.Unreachable), strings.Join(d.Unreachable, ", "))
	}
	if len(d.Duplicates) > 0 {
		printWarning("duplicate ids: %s", strings.Join(d.Duplicates, ", "))
	}
	if len(d.Promoted) > 0 {
		printDetail("promoted to roots: %s", strings.Join(d.Promoted, ", "))
	}
}

// statCard renders one boxed number with a label underneath.
func statCard(label string, value int) string {
	return styleCard.Render(
		StyleNumber.Bold(true).Render(fmt.Sprintf("%d", value)) + "\n" + StyleDim.Render(label),
	)
}

// statusStyle colors text by employee status.
func statusStyle(s roster.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(svg.StatusPalette(s).Border))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(uiOut)
}
