package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hmomeni/trimview"
	"github.com/hmomeni/trimview/imop"
	"github.com/hmomeni/trimview/utils"
)

// part is what a cell of the widget shows.
type part int

const (
	partNone part = iota
	partTrack
	partActive
	partProgress
	partLeft
	partRight
)

var glyphs = map[part]string{
	partNone:     " ",
	partTrack:    "─",
	partActive:   "━",
	partProgress: "━",
	partLeft:     " ",
	partRight:    " ",
}

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	parts  map[part]lipgloss.Style
}

// newStyles converts s to terminal colors. Terminals have no alpha channel, so the
// translucent colors are composed over the background first.
func newStyles(s trimview.Style) styles {
	over := imop.InitOp()
	opaque := func(c color.NRGBA) lipgloss.Color {
		return lipgloss.Color(utils.RGBAToHex(over.Mix(c, s.Background)))
	}
	bg := opaque(s.Background)
	handle := lipgloss.NewStyle().Bold(true).Background(opaque(s.Handle)).Foreground(opaque(s.Bracket))

	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		status: lipgloss.NewStyle().Faint(true),
		parts: map[part]lipgloss.Style{
			partNone:     lipgloss.NewStyle().Background(bg),
			partTrack:    lipgloss.NewStyle().Background(bg).Foreground(opaque(s.Track)),
			partActive:   lipgloss.NewStyle().Background(bg).Foreground(opaque(s.Active)),
			partProgress: lipgloss.NewStyle().Background(bg).Foreground(opaque(s.Progress)),
			partLeft:     handle,
			partRight:    handle,
		},
	}
}

// partAt returns what covers the center of the cell (x, row).
// Later paints win, in the order the widget is drawn.
func partAt(g trimview.Geometry, x, row int) part {
	px, py := float32(x)+0.5, float32(row)+0.5
	switch {
	case g.RightHandle.Contains(px, py):
		return partRight
	case g.LeftHandle.Contains(px, py):
		return partLeft
	case g.Progress.Contains(px, py):
		return partProgress
	case g.Active.Contains(px, py):
		return partActive
	case g.Track.Contains(px, py):
		return partTrack
	}
	return partNone
}

// cells returns the parts of every cell of the widget, row by row.
func cells(g trimview.Geometry, width int) [][]part {
	out := make([][]part, rows)
	for row := range out {
		out[row] = make([]part, width)
		for x := range out[row] {
			out[row][x] = partAt(g, x, row)
		}
	}
	return out
}

// widget renders the rows of the trim view. Consecutive cells of the same part are
// rendered with a single style call.
func (m *Model) widget() string {
	g := m.ctrl.Geometry()
	grid := cells(g, m.width)

	var b strings.Builder
	for row, parts := range grid {
		if row > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < len(parts); {
			p := parts[x]
			end := x
			var run strings.Builder
			for end < len(parts) && parts[end] == p {
				run.WriteString(m.glyph(p, row, end, parts))
				end++
			}
			b.WriteString(m.styles.parts[p].Render(run.String()))
			x = end
		}
	}
	return b.String()
}

// glyph draws the brackets on the middle row of the handles: "[" on the outer cell of
// the left handle and "]" on the outer cell of the right one.
func (m *Model) glyph(p part, row, x int, parts []part) string {
	if row == rows/2 {
		switch {
		case p == partLeft && (x == 0 || parts[x-1] != partLeft):
			return "["
		case p == partRight && (x == len(parts)-1 || parts[x+1] != partRight):
			return "]"
		}
	}
	return glyphs[p]
}

func (m *Model) View() string {
	if m.width == 0 {
		return "initializing..."
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("trimview"))
	b.WriteString("\n\n")
	b.WriteString(m.widget())
	b.WriteString("\n\n")
	b.WriteString(m.styles.status.Render(m.Status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
