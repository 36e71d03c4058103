package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" slimeatlas ─ slime chunk atlas ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(lo.mapH).Render(m.l.View())
	}

	// Map: the last frame drawn by the bound view, no border
	var mapView string
	if m.help.ShowAll {
		// m.help is sized for the footer row; the overlay gets the map width
		full := m.help
		full.Width = max(0, lo.mapW-4)
		box := boxStyle.Render(full.FullHelpView(m.keys.FullHelp()))
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).MaxHeight(lo.mapH).
			Render(strings.Join(m.s.lines, "\n"))
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: status line, then slider and help
	var status string
	if m.prompt {
		status = m.ti.View()
	} else {
		status = dimStyle.Render(" " + m.status + " ")
	}
	info := dimStyle.Render(m.infoLine())
	spacer := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(info))
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacer), info)

	slider := dimStyle.Render(sliderLabel) +
		m.bar.ViewAs(m.s.store.Limits.Fraction(m.s.shown)) +
		dimStyle.Render(fmt.Sprintf(" %gx", m.s.shown))
	line2 := lipgloss.JoinHorizontal(lipgloss.Bottom, slider, "  ", m.help.ShortHelpView(m.keys.ShortHelp()))

	footer := lipgloss.NewStyle().Width(contentWidth).MaxHeight(footerHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, line1, line2))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// infoLine shows the center, the hovered point and the frame's slime count.
func (m Model) infoLine() string {
	c := m.s.store.Center.Get()
	parts := []string{fmt.Sprintf("center %g,%g", c.X, c.Z)}
	if m.hovering {
		tag := ""
		if m.hoverMarked {
			tag = " slime"
		}
		parts = append(parts, fmt.Sprintf("x=%.0f z=%.0f chunk %d,%d%s",
			m.hoverWorld.X, m.hoverWorld.Z, m.hoverChunk.X, m.hoverChunk.Z, tag))
	}
	f := m.s.frame
	parts = append(parts, fmt.Sprintf("slime %d/%d", len(f.Marked), len(f.Visible)))
	return "  " + strings.Join(parts, "  ") + "  "
}
