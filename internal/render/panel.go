// Package render draws decade panels for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// Glyphs used for cells. They stay distinct without colors.
const (
	GlyphLived   = "■"
	GlyphFuture  = "□"
	GlyphEvent   = "◆"
	GlyphCurrent = "▣"
	GlyphCursor  = "◎"
)

// Styles holds the lipgloss styles of a panel.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Lived   lipgloss.Style
	Future  lipgloss.Style
	Current lipgloss.Style
	Cursor  lipgloss.Style
	Event   lipgloss.Style
	Footer  lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles builds styles bound to r, which decides the color profile. A
// nil r uses lipgloss' default renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")).MarginBottom(1),
		Label:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(9),
		Lived:   r.NewStyle().Foreground(lipgloss.Color("#374151")),
		Future:  r.NewStyle().Foreground(lipgloss.Color("#D1D5DB")),
		Current: r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		Cursor:  r.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		Event:   r.NewStyle(),
		Footer:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")).MarginTop(1),
		Border:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#dce0e5")).Padding(0, 1),
	}
}

// Panel describes one decade to draw.
type Panel struct {
	Decade     int
	WeeksLived int
	Events     *timeline.EventSet
	// Cursor highlights a week; negative disables it.
	Cursor int
}

// Render draws the panel as ten rows of 52 cells, one row per year of life.
func (s Styles) Render(p Panel) string {
	cells := timeline.DecadeCells(p.Events, p.Decade, p.WeeksLived)

	var b strings.Builder
	b.WriteString(s.Title.Render(weekgrid.DecadeLabel(p.Decade)))
	b.WriteByte('\n')

	for year := range weekgrid.YearsPerDecade {
		row := cells[year*weekgrid.WeeksPerYear : (year+1)*weekgrid.WeeksPerYear]
		b.WriteString(s.Label.Render(row[0].Coordinates().YearLabel()))
		for _, c := range row {
			b.WriteString(s.cell(c, p))
		}
		if year < weekgrid.YearsPerDecade-1 {
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n")
	b.WriteString(s.Footer.Render(fmt.Sprintf("%s lived  %s to come  %s event  %s this week",
		GlyphLived, GlyphFuture, GlyphEvent, GlyphCurrent)))
	return s.Border.Render(b.String())
}

func (s Styles) cell(c timeline.GridCell, p Panel) string {
	switch {
	case c.WeekIndex == p.Cursor:
		return s.Cursor.Render(GlyphCursor)
	case c.WeekIndex == p.WeeksLived:
		return s.Current.Render(GlyphCurrent)
	}
	if color, ok := c.Color(); ok {
		style := s.Event
		if color != "" {
			style = style.Foreground(lipgloss.Color(color))
		}
		return style.Render(GlyphEvent)
	}
	if c.Lived {
		return s.Lived.Render(GlyphLived)
	}
	return s.Future.Render(GlyphFuture)
}

// Decade renders one panel with the default styles.
func Decade(events *timeline.EventSet, decade, weeksLived int) string {
	return NewStyles(nil).Render(Panel{Decade: decade, WeeksLived: weeksLived, Events: events, Cursor: -1})
}
