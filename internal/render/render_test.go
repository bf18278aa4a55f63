package render

import (
	"io"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

func plainStyles() Styles {
	return NewStyles(lipgloss.NewRenderer(io.Discard))
}

func TestRenderCounts(t *testing.T) {
	events := timeline.NewEventSet(models.Event{ID: "e1", Title: "Launch", WeekIndex: 530, Color: "#3B82F6"})
	out := plainStyles().Render(Panel{Decade: 1, WeeksLived: 540, Events: events, Cursor: -1})

	assert.Contains(t, out, "Years 11-20")
	assert.Contains(t, out, "Year 11")
	assert.Contains(t, out, "Year 20")

	// The legend adds one of each glyph.
	assert.Equal(t, 20-1+1, strings.Count(out, GlyphLived))
	assert.Equal(t, 1+1, strings.Count(out, GlyphEvent))
	assert.Equal(t, 1+1, strings.Count(out, GlyphCurrent))
	assert.Equal(t, 520-20-1+1, strings.Count(out, GlyphFuture))
	assert.NotContains(t, out, "\x1b[", "plain renderer emits no escapes")
}

func TestRenderCursor(t *testing.T) {
	out := plainStyles().Render(Panel{Decade: 0, WeeksLived: 10, Cursor: 3})
	assert.Equal(t, 1, strings.Count(out, GlyphCursor))
	assert.Equal(t, 9+1, strings.Count(out, GlyphLived))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, b Browser, keys ...string) Browser {
	t.Helper()
	for _, k := range keys {
		m, _ := b.Update(keyMsg(k))
		var ok bool
		b, ok = m.(Browser)
		require.True(t, ok)
	}
	return b
}

func TestBrowserNavigation(t *testing.T) {
	birth := civil.Date{Year: 1990, Month: time.January, Day: 1}
	events := timeline.NewEventSet(models.Event{ID: "e1", Title: "Moved", WeekIndex: 1614, DayOfWeek: 1})
	b := NewBrowser(plainStyles(), birth, weekgrid.Model{}, events, 1613, 80)

	assert.Equal(t, 3, b.Decade())
	assert.Equal(t, 1613, b.Cursor())

	b = press(t, b, "right")
	assert.Equal(t, 1614, b.Cursor())
	assert.Contains(t, b.View(), "Moved")
	assert.Contains(t, b.View(), "2020-12-08", "week 1614 day 1")

	b = press(t, b, "down", "up", "left")
	assert.Equal(t, 1613, b.Cursor())

	b = press(t, b, "n", "n", "n", "n", "n")
	assert.Equal(t, 7, b.Decade(), "clamped to the last panel")
	assert.Equal(t, 4159, b.Cursor())

	b = press(t, b, "t")
	assert.Equal(t, 1613, b.Cursor())

	for range 10 {
		b = press(t, b, "p")
	}
	assert.Equal(t, 0, b.Cursor())
}

func TestBrowserQuits(t *testing.T) {
	b := NewBrowser(plainStyles(), civil.Date{Year: 2000, Month: time.January, Day: 1}, weekgrid.Model{}, nil, 0, 80)
	m, cmd := b.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
