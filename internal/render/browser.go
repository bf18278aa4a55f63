package render

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/lifecubes/internal/timeline"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

type keyMap struct {
	Left, Right, Up, Down key.Binding
	Next, Prev, Today     key.Binding
	Quit                  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Next, k.Today, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.Next, k.Prev, k.Today, k.Quit}}
}

var keys = keyMap{
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "week")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next week")),
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "year")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next year")),
	Next:  key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n/p", "decade")),
	Prev:  key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "previous decade")),
	Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Browser is an interactive decade viewer. Arrow keys move the cursor one
// week or one year, n and p switch decades.
type Browser struct {
	styles       Styles
	help         help.Model
	birth        civil.Date
	model        weekgrid.Model
	events       *timeline.EventSet
	weeksLived   int
	horizonYears int

	decade int
	cursor int
	quit   bool
}

// NewBrowser opens on the decade holding the current week.
func NewBrowser(styles Styles, birth civil.Date, model weekgrid.Model, events *timeline.EventSet, weeksLived, horizonYears int) Browser {
	if horizonYears <= 0 {
		horizonYears = weekgrid.DefaultHorizonYears
	}
	cursor := min(max(weeksLived, 0), weekgrid.DecadeCount(horizonYears)*weekgrid.WeeksPerDecade-1)
	return Browser{
		styles:       styles,
		help:         help.New(),
		birth:        birth,
		model:        model,
		events:       events,
		weeksLived:   weeksLived,
		horizonYears: horizonYears,
		decade:       weekgrid.DecadeOf(cursor),
		cursor:       cursor,
	}
}

// Decade is the panel on screen.
func (b Browser) Decade() int { return b.decade }

// Cursor is the highlighted week.
func (b Browser) Cursor() int { return b.cursor }

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			b.quit = true
			return b, tea.Quit
		case key.Matches(msg, keys.Left):
			b.moveTo(b.cursor - 1)
		case key.Matches(msg, keys.Right):
			b.moveTo(b.cursor + 1)
		case key.Matches(msg, keys.Up):
			b.moveTo(b.cursor - weekgrid.WeeksPerYear)
		case key.Matches(msg, keys.Down):
			b.moveTo(b.cursor + weekgrid.WeeksPerYear)
		case key.Matches(msg, keys.Next):
			b.moveTo(b.cursor + weekgrid.WeeksPerDecade)
		case key.Matches(msg, keys.Prev):
			b.moveTo(b.cursor - weekgrid.WeeksPerDecade)
		case key.Matches(msg, keys.Today):
			b.moveTo(b.weeksLived)
		}
	}
	return b, nil
}

func (b *Browser) moveTo(week int) {
	last := weekgrid.DecadeCount(b.horizonYears)*weekgrid.WeeksPerDecade - 1
	b.cursor = min(max(week, 0), last)
	b.decade = weekgrid.DecadeOf(b.cursor)
}

func (b Browser) View() string {
	if b.quit {
		return ""
	}
	var s strings.Builder
	s.WriteString(b.styles.Render(Panel{
		Decade:     b.decade,
		WeeksLived: b.weeksLived,
		Events:     b.events,
		Cursor:     b.cursor,
	}))
	s.WriteByte('\n')
	s.WriteString(b.details())
	s.WriteString(b.styles.Footer.Render(b.help.View(keys)))
	return s.String()
}

func (b Browser) details() string {
	coords := weekgrid.CoordinatesOf(b.cursor)
	start, end := weekgrid.DateRangeOf(b.birth, b.cursor)

	var s strings.Builder
	fmt.Fprintf(&s, "Week %d · %s, %s · %s to %s\n",
		b.cursor, coords.YearLabel(), coords.WeekLabel(), start, end.AddDays(-1))
	if b.events == nil {
		return s.String()
	}
	for _, e := range b.events.InWeek(b.cursor) {
		date := b.model.DateOf(b.birth, e.Placement())
		fmt.Fprintf(&s, "  %s %s  %s\n", GlyphEvent, date, e.Title)
	}
	return s.String()
}
