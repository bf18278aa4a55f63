package timeline

import (
	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

// GridCell is a decade cell with the events placed in it.
type GridCell struct {
	weekgrid.Cell
	Events []models.Event
}

// Color returns the marker color of the cell: the color of its first event.
func (c GridCell) Color() (string, bool) {
	if len(c.Events) == 0 {
		return "", false
	}
	return c.Events[0].Color, true
}

// DecadeCells joins the cells of decade with the events of s. A nil set
// yields cells without events.
func DecadeCells(s *EventSet, decade, weeksLived int) []GridCell {
	var byWeek map[int][]models.Event
	if s != nil {
		start := decade * weekgrid.WeeksPerDecade
		byWeek = NewEventSet(s.InRange(start, start+weekgrid.WeeksPerDecade-1)...).ByWeek()
	}
	cells := make([]GridCell, 0, weekgrid.WeeksPerDecade)
	for c := range weekgrid.CellsOfDecade(decade, weeksLived) {
		cells = append(cells, GridCell{Cell: c, Events: byWeek[c.WeekIndex]})
	}
	return cells
}
