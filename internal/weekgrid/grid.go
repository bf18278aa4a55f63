package weekgrid

import (
	"iter"
	"slices"
)

// Cell is one week of a decade panel.
type Cell struct {
	WeekIndex int
	Lived     bool
}

// Coordinates locates the cell on the grid.
func (c Cell) Coordinates() Coordinates {
	return CoordinatesOf(c.WeekIndex)
}

// CellsOfDecade yields the 520 cells of decade in ascending week order,
// starting at decade*520. A cell is lived when its index is below
// weeksLived. The sequence holds no state and can be ranged over any number
// of times. The last decade of a horizon is never truncated; callers decide
// what to draw past a life expectancy.
func CellsOfDecade(decade, weeksLived int) iter.Seq[Cell] {
	start := decade * WeeksPerDecade
	return func(yield func(Cell) bool) {
		for i := range WeeksPerDecade {
			week := start + i
			if !yield(Cell{WeekIndex: week, Lived: week < weeksLived}) {
				return
			}
		}
	}
}

// Decade collects CellsOfDecade into a slice.
func Decade(decade, weeksLived int) []Cell {
	return slices.Collect(CellsOfDecade(decade, weeksLived))
}

// LivedInDecade counts the lived cells of decade, which are always its
// leading cells.
func LivedInDecade(decade, weeksLived int) int {
	return min(WeeksPerDecade, max(0, weeksLived-decade*WeeksPerDecade))
}

// DecadeCount returns the number of panels needed to draw horizonYears.
func DecadeCount(horizonYears int) int {
	if horizonYears <= 0 {
		return 0
	}
	return (horizonYears + YearsPerDecade - 1) / YearsPerDecade
}

// DecadeOf returns the panel holding week.
func DecadeOf(week int) int {
	return floorDiv(week, WeeksPerDecade)
}
