// Package weekgrid maps calendar dates onto the life-in-weeks grid.
//
// A life is drawn as rows of 52 week cells, ten rows to a decade panel. Every
// cell is addressed by a week index counted in whole 7-day buckets from the
// birth date: week 0 is the bucket that starts on the birth date itself.
//
// The package has three parts:
//
//   - Week index arithmetic (WeekIndexOf, DateRangeOf, DayOfWeekOffset,
//     WeeksLived, CoordinatesOf).
//   - Decade partitioning (CellsOfDecade, Decade) which enumerates and
//     classifies the 520 cells of a panel.
//   - Event placement (Model.PlaceEvent) which resolves the (week, day) pair
//     stored on an event from either an explicit date or a grid selection.
//
// All functions are pure. Dates are civil dates (no time of day, no zone), so
// differences are counted in calendar days and never drift across daylight
// saving changes. Division floors toward negative infinity, so dates before
// the birth date get negative week indices instead of collapsing into week 0.
// Nothing here reads the system clock: callers pass "now" in.
package weekgrid
