package weekgrid

import "fmt"

// InvalidDateError reports an input that is not a valid calendar date, such
// as malformed form input or an impossible day like February 30th.
type InvalidDateError struct {
	Input string
	Err   error
}

func (e *InvalidDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weekgrid: invalid date %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("weekgrid: invalid date %q", e.Input)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// OutOfRangeError reports a day-of-week offset outside 0..6. It signals that
// a caller mixed up unrelated week starts and event dates; it is never
// clamped away.
type OutOfRangeError struct {
	Offset int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("weekgrid: day offset %d outside 0..%d", e.Offset, DaysPerWeek-1)
}
