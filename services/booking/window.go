package booking

import "carebook/models"

// Window is the effective [Start,End) working range for one date, in minutes
// from midnight.
type Window struct {
	Start int
	End   int
}

// ResolveWindow applies the exception-based precedence rule: the date
// override always wins over the weekly default, and absence of an override
// means the weekly default governs. A nil result means the provider is not
// working that date; absence of data is a valid outcome, not a failure.
//
// Override cases:
//   - blocked (isAvailable=false): the date is off regardless of the weekly
//     schedule.
//   - available with explicit times: that window replaces the weekly one for
//     this date only.
//   - available without times: fall through to the weekly default.
func ResolveWindow(override *models.DateOverride, weekly *models.WeeklySchedule) *Window {
	if override != nil {
		if !override.IsAvailable {
			return nil
		}
		if override.Start != nil && override.End != nil {
			return &Window{Start: *override.Start, End: *override.End}
		}
	}

	if weekly == nil || !weekly.IsAvailable {
		return nil
	}
	return &Window{Start: weekly.Start, End: weekly.End}
}

// Contains reports whether [start,end) fits entirely inside the window.
func (w *Window) Contains(start, end int) bool {
	return start >= w.Start && end <= w.End
}
