package booking

import "carebook/models"

// BuildSlots cuts the effective window into consecutive fixed-width slots and
// flags each one against the occupying appointments for that date.
//
// A slot that would overrun the window is not produced: for a window of
// length W and duration D the result has exactly floor(W/D) entries. Slots
// are emitted in ascending start order. An appointment makes a slot
// unavailable only under the strict half-open overlap test; a booking ending
// exactly where a slot begins does not touch it.
func BuildSlots(window *Window, slotDuration int, occupying []models.Appointment) []models.Slot {
	if window == nil || slotDuration <= 0 {
		return nil
	}

	var slots []models.Slot
	for start := window.Start; start+slotDuration <= window.End; start += slotDuration {
		end := start + slotDuration

		available := true
		for i := range occupying {
			if !occupying[i].Status.Occupies() {
				continue
			}
			if occupying[i].Overlaps(start, end) {
				available = false
				break
			}
		}

		slots = append(slots, models.Slot{Start: start, End: end, IsAvailable: available})
	}
	return slots
}
