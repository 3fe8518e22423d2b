package booking

import "time"

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// Slots is the fixed half-hour appointment grid within business hours.
var Slots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30",
}

// SlotStatus is one calendar cell on the booking page.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func ValidSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// ClosedOn reports whether the whole day is unbookable: the salon is closed
// on Sundays, and past dates can no longer be booked. Today still can.
func ClosedOn(day, now time.Time) bool {
	if day.Weekday() == time.Sunday {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	return day.Before(today)
}

func allUnavailable() []SlotStatus {
	out := make([]SlotStatus, 0, len(Slots))
	for _, s := range Slots {
		out = append(out, SlotStatus{Time: s, Available: false})
	}
	return out
}
